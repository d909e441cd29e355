package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"priolist/internal/adapters/editor"
	"priolist/internal/adapters/filesystem"
	"priolist/internal/adapters/tui"
	"priolist/internal/config"
	"priolist/internal/domain"
)

func main() {
	fileFlag := flag.String("file", config.FilePath(), "path to the todo document")
	flag.Parse()

	doc, err := filesystem.Load(*fileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(doc, domain.DefaultRules(), editor.NewOpener())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
