package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"priolist/internal/adapters/filesystem"
	"priolist/internal/adapters/sqlite"
	"priolist/internal/config"
	"priolist/internal/domain"
	"priolist/internal/ports"
)

var (
	filePath string
	dirPath  string
)

var rootCmd = &cobra.Command{
	Use:   "priolist-cli",
	Short: "CLI for priority-driven plain-text todo lists",
	Long: `priolist-cli works on plain-text todo documents with category headings,
checkboxes, and [pN] priority tags.

It provides commands to prioritize, sort, move, and tag items, plus an
indexed search across a directory of documents.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", config.FilePath(), "path to the todo document")
	rootCmd.PersistentFlags().StringVarP(&dirPath, "dir", "d", config.DirPath(), "directory indexed for search")
}

func rules() domain.Rules {
	return domain.DefaultRules()
}

// openBuffer loads the configured todo document.
func openBuffer() (*filesystem.Buffer, error) {
	return filesystem.Load(filePath)
}

// openIndex opens the document index for the configured directory.
// The caller must Close it.
func openIndex() (ports.DocIndex, error) {
	idx := sqlite.NewIndex(rules())
	if err := idx.Open(dirPath); err != nil {
		return nil, err
	}
	return idx, nil
}
