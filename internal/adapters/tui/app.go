package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"priolist/internal/adapters/editor"
	"priolist/internal/adapters/tui/views"
	"priolist/internal/domain"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewPrioritize
	ViewHelp
)

// App is the main TUI application model
type App struct {
	doc    views.Document
	editor *editor.Opener

	state      ViewState
	browser    *views.BrowserModel
	prioritize *views.PrioritizeModel
	help       *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application over one loaded document
func NewApp(doc views.Document, rules domain.Rules, ed *editor.Opener) *App {
	return &App{
		doc:        doc,
		editor:     ed,
		state:      ViewBrowser,
		browser:    views.NewBrowserModel(doc, rules),
		prioritize: views.NewPrioritizeModel(doc, rules),
		help:       views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.prioritize.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToPrioritizeMsg:
		if err := a.prioritize.Start(); err != nil {
			a.browser.SetMessage(err.Error(), true)
			return a, nil
		}
		a.state = ViewPrioritize
		return a, a.prioritize.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		if a.state == ViewPrioritize {
			a.browser.SetMessage(a.prioritize.Summary(), false)
		}
		a.state = ViewBrowser
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor()

	case editorFinishedMsg:
		if msg.err != nil {
			a.browser.SetMessage(msg.err.Error(), true)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewPrioritize:
		_, cmd = a.prioritize.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

// openEditor suspends the TUI and opens the document in $EDITOR.
func (a *App) openEditor() tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(a.doc.Path())
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewPrioritize:
		return a.prioritize.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
