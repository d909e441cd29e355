package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"priolist/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("priolist Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Priority-driven todo lists in plain text"))
	b.WriteString("\n\n")

	b.WriteString(styles.Heading.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("g / G", "Top / bottom"))
	b.WriteString("\n")

	b.WriteString(styles.Heading.Render("Editing"))
	b.WriteString("\n")
	b.WriteString(helpLine("1-9", "Set priority on item"))
	b.WriteString(helpLine("0", "Clear priority"))
	b.WriteString(helpLine("m", "Move item to category"))
	b.WriteString(helpLine("s", "Sort by priority"))
	b.WriteString(helpLine("p", "Prioritize run"))
	b.WriteString(helpLine("y", "Yank item and sub-items"))
	b.WriteString(helpLine("w", "Save"))
	b.WriteString("\n")

	b.WriteString(styles.Heading.Render("Prioritize run"))
	b.WriteString("\n")
	b.WriteString(helpLine("1-9", "Tag the offered item"))
	b.WriteString(helpLine("<shortcut>", "Move it to that category"))
	b.WriteString(helpLine("s / Enter", "Skip"))
	b.WriteString(helpLine("q / esc", "End the run"))
	b.WriteString("\n")

	b.WriteString(styles.Heading.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
