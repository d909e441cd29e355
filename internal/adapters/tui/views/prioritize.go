package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"priolist/internal/adapters/tui/styles"
	"priolist/internal/domain"
)

// PrioritizeKeyMap defines key bindings for the prioritize view
type PrioritizeKeyMap struct {
	Tag  key.Binding
	Skip key.Binding
	Quit key.Binding
}

var PrioritizeKeys = PrioritizeKeyMap{
	Tag: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "set priority"),
	),
	Skip: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "skip"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q/esc", "done"),
	),
}

// PrioritizeModel walks the document item by item, offering each untagged
// candidate for tagging or moving. Any other key that matches a category
// shortcut moves the candidate there.
type PrioritizeModel struct {
	ViewState

	doc   Document
	rules domain.Rules

	session *domain.Session
	tagged  int
	moved   int
	skipped int
}

// NewPrioritizeModel creates a new prioritize view model
func NewPrioritizeModel(doc Document, rules domain.Rules) *PrioritizeModel {
	return &PrioritizeModel{doc: doc, rules: rules}
}

// Start begins a fresh run over the whole document.
func (m *PrioritizeModel) Start() error {
	session, err := domain.NewSession(m.rules, m.doc.Lines(), 0, m.doc.Len(), true)
	if err != nil {
		return err
	}
	m.session = session
	m.tagged, m.moved, m.skipped = 0, 0, 0
	m.ClearMessage()
	return nil
}

// Init initializes the prioritize view
func (m *PrioritizeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the prioritize view
func (m *PrioritizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.session == nil || m.session.Done() {
		return m, m.finish()
	}

	switch {
	case key.Matches(keyMsg, PrioritizeKeys.Quit):
		return m, m.finish()

	case key.Matches(keyMsg, PrioritizeKeys.Skip):
		m.apply(domain.Action{Kind: domain.ActionSkip})
		m.skipped++

	case key.Matches(keyMsg, PrioritizeKeys.Tag):
		if m.apply(domain.Action{Kind: domain.ActionPriority, Priority: int(keyMsg.Runes[0] - '0')}) {
			m.tagged++
		}

	default:
		if len(keyMsg.Runes) == 1 {
			if m.apply(domain.Action{Kind: domain.ActionMove, Target: keyMsg.Runes[0]}) {
				m.moved++
			}
		}
	}

	if m.session.Done() {
		return m, m.finish()
	}
	return m, nil
}

// apply runs one action against the session and mirrors its edits into the
// document. Returns false when the action changed nothing.
func (m *PrioritizeModel) apply(a domain.Action) bool {
	edits, err := m.session.Apply(a)
	if err != nil {
		m.SetMessage(err.Error(), true)
		return false
	}
	for _, e := range edits {
		if err := m.doc.ReplaceRange(e.Start, e.End, e.Repl); err != nil {
			m.SetMessage(err.Error(), true)
			return false
		}
	}
	return len(edits) > 0
}

func (m *PrioritizeModel) finish() tea.Cmd {
	return func() tea.Msg {
		return SwitchToBrowserMsg{}
	}
}

// Summary describes what the finished run changed.
func (m *PrioritizeModel) Summary() string {
	return fmt.Sprintf("prioritize: %d tagged, %d moved, %d skipped", m.tagged, m.moved, m.skipped)
}

// View renders the prioritize view
func (m *PrioritizeModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Prioritize"))
	b.WriteString("\n\n")

	if m.session == nil || m.session.Done() {
		b.WriteString(styles.MutedText.Render("Nothing left to offer."))
		return styles.App.Render(b.String())
	}

	cand, _ := m.session.Current()

	b.WriteString(styles.Candidate.Render(cand.Raw))
	b.WriteString("\n\n")

	if cand.HasCategory {
		b.WriteString(styles.MutedText.Render("in: "))
		b.WriteString(styles.Heading.Render(cand.Category.Name))
		b.WriteString("\n\n")
	}

	cats := m.session.Categories()
	if len(cats) > 0 {
		b.WriteString(styles.MutedText.Render("move to:"))
		b.WriteString("\n")
		for _, cat := range cats {
			if cat.Shortcut == domain.ShortcutExhausted {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s %s\n",
				styles.Shortcut.Render(fmt.Sprintf("[%c]", cat.Shortcut)),
				cat.Name,
			))
		}
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString(RenderHelpLine(PrioritizeKeys.Tag, PrioritizeKeys.Skip, PrioritizeKeys.Quit))

	return styles.App.Render(b.String())
}
