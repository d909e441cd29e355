package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"priolist/internal/adapters/tui/styles"
	"priolist/internal/application/commands"
	"priolist/internal/domain"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Tag        key.Binding
	ClearTag   key.Binding
	Move       key.Binding
	Sort       key.Binding
	Prioritize key.Binding
	Yank       key.Binding
	Edit       key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Tag: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "set priority"),
	),
	ClearTag: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "clear priority"),
	),
	Move: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "move"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	Prioritize: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "prioritize"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yank"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "editor"),
	),
	Save: key.NewBinding(
		key.WithKeys("w", "ctrl+s"),
		key.WithHelp("w", "save"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the document browser view
type BrowserModel struct {
	ViewState

	doc   Document
	rules domain.Rules

	cursor int
	offset int // first visible line

	moving    bool // move target input is open
	moveInput textinput.Model
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(doc Document, rules domain.Rules) *BrowserModel {
	ti := textinput.New()
	ti.Placeholder = "category name or shortcut"
	ti.CharLimit = 64
	ti.Width = 32

	return &BrowserModel{
		doc:       doc,
		rules:     rules,
		moveInput: ti,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.moving {
			return m.updateMoving(msg)
		}

		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < m.doc.Len()-1 {
				m.cursor++
			}

		case key.Matches(msg, BrowserKeys.Top):
			m.cursor = 0

		case key.Matches(msg, BrowserKeys.Bottom):
			if m.doc.Len() > 0 {
				m.cursor = m.doc.Len() - 1
			}

		case key.Matches(msg, BrowserKeys.Tag):
			m.tagCursor(int(msg.Runes[0] - '0'))

		case key.Matches(msg, BrowserKeys.ClearTag):
			m.clearTagAtCursor()

		case key.Matches(msg, BrowserKeys.Move):
			m.moving = true
			m.moveInput.SetValue("")
			return m, m.moveInput.Focus()

		case key.Matches(msg, BrowserKeys.Sort):
			m.sortDocument()

		case key.Matches(msg, BrowserKeys.Prioritize):
			return m, func() tea.Msg {
				return SwitchToPrioritizeMsg{}
			}

		case key.Matches(msg, BrowserKeys.Yank):
			m.yankCursor()

		case key.Matches(msg, BrowserKeys.Edit):
			return m, func() tea.Msg {
				return OpenEditorMsg{}
			}

		case key.Matches(msg, BrowserKeys.Save):
			if err := m.doc.Save(); err != nil {
				m.SetMessage(err.Error(), true)
			} else {
				m.SetMessage("saved", false)
			}

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) updateMoving(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.moving = false
		m.moveInput.Blur()
		return m, nil

	case tea.KeyEnter:
		m.moving = false
		m.moveInput.Blur()
		m.moveCursor(strings.TrimSpace(m.moveInput.Value()))
		return m, nil
	}

	var cmd tea.Cmd
	m.moveInput, cmd = m.moveInput.Update(msg)
	return m, cmd
}

func (m *BrowserModel) tagCursor(priority int) {
	result, err := commands.NewTagCommand(m.doc, m.rules, m.cursor+1, priority).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.SetMessage(result.Message, false)
}

func (m *BrowserModel) clearTagAtCursor() {
	if m.cursor >= m.doc.Len() {
		return
	}
	raw := m.doc.Lines()[m.cursor]
	stripped := m.rules.StripPriority(raw)
	if stripped == raw {
		return
	}
	if err := m.doc.ReplaceRange(m.cursor, m.cursor+1, []string{stripped}); err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.SetMessage("priority cleared", false)
}

func (m *BrowserModel) moveCursor(target string) {
	if target == "" {
		return
	}
	result, err := commands.NewMoveCommand(m.doc, m.rules, m.cursor+1, target).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	if result.Moved > 0 {
		m.cursor = result.NewLine - 1
	}
	m.SetMessage(result.Message, false)
}

func (m *BrowserModel) sortDocument() {
	result, err := commands.NewSortCommand(m.doc, m.rules, 0, 0).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.SetMessage(result.Message, false)
}

func (m *BrowserModel) yankCursor() {
	if m.cursor >= m.doc.Len() {
		return
	}
	lines := m.doc.Lines()
	group := append([]string{lines[m.cursor]}, domain.CollectSubtree(lines, m.cursor)...)
	if err := clipboard.WriteAll(strings.Join(group, "\n")); err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.SetMessage(fmt.Sprintf("yanked %d lines", len(group)), false)
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("priolist"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.doc.Path()))
	if m.doc.Dirty() {
		b.WriteString(styles.Subtitle.Render(" [+]"))
	}
	b.WriteString("\n\n")

	lines := m.doc.Lines()
	cats := domain.ScanCategories(m.rules, lines)

	visible := m.visibleRange(len(lines))
	for pos := m.offset; pos < visible; pos++ {
		b.WriteString(m.renderLine(lines[pos], pos, cats, pos == m.cursor))
		b.WriteString("\n")
	}

	if m.moving {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("move to: "))
		b.WriteString(m.moveInput.View())
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		BrowserKeys.Tag, BrowserKeys.Move, BrowserKeys.Sort,
		BrowserKeys.Prioritize, BrowserKeys.Yank, BrowserKeys.Save,
		BrowserKeys.Help, BrowserKeys.Quit,
	))

	return styles.App.Render(b.String())
}

// visibleRange scrolls the window so the cursor stays on screen and returns
// the end of the visible slice.
func (m *BrowserModel) visibleRange(total int) int {
	rows := m.Height - 8 // title, status, help chrome
	if rows < 5 {
		rows = total
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	end := m.offset + rows
	if end > total {
		end = total
	}
	return end
}

func (m *BrowserModel) renderLine(raw string, pos int, cats []domain.Category, selected bool) string {
	ln := domain.ParseLine(m.rules, raw)

	if selected {
		return "> " + styles.LineSelected.Render(raw)
	}

	switch {
	case ln.IsHeading():
		for _, cat := range cats {
			if cat.Start == pos && cat.Shortcut != domain.ShortcutExhausted {
				return "  " + styles.Heading.Render(raw) +
					styles.Shortcut.Render(fmt.Sprintf("  [%c]", cat.Shortcut))
			}
		}
		return "  " + styles.Heading.Render(raw)

	case ln.Check == domain.CheckChecked:
		return "  " + styles.Checked.Render(raw)

	case ln.IsSubItem():
		return "  " + styles.SubItem.Render(raw)

	case ln.HasPriority:
		tag := fmt.Sprintf(m.rules.PriorityFormat, ln.Priority)
		if idx := strings.Index(raw, tag); idx >= 0 {
			return "  " + styles.Item.Render(raw[:idx]) +
				styles.Priority.Render(tag) +
				styles.Item.Render(raw[idx+len(tag):])
		}
		return "  " + styles.Item.Render(raw)

	default:
		return "  " + styles.Item.Render(raw)
	}
}
