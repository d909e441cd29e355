package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"priolist/internal/domain"
)

type fakeDoc struct {
	lines []string
	dirty bool
	saves int
}

func (d *fakeDoc) Lines() []string { return d.lines }
func (d *fakeDoc) Len() int        { return len(d.lines) }
func (d *fakeDoc) Path() string    { return "todo.md" }
func (d *fakeDoc) Dirty() bool     { return d.dirty }
func (d *fakeDoc) Save() error {
	d.saves++
	d.dirty = false
	return nil
}

func (d *fakeDoc) ReplaceRange(start, end int, repl []string) error {
	next := make([]string, 0, len(d.lines)-(end-start)+len(repl))
	next = append(next, d.lines[:start]...)
	next = append(next, repl...)
	next = append(next, d.lines[end:]...)
	d.lines = next
	d.dirty = true
	return nil
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testDoc() *fakeDoc {
	return &fakeDoc{lines: []string{
		"## Work",
		"- [ ] Review draft",
		"- [ ] Fix bug",
		"## Home",
		"- [ ] Buy milk",
	}}
}

func TestBrowserNavigation(t *testing.T) {
	m := NewBrowserModel(testDoc(), domain.DefaultRules())

	m.Update(keyRunes("j"))
	m.Update(keyRunes("j"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d after jj, want 2", m.cursor)
	}

	m.Update(keyRunes("k"))
	if m.cursor != 1 {
		t.Errorf("cursor = %d after k, want 1", m.cursor)
	}

	m.Update(keyRunes("G"))
	if m.cursor != 4 {
		t.Errorf("cursor = %d after G, want 4", m.cursor)
	}

	m.Update(keyRunes("g"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d after g, want 0", m.cursor)
	}

	m.Update(keyRunes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, must not go above top", m.cursor)
	}
}

func TestBrowserTag(t *testing.T) {
	doc := testDoc()
	m := NewBrowserModel(doc, domain.DefaultRules())

	m.Update(keyRunes("j"))
	m.Update(keyRunes("3"))

	if doc.lines[1] != "- [p3] Review draft" {
		t.Errorf("line 1 = %q, want tagged", doc.lines[1])
	}

	m.Update(keyRunes("0"))
	if doc.lines[1] != "- Review draft" {
		t.Errorf("line 1 = %q after clear, want priority stripped", doc.lines[1])
	}
}

func TestBrowserTag_HeadingRejected(t *testing.T) {
	doc := testDoc()
	m := NewBrowserModel(doc, domain.DefaultRules())

	m.Update(keyRunes("5"))

	if doc.lines[0] != "## Work" {
		t.Errorf("heading was modified: %q", doc.lines[0])
	}
	if !m.MessageErr {
		t.Error("expected error message for tagging a heading")
	}
}

func TestBrowserMove(t *testing.T) {
	doc := testDoc()
	m := NewBrowserModel(doc, domain.DefaultRules())

	m.Update(keyRunes("j")) // on "Review draft"
	m.Update(keyRunes("m"))
	if !m.moving {
		t.Fatal("m should open the move input")
	}

	for _, r := range "Home" {
		m.Update(keyRunes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	want := []string{
		"## Work",
		"- [ ] Fix bug",
		"## Home",
		"- [ ] Buy milk",
		"- [ ] Review draft",
	}
	for i, w := range want {
		if doc.lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, doc.lines[i], w)
		}
	}
	if m.cursor != 4 {
		t.Errorf("cursor = %d, want 4 (follows moved item)", m.cursor)
	}
}

func TestBrowserMove_Cancel(t *testing.T) {
	doc := testDoc()
	m := NewBrowserModel(doc, domain.DefaultRules())

	m.Update(keyRunes("m"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.moving {
		t.Error("esc should close the move input")
	}
	if doc.dirty {
		t.Error("cancelled move must not touch the document")
	}
}

func TestBrowserSort(t *testing.T) {
	doc := &fakeDoc{lines: []string{
		"## Work",
		"- [ ] Untagged",
		"- [ ] [p1] Urgent",
	}}
	m := NewBrowserModel(doc, domain.DefaultRules())

	m.Update(keyRunes("s"))

	if doc.lines[1] != "- [ ] [p1] Urgent" {
		t.Errorf("line 1 = %q, want tagged item first", doc.lines[1])
	}
}

func TestBrowserSave(t *testing.T) {
	doc := testDoc()
	doc.dirty = true
	m := NewBrowserModel(doc, domain.DefaultRules())

	m.Update(keyRunes("w"))

	if doc.saves != 1 {
		t.Errorf("saves = %d, want 1", doc.saves)
	}
}

func TestBrowserView(t *testing.T) {
	m := NewBrowserModel(testDoc(), domain.DefaultRules())
	m.SetSize(80, 24)

	out := m.View()
	if !strings.Contains(out, "todo.md") {
		t.Error("view missing document path")
	}
	if !strings.Contains(out, "Work") {
		t.Error("view missing heading")
	}
	if !strings.Contains(out, "Buy milk") {
		t.Error("view missing item")
	}
}
