package domain

import (
	"slices"
	"testing"
)

func sessionFixture() []string {
	return []string{
		"## Personal",
		"- Buy groceries",
		"  - milk",
		"- [x] Call plumber",
		"- [p4] Water plants",
		"## Work",
		"- Prepare slides",
	}
}

func TestNewSessionFiltersCandidates(t *testing.T) {
	r := DefaultRules()
	lines := sessionFixture()

	s, err := NewSession(r, lines, 0, len(lines), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Headings, sub-items, and checked lines are excluded.
	var got []int
	for !s.Done() {
		c, _ := s.Current()
		got = append(got, c.Pos)
		if _, err := s.Apply(Action{Kind: ActionSkip}); err != nil {
			t.Fatal(err)
		}
	}
	want := []int{1, 4, 6}
	if !slices.Equal(got, want) {
		t.Errorf("candidate positions = %v, want %v", got, want)
	}
}

func TestNewSessionSkipTagged(t *testing.T) {
	r := DefaultRules()
	s, err := NewSession(r, sessionFixture(), 0, 7, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, ok := s.Current()
	if !ok || c.Pos != 1 {
		t.Fatalf("first candidate = %+v, want pos 1", c)
	}
	if _, err := s.Apply(Action{Kind: ActionSkip}); err != nil {
		t.Fatal(err)
	}
	c, ok = s.Current()
	if !ok || c.Pos != 6 {
		t.Errorf("second candidate = %+v, want pos 6 (tagged line skipped)", c)
	}
}

func TestNewSessionInvalidRange(t *testing.T) {
	r := DefaultRules()
	lines := sessionFixture()

	if _, err := NewSession(r, lines, 3, 1, false); err == nil {
		t.Error("expected error for inverted range")
	}
	if _, err := NewSession(r, lines, 0, 99, false); err == nil {
		t.Error("expected error for out-of-bounds range")
	}
	if _, err := NewSession(r, lines, 2, 2, false); err == nil {
		t.Error("expected error for empty selection")
	}
}

func TestSessionApplyPriority(t *testing.T) {
	r := DefaultRules()
	s, err := NewSession(r, sessionFixture(), 0, 7, false)
	if err != nil {
		t.Fatal(err)
	}

	edits, err := s.Apply(Action{Kind: ActionPriority, Priority: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edits) != 1 || edits[0].Start != 1 || edits[0].End != 2 {
		t.Fatalf("edits = %+v, want single replace of line 1", edits)
	}
	if got := s.Lines()[1]; got != "- [p3] Buy groceries" {
		t.Errorf("line after tagging = %q", got)
	}

	// The cursor advanced to the next candidate.
	c, _ := s.Current()
	if c.Pos != 4 {
		t.Errorf("cursor at %d, want 4", c.Pos)
	}
}

func TestSessionApplyPriorityOutOfRange(t *testing.T) {
	r := DefaultRules()
	s, err := NewSession(r, sessionFixture(), 0, 7, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Apply(Action{Kind: ActionPriority, Priority: 0}); err == nil {
		t.Error("expected error for priority 0")
	}
	if _, err := s.Apply(Action{Kind: ActionPriority, Priority: 10}); err == nil {
		t.Error("expected error for priority 10")
	}
}

func TestSessionQuitStopsRun(t *testing.T) {
	r := DefaultRules()
	s, err := NewSession(r, sessionFixture(), 0, 7, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Apply(Action{Kind: ActionQuit}); err != nil {
		t.Fatal(err)
	}
	if !s.Done() {
		t.Error("session should be done after quit")
	}
	if _, ok := s.Current(); ok {
		t.Error("no candidate should be offered after quit")
	}
}

func TestSessionMoveReoffersItem(t *testing.T) {
	r := DefaultRules()
	s, err := NewSession(r, sessionFixture(), 0, 7, false)
	if err != nil {
		t.Fatal(err)
	}

	edits, err := s.Apply(Action{Kind: ActionMove, Target: 'w'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("expected one span edit, got %d", len(edits))
	}

	// The moved item, with its subtree intact, is now the last group of
	// Work, and it is re-offered at its new position.
	c, ok := s.Current()
	if !ok {
		t.Fatal("expected a current candidate after move")
	}
	if c.Raw != "- Buy groceries" {
		t.Errorf("re-offered candidate = %q, want the moved item", c.Raw)
	}
	if !c.HasCategory || c.Category.Name != "Work" {
		t.Errorf("candidate category = %+v, want Work", c.Category)
	}

	i := slices.Index(s.Lines(), "- Buy groceries")
	if i == -1 || s.Lines()[i+1] != "  - milk" {
		t.Errorf("subtree did not travel with the parent: %q", s.Lines())
	}

	// A digit afterwards tags the item at its new position.
	if _, err := s.Apply(Action{Kind: ActionPriority, Priority: 1}); err != nil {
		t.Fatal(err)
	}
	if got := s.Lines()[i]; got != "- [p1] Buy groceries" {
		t.Errorf("line after move+tag = %q", got)
	}
}

func TestSessionMoveToOwnCategoryIsNoop(t *testing.T) {
	r := DefaultRules()
	s, err := NewSession(r, sessionFixture(), 0, 7, false)
	if err != nil {
		t.Fatal(err)
	}

	before := append([]string(nil), s.Lines()...)
	edits, err := s.Apply(Action{Kind: ActionMove, Target: 'p'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edits) != 0 {
		t.Errorf("expected no edits, got %+v", edits)
	}
	if !slices.Equal(before, s.Lines()) {
		t.Error("document changed on same-category move")
	}
	if c, _ := s.Current(); c.Pos != 4 {
		t.Errorf("cursor should advance past no-op move, at %d", c.Pos)
	}
}

func TestSessionMoveUnknownShortcutIsNoop(t *testing.T) {
	r := DefaultRules()
	s, err := NewSession(r, sessionFixture(), 0, 7, false)
	if err != nil {
		t.Fatal(err)
	}

	edits, err := s.Apply(Action{Kind: ActionMove, Target: 'z'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edits) != 0 {
		t.Errorf("expected no edits, got %+v", edits)
	}
	if c, _ := s.Current(); c.Pos != 4 {
		t.Errorf("cursor should advance past unknown shortcut, at %d", c.Pos)
	}
}

// Pending candidate positions survive a relocation: the remaining items
// are still offered, each at its shifted position.
func TestSessionMovePreservesPendingCandidates(t *testing.T) {
	r := DefaultRules()
	lines := []string{
		"## A",
		"- first",
		"- second",
		"## B",
		"- third",
	}
	s, err := NewSession(r, lines, 0, len(lines), false)
	if err != nil {
		t.Fatal(err)
	}

	// Move "first" down into B, then skip it.
	if _, err := s.Apply(Action{Kind: ActionMove, Target: 'b'}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Apply(Action{Kind: ActionSkip}); err != nil {
		t.Fatal(err)
	}

	var rest []string
	for !s.Done() {
		c, _ := s.Current()
		rest = append(rest, c.Raw)
		if _, err := s.Apply(Action{Kind: ActionSkip}); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"- second", "- third"}
	if !slices.Equal(rest, want) {
		t.Errorf("remaining candidates = %q, want %q", rest, want)
	}
}
