package domain

import "fmt"

// ActionKind enumerates the responses a collaborator can give for one
// candidate item.
type ActionKind int

const (
	ActionSkip ActionKind = iota
	ActionQuit
	ActionPriority
	ActionMove
)

// Action is one collaborator response: a priority digit, a move target
// shortcut, skip, or quit.
type Action struct {
	Kind     ActionKind
	Priority int  // valid for ActionPriority
	Target   rune // valid for ActionMove
}

// Candidate is the item currently offered for prioritization.
type Candidate struct {
	Pos         int
	Raw         string
	Category    Category
	HasCategory bool
}

// Edit is one atomic replace against the document's line storage: lines
// [Start, End) become Repl.
type Edit struct {
	Start int
	End   int
	Repl  []string
}

// Session drives one-item-at-a-time prioritization over a selected range.
// It owns a working copy of the document lines; every accepted action is
// applied to the copy immediately and also returned as an Edit so the
// caller can mirror it onto the backing storage. There is no transaction
// across a session: quitting midway leaves prior edits in place.
type Session struct {
	rules      Rules
	lines      []string
	cats       []Category
	pending    []int // candidate positions, kept current across relocations
	cursor     int
	skipTagged bool
	quit       bool
}

// NewSession builds a session over lines[start:end). Categories are scanned
// over the entire document, not just the selection, since move targets can
// be any category. Checked items, headings, sub-items, and blank lines are
// never offered; with skipTagged, neither are items that already carry a
// priority tag.
func NewSession(r Rules, lines []string, start, end int, skipTagged bool) (*Session, error) {
	if start < 0 || end > len(lines) || start > end {
		return nil, fmt.Errorf("invalid range [%d, %d) for %d lines", start, end, len(lines))
	}
	if start == end {
		return nil, fmt.Errorf("empty selection")
	}

	s := &Session{
		rules:      r,
		lines:      append([]string(nil), lines...),
		cats:       ScanCategories(r, lines),
		skipTagged: skipTagged,
	}
	for pos := start; pos < end; pos++ {
		l := ParseLine(r, s.lines[pos])
		if l.IsHeading() || l.IsSubItem() || l.Check == CheckChecked {
			continue
		}
		if l.Content == "" {
			continue
		}
		if skipTagged && l.HasPriority {
			continue
		}
		s.pending = append(s.pending, pos)
	}
	return s, nil
}

// Categories returns the current category scan.
func (s *Session) Categories() []Category {
	return s.cats
}

// Lines returns the session's working copy of the document.
func (s *Session) Lines() []string {
	return s.lines
}

// Done reports whether the run has ended, either by exhausting the
// candidates or by an explicit quit.
func (s *Session) Done() bool {
	return s.quit || s.cursor >= len(s.pending)
}

// Current returns the candidate awaiting a response.
func (s *Session) Current() (Candidate, bool) {
	if s.Done() {
		return Candidate{}, false
	}
	pos := s.pending[s.cursor]
	cat, ok := CategoryAt(s.cats, pos)
	return Candidate{Pos: pos, Raw: s.lines[pos], Category: cat, HasCategory: ok}, true
}

// Apply interprets one collaborator response for the current candidate and
// returns the edits it produced, if any. After a successful move the same
// logical item is re-offered at its new position, so a freshly moved item
// can still receive a priority digit in the same pass.
func (s *Session) Apply(a Action) ([]Edit, error) {
	if s.Done() {
		return nil, fmt.Errorf("session already finished")
	}

	switch a.Kind {
	case ActionQuit:
		s.quit = true
		return nil, nil

	case ActionSkip:
		s.cursor++
		return nil, nil

	case ActionPriority:
		if a.Priority < 1 || a.Priority > 9 {
			return nil, fmt.Errorf("priority %d out of range 1-9", a.Priority)
		}
		pos := s.pending[s.cursor]
		updated := s.rules.FormatWithPriority(s.lines[pos], a.Priority)
		s.cursor++
		if updated == s.lines[pos] {
			return nil, nil
		}
		s.lines[pos] = updated
		return []Edit{{Start: pos, End: pos + 1, Repl: []string{updated}}}, nil

	case ActionMove:
		return s.applyMove(a.Target)

	default:
		return nil, fmt.Errorf("unknown action kind %d", a.Kind)
	}
}

func (s *Session) applyMove(target rune) ([]Edit, error) {
	pos := s.pending[s.cursor]

	tc, ok := CategoryByShortcut(s.cats, target)
	if !ok {
		s.cursor++
		return nil, nil
	}
	if cur, ok := CategoryAt(s.cats, pos); ok && cur.Start == tc.Start {
		// Never move an item onto itself.
		s.cursor++
		return nil, nil
	}

	rel, err := Relocate(s.rules, s.lines, pos, tc)
	if err != nil {
		return nil, err
	}

	lo, hi, repl := rel.Span()
	for i, p := range s.pending {
		s.pending[i] = rel.MapPos(p)
	}
	s.lines = rel.Lines
	// Category positions went stale the moment lines moved; rescan so later
	// lookups and moves see current boundaries. Shortcuts are derived from
	// the heading set, which a move never changes, so they stay stable.
	s.cats = ScanCategories(s.rules, s.lines)

	return []Edit{{Start: lo, End: hi, Repl: repl}}, nil
}
