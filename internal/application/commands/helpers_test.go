package commands

import (
	"fmt"
	"strings"

	"priolist/internal/domain"
	"priolist/internal/ports"
)

// fakeBuffer is an in-memory ports.Buffer for command tests.
type fakeBuffer struct {
	lines    []string
	replaces int
}

func newFakeBuffer(lines ...string) *fakeBuffer {
	return &fakeBuffer{lines: lines}
}

func (b *fakeBuffer) Lines() []string { return b.lines }
func (b *fakeBuffer) Len() int        { return len(b.lines) }

func (b *fakeBuffer) ReplaceRange(start, end int, repl []string) error {
	if start < 0 || end > len(b.lines) || start > end {
		return fmt.Errorf("bad splice [%d, %d) of %d", start, end, len(b.lines))
	}
	out := make([]string, 0, len(b.lines)-(end-start)+len(repl))
	out = append(out, b.lines[:start]...)
	out = append(out, repl...)
	out = append(out, b.lines[end:]...)
	b.lines = out
	b.replaces++
	return nil
}

// scriptedPrompter replays a fixed list of actions and records what it was
// asked about.
type scriptedPrompter struct {
	actions []domain.Action
	next    int

	prompted []string
	notices  []string
}

func (p *scriptedPrompter) PromptAction(c domain.Candidate, cats []domain.Category) (domain.Action, error) {
	p.prompted = append(p.prompted, c.Raw)
	if p.next >= len(p.actions) {
		return domain.Action{Kind: domain.ActionQuit}, nil
	}
	a := p.actions[p.next]
	p.next++
	return a, nil
}

func (p *scriptedPrompter) Notify(msg string, sev ports.Severity) {
	p.notices = append(p.notices, msg)
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
