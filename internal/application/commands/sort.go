package commands

import (
	"context"
	"fmt"

	"priolist/internal/application"
	"priolist/internal/domain"
	"priolist/internal/ports"
)

// SortResult contains the result of sorting a selection.
type SortResult struct {
	Start   int // 0-based start of the replaced range
	End     int
	Changed bool
	Message string
}

// SortCommand re-sorts the item groups of a selection within each category
// block and replaces the whole range in one atomic splice.
type SortCommand struct {
	buf   ports.Buffer
	rules domain.Rules

	// First and Last select a 1-based inclusive line range; both zero
	// selects the whole document.
	First int
	Last  int
}

// NewSortCommand creates a new SortCommand
func NewSortCommand(buf ports.Buffer, rules domain.Rules, first, last int) *SortCommand {
	return &SortCommand{buf: buf, rules: rules, First: first, Last: last}
}

// Execute runs the sort command
func (c *SortCommand) Execute(ctx context.Context) (*SortResult, error) {
	start, end, err := application.NormalizeSelection(c.First, c.Last, c.buf.Len())
	if err != nil {
		return nil, err
	}

	lines := c.buf.Lines()
	sorted, err := domain.SortRange(c.rules, lines, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", application.ErrInvalidRange, err)
	}

	changed := false
	for i, raw := range sorted {
		if lines[start+i] != raw {
			changed = true
			break
		}
	}
	if changed {
		if err := c.buf.ReplaceRange(start, end, sorted); err != nil {
			return nil, fmt.Errorf("failed to apply sort: %w", err)
		}
	}

	msg := "already sorted"
	if changed {
		msg = fmt.Sprintf("sorted lines %d-%d", start+1, end)
	}
	return &SortResult{Start: start, End: end, Changed: changed, Message: msg}, nil
}
