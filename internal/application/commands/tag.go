package commands

import (
	"context"
	"fmt"

	"priolist/internal/application"
	"priolist/internal/domain"
	"priolist/internal/ports"
)

// TagResult contains the result of setting a priority tag.
type TagResult struct {
	Line    string // the rewritten line
	Changed bool
	Message string
}

// TagCommand sets or replaces the priority tag on one item line.
type TagCommand struct {
	buf   ports.Buffer
	rules domain.Rules

	LineNo   int // 1-based
	Priority int // 1-9
}

// NewTagCommand creates a new TagCommand
func NewTagCommand(buf ports.Buffer, rules domain.Rules, lineNo, priority int) *TagCommand {
	return &TagCommand{buf: buf, rules: rules, LineNo: lineNo, Priority: priority}
}

// Validate checks if the tag operation is valid
func (c *TagCommand) Validate() error {
	if c.Priority < 1 || c.Priority > 9 {
		return &application.ValidationError{
			Field:   "priority",
			Message: fmt.Sprintf("priority must be 1-9, got %d", c.Priority),
		}
	}
	if c.LineNo < 1 || c.LineNo > c.buf.Len() {
		return &application.RangeError{Start: c.LineNo, End: c.LineNo, Len: c.buf.Len()}
	}

	l := domain.ParseLine(c.rules, c.buf.Lines()[c.LineNo-1])
	if l.IsHeading() {
		return &application.ValidationError{
			Field:   "line",
			Message: "cannot tag a category heading",
		}
	}
	if l.IsSubItem() {
		return &application.ValidationError{
			Field:   "line",
			Message: "sub-items never receive priority tags; tag the parent",
		}
	}
	return nil
}

// Execute runs the tag command
func (c *TagCommand) Execute(ctx context.Context) (*TagResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	pos := c.LineNo - 1
	old := c.buf.Lines()[pos]
	updated := c.rules.FormatWithPriority(old, c.Priority)
	if updated == old {
		return &TagResult{Line: old, Message: "unchanged"}, nil
	}

	if err := c.buf.ReplaceRange(pos, pos+1, []string{updated}); err != nil {
		return nil, fmt.Errorf("failed to apply tag: %w", err)
	}
	return &TagResult{
		Line:    updated,
		Changed: true,
		Message: fmt.Sprintf("line %d set to priority %d", c.LineNo, c.Priority),
	}, nil
}
