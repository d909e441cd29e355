package commands

import (
	"context"
	"fmt"

	"priolist/internal/application"
	"priolist/internal/domain"
	"priolist/internal/ports"
)

// MoveResult contains the result of moving an item group.
type MoveResult struct {
	NewLine int // 1-based position of the moved parent
	Moved   int // number of lines moved (parent + subtree)
	Message string
}

// MoveCommand relocates the item group at a line to another category,
// addressed by category name or shortcut character.
type MoveCommand struct {
	buf   ports.Buffer
	rules domain.Rules

	LineNo int    // 1-based parent line
	Target string // category name, or a single shortcut character
}

// NewMoveCommand creates a new MoveCommand
func NewMoveCommand(buf ports.Buffer, rules domain.Rules, lineNo int, target string) *MoveCommand {
	return &MoveCommand{buf: buf, rules: rules, LineNo: lineNo, Target: target}
}

// Validate checks if the move operation is valid
func (c *MoveCommand) Validate() error {
	if c.Target == "" {
		return &application.ValidationError{
			Field:   "target",
			Message: "target category is required",
		}
	}
	if c.LineNo < 1 || c.LineNo > c.buf.Len() {
		return &application.RangeError{Start: c.LineNo, End: c.LineNo, Len: c.buf.Len()}
	}

	l := domain.ParseLine(c.rules, c.buf.Lines()[c.LineNo-1])
	if l.IsHeading() {
		return &application.MoveError{Line: c.LineNo - 1, Target: c.Target, Reason: "line is a category heading"}
	}
	if l.IsSubItem() {
		return &application.MoveError{Line: c.LineNo - 1, Target: c.Target, Reason: "line is a sub-item; move its parent instead"}
	}
	return nil
}

// Execute runs the move command
func (c *MoveCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	lines := c.buf.Lines()
	pos := c.LineNo - 1

	cats := domain.ScanCategories(c.rules, lines)
	if len(cats) == 0 {
		return nil, application.ErrNoCategories
	}

	target, ok := resolveCategory(cats, c.Target)
	if !ok {
		return nil, errUnknownCategory(c.Target)
	}
	if cur, ok := domain.CategoryAt(cats, pos); ok && cur.Start == target.Start {
		return &MoveResult{
			NewLine: c.LineNo,
			Message: fmt.Sprintf("already in %s", target.Name),
		}, nil
	}

	rel, err := domain.Relocate(c.rules, lines, pos, target)
	if err != nil {
		return nil, fmt.Errorf("failed to move item: %w", err)
	}
	lo, hi, repl := rel.Span()
	if err := c.buf.ReplaceRange(lo, hi, repl); err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	moved := 1 + len(domain.CollectSubtree(rel.Lines, rel.NewParentPos))
	return &MoveResult{
		NewLine: rel.NewParentPos + 1,
		Moved:   moved,
		Message: fmt.Sprintf("moved to %s (line %d)", target.Name, rel.NewParentPos+1),
	}, nil
}

// resolveCategory matches a target string against category names first,
// then against single-character shortcuts.
func resolveCategory(cats []domain.Category, target string) (domain.Category, bool) {
	for _, c := range cats {
		if c.Name == target {
			return c, true
		}
	}
	runes := []rune(target)
	if len(runes) == 1 {
		return domain.CategoryByShortcut(cats, runes[0])
	}
	return domain.Category{}, false
}

func errUnknownCategory(target string) error {
	return fmt.Errorf("%w: %q", application.ErrUnknownTarget, target)
}
