package commands

import (
	"context"
	"fmt"

	"priolist/internal/application"
	"priolist/internal/domain"
	"priolist/internal/ports"
)

// PrioritizeResult contains the outcome of one prioritize run.
type PrioritizeResult struct {
	Offered int
	Tagged  int
	Moved   int
	Skipped int
	Quit    bool
	Message string
}

// PrioritizeCommand walks the candidate items of a selection one at a time,
// asking the prompter what to do with each. Accepted edits are applied to
// the buffer immediately; there is no transaction across the run.
type PrioritizeCommand struct {
	buf      ports.Buffer
	prompter ports.Prompter
	rules    domain.Rules

	// First and Last select a 1-based inclusive line range; both zero
	// selects the whole document.
	First      int
	Last       int
	SkipTagged bool

	// Debug enables a diagnostic notification per applied edit.
	Debug bool
}

// NewPrioritizeCommand creates a new PrioritizeCommand
func NewPrioritizeCommand(buf ports.Buffer, prompter ports.Prompter, rules domain.Rules, first, last int, skipTagged bool) *PrioritizeCommand {
	return &PrioritizeCommand{
		buf:        buf,
		prompter:   prompter,
		rules:      rules,
		First:      first,
		Last:       last,
		SkipTagged: skipTagged,
	}
}

// Execute runs the prioritize loop until the candidates are exhausted or
// the prompter answers quit.
func (c *PrioritizeCommand) Execute(ctx context.Context) (*PrioritizeResult, error) {
	start, end, err := application.NormalizeSelection(c.First, c.Last, c.buf.Len())
	if err != nil {
		return nil, err
	}

	session, err := domain.NewSession(c.rules, c.buf.Lines(), start, end, c.SkipTagged)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", application.ErrInvalidRange, err)
	}
	if len(session.Categories()) == 0 {
		c.prompter.Notify("no categories found: move targets unavailable", ports.SeverityWarn)
	}

	res := &PrioritizeResult{}
	for !session.Done() {
		cand, ok := session.Current()
		if !ok {
			break
		}
		res.Offered++

		action, err := c.prompter.PromptAction(cand, session.Categories())
		if err != nil {
			return res, fmt.Errorf("prompt failed: %w", err)
		}

		edits, err := session.Apply(action)
		if err != nil {
			return res, err
		}
		for _, e := range edits {
			if err := c.buf.ReplaceRange(e.Start, e.End, e.Repl); err != nil {
				return res, fmt.Errorf("failed to apply edit: %w", err)
			}
			if c.Debug {
				c.prompter.Notify(fmt.Sprintf("replaced lines [%d, %d) with %d line(s)",
					e.Start+1, e.End+1, len(e.Repl)), ports.SeverityInfo)
			}
		}

		switch action.Kind {
		case domain.ActionQuit:
			res.Quit = true
		case domain.ActionPriority:
			res.Tagged++
		case domain.ActionMove:
			if len(edits) > 0 {
				res.Moved++
			} else {
				res.Skipped++
			}
		default:
			res.Skipped++
		}
	}

	res.Message = fmt.Sprintf("%d tagged, %d moved, %d skipped", res.Tagged, res.Moved, res.Skipped)
	return res, nil
}
