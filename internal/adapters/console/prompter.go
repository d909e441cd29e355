package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"priolist/internal/domain"
	"priolist/internal/ports"
)

// Prompter implements ports.Prompter over a line-oriented reader and writer,
// normally stdin and stdout.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from in and printing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// PromptAction shows the candidate line with its available targets and reads
// one answer: a digit tags, a category shortcut moves, s skips, q quits.
func (p *Prompter) PromptAction(c domain.Candidate, cats []domain.Category) (domain.Action, error) {
	fmt.Fprintf(p.out, "\n%s\n", c.Raw)
	if c.HasCategory {
		fmt.Fprintf(p.out, "  in: %s\n", c.Category.Name)
	}
	if len(cats) > 0 {
		var parts []string
		for _, cat := range cats {
			if cat.Shortcut == domain.ShortcutExhausted {
				continue
			}
			parts = append(parts, fmt.Sprintf("[%c] %s", cat.Shortcut, cat.Name))
		}
		fmt.Fprintf(p.out, "  move: %s\n", strings.Join(parts, "  "))
	}
	fmt.Fprint(p.out, "priority 1-9, move, [s]kip, [q]uit> ")

	for {
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return domain.Action{}, fmt.Errorf("failed to read input: %w", err)
			}
			return domain.Action{Kind: domain.ActionQuit}, nil
		}

		answer := strings.TrimSpace(p.in.Text())
		if answer == "" {
			fmt.Fprint(p.out, "> ")
			continue
		}

		r := []rune(strings.ToLower(answer))[0]
		switch {
		case r == 'q':
			return domain.Action{Kind: domain.ActionQuit}, nil
		case r == 's':
			return domain.Action{Kind: domain.ActionSkip}, nil
		case r >= '1' && r <= '9':
			return domain.Action{Kind: domain.ActionPriority, Priority: int(r - '0')}, nil
		default:
			return domain.Action{Kind: domain.ActionMove, Target: r}, nil
		}
	}
}

// Notify prints a message, prefixing warnings and errors.
func (p *Prompter) Notify(msg string, sev ports.Severity) {
	switch sev {
	case ports.SeverityWarn:
		fmt.Fprintf(p.out, "warning: %s\n", msg)
	case ports.SeverityError:
		fmt.Fprintf(p.out, "error: %s\n", msg)
	default:
		fmt.Fprintln(p.out, msg)
	}
}
