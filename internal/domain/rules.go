package domain

import "regexp"

// Rules holds the patterns that define how a todo document is read and
// written. A Rules value is threaded explicitly into every operation that
// needs one; there is no package-level configuration.
type Rules struct {
	// Heading matches a category heading line. Capture group 1 is the
	// category name.
	Heading *regexp.Regexp

	// Priority matches an embedded priority tag. Capture group 1 is the
	// numeric portion.
	Priority *regexp.Regexp

	// PriorityFormat renders a priority tag from its number.
	PriorityFormat string

	// ReservedShortcuts are characters that can never be assigned as
	// category shortcuts because they carry meaning in the prioritize
	// prompt (skip, quit, priority digits).
	ReservedShortcuts []rune
}

var (
	defaultHeading  = regexp.MustCompile(`^\s*##\s+(.+)$`)
	defaultPriority = regexp.MustCompile(`\[p(\d+)\]`)
)

// DefaultRules returns the standard rule set: level-2 Markdown headings as
// categories, [pN] priority tags, and {s, q, 1..9} reserved.
func DefaultRules() Rules {
	return Rules{
		Heading:           defaultHeading,
		Priority:          defaultPriority,
		PriorityFormat:    "[p%d]",
		ReservedShortcuts: []rune{'s', 'q', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
	}
}
