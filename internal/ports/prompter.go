package ports

import "priolist/internal/domain"

// Severity classifies a notification for display purposes.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

// Prompter is the interactive collaborator of a prioritize run. For each
// candidate item it is asked once, blocking, for an action; it never drives
// the run itself.
type Prompter interface {
	// PromptAction presents one candidate together with the current
	// category scan and returns the chosen action.
	PromptAction(c domain.Candidate, cats []domain.Category) (domain.Action, error)

	// Notify displays a status message. Fire and forget; it never affects
	// control flow.
	Notify(msg string, sev Severity)
}
