package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNoCategories   = errors.New("no categories in document")
	ErrEmptySelection = errors.New("empty selection")
	ErrInvalidRange   = errors.New("invalid range")
	ErrUnknownTarget  = errors.New("unknown move target")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RangeError reports a selection that is inverted or out of document
// bounds. The operation aborts before any mutation.
type RangeError struct {
	Start int
	End   int
	Len   int
}

func (e *RangeError) Error() string {
	if e.Start > e.End {
		return fmt.Sprintf("invalid range: start %d after end %d", e.Start, e.End)
	}
	return fmt.Sprintf("invalid range %d-%d: document has %d lines", e.Start, e.End, e.Len)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// MoveError represents a move-related failure
type MoveError struct {
	Line   int
	Target string
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("cannot move line %d to %q: %s", e.Line+1, e.Target, e.Reason)
}
