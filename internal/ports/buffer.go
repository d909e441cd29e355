package ports

// Buffer is the host document abstraction: line-addressable text storage.
// Positions are 0-based; ranges are half-open. Implementations must apply
// ReplaceRange as one atomic splice; a partially applied splice is not a
// supported state.
//
// Buffers are not safe for concurrent use. Every operation in this module
// assumes exclusive access to the line sequence for the duration of one
// call.
type Buffer interface {
	// Lines returns the current line sequence. Callers must not mutate
	// the returned slice.
	Lines() []string

	// Len returns the number of lines.
	Len() int

	// ReplaceRange splices repl in place of lines [start, end).
	ReplaceRange(start, end int, repl []string) error
}
