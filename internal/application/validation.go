package application

// ValidateRange checks a 0-based half-open selection against a document
// length. It returns a RangeError before any mutation happens; an empty
// selection is reported as ErrEmptySelection.
func ValidateRange(start, end, docLen int) error {
	if start < 0 || end > docLen || start > end {
		return &RangeError{Start: start, End: end, Len: docLen}
	}
	if start == end {
		return ErrEmptySelection
	}
	return nil
}

// NormalizeSelection converts a user-facing 1-based inclusive line range
// into the 0-based half-open form used internally. Zero values select the
// whole document.
func NormalizeSelection(first, last, docLen int) (start, end int, err error) {
	if first == 0 && last == 0 {
		return 0, docLen, nil
	}
	if first < 1 || last < first || last > docLen {
		return 0, 0, &RangeError{Start: first, End: last, Len: docLen}
	}
	return first - 1, last, nil
}
