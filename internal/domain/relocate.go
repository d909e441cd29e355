package domain

import "fmt"

// Relocation is the result of moving an item group to another category. It
// carries the full new line sequence, the group's new position, and enough
// bookkeeping to map any old position to its new one, so callers holding
// positions into the old document apply MapPos instead of doing their own
// shift arithmetic.
type Relocation struct {
	Lines        []string
	NewParentPos int

	removeStart int // old position of the removed parent
	removeLen   int // parent + subtree
	insertAt    int // insertion point in post-removal coordinates
}

// Relocate removes the item group rooted at parentPos and appends it as the
// last lines of the target category. The parent line is normalized (priority
// tag stripped, marker spacing rejoined); subtree lines are carried
// verbatim. Whether source and target category are equal is the caller's
// concern; Relocate performs the move it is asked for.
func Relocate(r Rules, lines []string, parentPos int, target Category) (Relocation, error) {
	if parentPos < 0 || parentPos >= len(lines) {
		return Relocation{}, fmt.Errorf("position %d out of range (document has %d lines)", parentPos, len(lines))
	}
	if target.Start < 0 || target.Start >= len(lines) {
		return Relocation{}, fmt.Errorf("target category %q out of range", target.Name)
	}

	subtree := CollectSubtree(lines, parentPos)
	n := 1 + len(subtree)

	moved := make([]string, 0, n)
	moved = append(moved, r.StripPriority(lines[parentPos]))
	moved = append(moved, subtree...)

	rest := make([]string, 0, len(lines)-n)
	rest = append(rest, lines[:parentPos]...)
	rest = append(rest, lines[parentPos+n:]...)

	// The target's end boundary is rescanned after the removal, since the
	// removal may have shifted it.
	head := target.Start
	if head > parentPos {
		head -= n
	}
	ip := len(rest)
	for i := head + 1; i < len(rest); i++ {
		if ParseLine(r, rest[i]).IsHeading() {
			ip = i
			break
		}
	}

	out := make([]string, 0, len(lines))
	out = append(out, rest[:ip]...)
	out = append(out, moved...)
	out = append(out, rest[ip:]...)

	return Relocation{
		Lines:        out,
		NewParentPos: ip,
		removeStart:  parentPos,
		removeLen:    n,
		insertAt:     ip,
	}, nil
}

// MapPos translates a position in the old document to the equivalent
// position in the relocated one.
func (rl Relocation) MapPos(old int) int {
	rs, n, ip := rl.removeStart, rl.removeLen, rl.insertAt
	if old >= rs && old < rs+n {
		return ip + (old - rs)
	}
	p := old
	if p > rs {
		p -= n
	}
	if p >= ip {
		p += n
	}
	return p
}

// Span returns the minimal splice that turns the old document into the new
// one: replace old lines [lo, hi) with repl. One relocation is therefore a
// single atomic range replace against the document's line storage.
func (rl Relocation) Span() (lo, hi int, repl []string) {
	rs, n := rl.removeStart, rl.removeLen
	ipOld := rl.insertAt
	if rl.insertAt > rs {
		ipOld += n
	}

	if ipOld >= rs+n {
		lo, hi = rs, ipOld
		repl = rl.Lines[rs:ipOld]
		return lo, hi, repl
	}
	lo, hi = ipOld, rs+n
	repl = rl.Lines[ipOld : rs+n]
	return lo, hi, repl
}
