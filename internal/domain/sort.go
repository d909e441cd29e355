package domain

import (
	"fmt"
	"slices"
)

// SortRange sorts the item groups of lines[start:end) within each category
// block and returns the replacement for exactly that range. The caller
// splices the result back in one atomic replace.
//
// A new block starts at every heading line; the heading stays pinned at the
// top of its block. Groups are ordered by checked state (unchecked first),
// then priority ascending with untagged groups last, and ties keep their
// original relative order. Only the parent line of a group is examined; a
// checked sub-item never affects group placement.
func SortRange(r Rules, lines []string, start, end int) ([]string, error) {
	if start < 0 || end > len(lines) || start > end {
		return nil, fmt.Errorf("invalid range [%d, %d) for %d lines", start, end, len(lines))
	}

	sel := lines[start:end]
	out := make([]string, 0, len(sel))

	for blockStart := 0; blockStart < len(sel); {
		blockEnd := blockStart + 1
		for blockEnd < len(sel) && !ParseLine(r, sel[blockEnd]).IsHeading() {
			blockEnd++
		}

		block := sel[blockStart:blockEnd]
		if ParseLine(r, block[0]).IsHeading() {
			out = append(out, block[0])
			block = block[1:]
		}
		for _, g := range sortGroups(groupBlock(r, block)) {
			out = append(out, g.Lines()...)
		}
		blockStart = blockEnd
	}
	return out, nil
}

// groupBlock partitions a heading-free run of lines into item groups. Every
// non-sub-item line starts a group; following lines indented deeper than the
// group's parent are attached to it. A sub-item with no preceding parent in
// the block forms a group of its own.
func groupBlock(r Rules, block []string) []ItemGroup {
	var groups []ItemGroup
	for i := 0; i < len(block); {
		parent := ParseLine(r, block[i])
		g := ItemGroup{Parent: parent, Pos: i}
		j := i + 1
		for j < len(block) && indentWidth(block[j]) > parent.IndentWidth() {
			g.Subtree = append(g.Subtree, block[j])
			j++
		}
		groups = append(groups, g)
		i = j
	}
	return groups
}

// sortGroups orders groups by (checked state, priority, original position).
func sortGroups(groups []ItemGroup) []ItemGroup {
	slices.SortStableFunc(groups, func(a, b ItemGroup) int {
		if c := compareChecked(a.Parent, b.Parent); c != 0 {
			return c
		}
		return comparePriority(a.Parent, b.Parent)
	})
	return groups
}

func compareChecked(a, b Line) int {
	ac, bc := a.Check == CheckChecked, b.Check == CheckChecked
	switch {
	case ac == bc:
		return 0
	case bc:
		return -1
	default:
		return 1
	}
}

func comparePriority(a, b Line) int {
	switch {
	case a.HasPriority && b.HasPriority:
		return a.Priority - b.Priority
	case a.HasPriority:
		return -1
	case b.HasPriority:
		return 1
	default:
		return 0
	}
}
