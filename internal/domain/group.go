package domain

import "strings"

// indentWidth counts the leading whitespace characters of a raw line.
func indentWidth(raw string) int {
	return len(raw) - len(strings.TrimLeft(raw, " \t"))
}

// CollectSubtree returns the sub-item lines belonging to the parent at
// parentPos: the maximal run of immediately-following lines whose
// indentation is strictly greater than the parent's. The returned lines
// are the originals, byte for byte; subtree text is never transformed.
func CollectSubtree(lines []string, parentPos int) []string {
	if parentPos < 0 || parentPos >= len(lines) {
		return nil
	}
	parent := indentWidth(lines[parentPos])

	var subtree []string
	for i := parentPos + 1; i < len(lines); i++ {
		if indentWidth(lines[i]) <= parent {
			break
		}
		subtree = append(subtree, lines[i])
	}
	return subtree
}

// ItemGroup is a parent line plus its subtree, treated as one indivisible
// unit by the relocator and the sorter.
type ItemGroup struct {
	Parent  Line
	Pos     int      // parent position at grouping time
	Subtree []string // verbatim sub-item lines
}

// Lines returns the group flattened back to raw lines, parent first.
func (g ItemGroup) Lines() []string {
	out := make([]string, 0, 1+len(g.Subtree))
	out = append(out, g.Parent.Raw)
	return append(out, g.Subtree...)
}

// Size returns the total number of lines in the group.
func (g ItemGroup) Size() int {
	return 1 + len(g.Subtree)
}
