package domain

import (
	"slices"
	"testing"
)

func TestCollectSubtree(t *testing.T) {
	lines := []string{
		"- parent",
		"  - child one",
		"    - grandchild",
		"  - child two",
		"- sibling",
		"  - sibling's child",
	}

	tests := []struct {
		name string
		pos  int
		want []string
	}{
		{
			name: "full subtree, stops at sibling",
			pos:  0,
			want: []string{"  - child one", "    - grandchild", "  - child two"},
		},
		{
			name: "second parent",
			pos:  4,
			want: []string{"  - sibling's child"},
		},
		{
			name: "leaf has no subtree",
			pos:  2,
			want: nil,
		},
		{
			name: "out of range",
			pos:  99,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectSubtree(lines, tt.pos)
			if !slices.Equal(got, tt.want) {
				t.Errorf("CollectSubtree(%d) = %q, want %q", tt.pos, got, tt.want)
			}
		})
	}
}

func TestCollectSubtreeStopsAtBlankLine(t *testing.T) {
	lines := []string{"- parent", "  - child", "", "  - orphan"}
	got := CollectSubtree(lines, 0)
	want := []string{"  - child"}
	if !slices.Equal(got, want) {
		t.Errorf("CollectSubtree = %q, want %q", got, want)
	}
}

func TestCollectSubtreeRunsToEndOfDocument(t *testing.T) {
	lines := []string{"- parent", "  - child", "    - deeper"}
	got := CollectSubtree(lines, 0)
	if len(got) != 2 {
		t.Errorf("expected 2 subtree lines, got %d", len(got))
	}
}
