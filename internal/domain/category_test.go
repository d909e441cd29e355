package domain

import "testing"

func TestScanCategories(t *testing.T) {
	r := DefaultRules()
	lines := []string{
		"# Todo",
		"- stray item",
		"## Work",
		"- [p1] Prepare slides",
		"  - outline",
		"## Home",
		"- Buy groceries",
		"",
		"## Errands",
	}

	cats := ScanCategories(r, lines)
	if len(cats) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(cats))
	}

	want := []struct {
		name       string
		shortcut   rune
		start, end int
	}{
		{"Work", 'w', 2, 5},
		{"Home", 'h', 5, 8},
		{"Errands", 'e', 8, 9},
	}
	for i, w := range want {
		c := cats[i]
		if c.Name != w.name || c.Shortcut != w.shortcut || c.Start != w.start || c.End != w.end {
			t.Errorf("category %d = %+v, want %+v", i, c, w)
		}
	}
}

func TestScanCategoriesEmpty(t *testing.T) {
	cats := ScanCategories(DefaultRules(), []string{"- a", "- b"})
	if len(cats) != 0 {
		t.Errorf("expected no categories, got %d", len(cats))
	}
}

func TestCategoryAt(t *testing.T) {
	r := DefaultRules()
	lines := []string{"## A", "- x", "## B", "- y"}
	cats := ScanCategories(r, lines)

	tests := []struct {
		name    string
		pos     int
		want    string
		wantHit bool
	}{
		{"item in first category", 1, "A", true},
		{"item in second category", 3, "B", true},
		{"heading belongs to previous category", 2, "A", true},
		{"position before all categories", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := CategoryAt(cats, tt.pos)
			if ok != tt.wantHit {
				t.Fatalf("CategoryAt(%d) hit = %v, want %v", tt.pos, ok, tt.wantHit)
			}
			if ok && c.Name != tt.want {
				t.Errorf("CategoryAt(%d) = %q, want %q", tt.pos, c.Name, tt.want)
			}
		})
	}
}

func TestCategoryByShortcut(t *testing.T) {
	cats := ScanCategories(DefaultRules(), []string{"## Work", "## Home"})

	if c, ok := CategoryByShortcut(cats, 'h'); !ok || c.Name != "Home" {
		t.Errorf("shortcut h = (%v, %v), want Home", c.Name, ok)
	}
	if _, ok := CategoryByShortcut(cats, 'z'); ok {
		t.Error("unknown shortcut should not resolve")
	}
	if _, ok := CategoryByShortcut(cats, ShortcutExhausted); ok {
		t.Error("the exhaustion sentinel must never resolve to a category")
	}
}
