package domain

// Category is a heading-delimited section of the document. Categories are
// recomputed by a fresh scan before every operation that needs them; a
// Category's positions are invalid the moment the document mutates.
type Category struct {
	Name     string
	Shortcut rune // unique within one scan; ShortcutExhausted when none free
	Start    int  // position of the heading line
	End      int  // position of the next heading, or len(lines)
}

// ScanCategories walks the document once and returns every category in
// encountered order, with shortcuts assigned and end boundaries filled in.
func ScanCategories(r Rules, lines []string) []Category {
	var cats []Category
	used := make(map[rune]bool)
	for _, c := range r.ReservedShortcuts {
		used[c] = true
	}

	for i, raw := range lines {
		l := ParseLine(r, raw)
		if !l.IsHeading() {
			continue
		}
		sc := AssignShortcut(l.HeadingName, used)
		if sc != ShortcutExhausted {
			used[sc] = true
		}
		if n := len(cats); n > 0 {
			cats[n-1].End = i
		}
		cats = append(cats, Category{
			Name:     l.HeadingName,
			Shortcut: sc,
			Start:    i,
			End:      len(lines),
		})
	}
	return cats
}

// CategoryAt returns the category containing the given position: the last
// category whose heading starts strictly before it. The second return is
// false when the position precedes every category.
func CategoryAt(cats []Category, pos int) (Category, bool) {
	for i := len(cats) - 1; i >= 0; i-- {
		if cats[i].Start < pos {
			return cats[i], true
		}
	}
	return Category{}, false
}

// CategoryByShortcut resolves a shortcut character to its category.
func CategoryByShortcut(cats []Category, sc rune) (Category, bool) {
	for _, c := range cats {
		if c.Shortcut == sc && sc != ShortcutExhausted {
			return c, true
		}
	}
	return Category{}, false
}
