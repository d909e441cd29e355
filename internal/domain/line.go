package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotAHeading is returned when a heading-only accessor is called on a
// line that does not match the heading pattern.
var ErrNotAHeading = errors.New("not a heading line")

// CheckState reports the checkbox state of a list line.
type CheckState int

const (
	CheckAbsent CheckState = iota
	CheckUnchecked
	CheckChecked
)

func (c CheckState) String() string {
	switch c {
	case CheckUnchecked:
		return "unchecked"
	case CheckChecked:
		return "checked"
	default:
		return "absent"
	}
}

// Line is the parsed form of one raw document line. It is computed on
// demand and never persisted; Raw is always the authoritative text.
type Line struct {
	Raw         string
	Indent      string // leading whitespace run, verbatim
	Marker      string // "-", "*", "+" or "12." without trailing space; "" if none
	Check       CheckState
	Priority    int // valid only when HasPriority
	HasPriority bool
	Content     string // text with marker, checkbox, and priority tag stripped
	HeadingName string // non-empty iff the line matches the heading pattern
}

var (
	bulletMarkerRe  = regexp.MustCompile(`^([-*+])\s+`)
	ordinalMarkerRe = regexp.MustCompile(`^(\d+\.)\s+`)
	checkboxRe      = regexp.MustCompile(`^\[( |x)\] ?`)
)

// ParseLine parses one raw line into its structured form. Parsing never
// fails: unrecognized lines come back with an empty marker and the whole
// trimmed text as content.
func ParseLine(r Rules, raw string) Line {
	l := Line{Raw: raw, Check: CheckAbsent}

	if m := r.Heading.FindStringSubmatch(raw); m != nil {
		l.HeadingName = strings.TrimRight(m[1], " \t")
	}

	rest := strings.TrimLeft(raw, " \t")
	l.Indent = raw[:len(raw)-len(rest)]

	isBullet := false
	if m := bulletMarkerRe.FindStringSubmatch(rest); m != nil {
		l.Marker = m[1]
		rest = rest[len(m[0]):]
		isBullet = true
	} else if m := ordinalMarkerRe.FindStringSubmatch(rest); m != nil {
		l.Marker = m[1]
		rest = rest[len(m[0]):]
	}

	// A checkbox counts only immediately after a bullet marker.
	if isBullet {
		if m := checkboxRe.FindStringSubmatch(rest); m != nil {
			if m[1] == "x" {
				l.Check = CheckChecked
			} else {
				l.Check = CheckUnchecked
			}
			rest = rest[len(m[0]):]
		}
	}

	if loc := r.Priority.FindStringSubmatchIndex(rest); loc != nil {
		capture := rest[loc[2]:loc[3]]
		if n, err := strconv.Atoi(capture); err == nil {
			l.Priority = n
			l.HasPriority = true
			rest = joinStripped(rest[:loc[0]], rest[loc[1]:])
		}
	}

	l.Content = strings.TrimRight(rest, " \t")
	return l
}

// joinStripped reassembles the text around a removed tag, collapsing the
// spacing the removal produced to a single separating space.
func joinStripped(before, after string) string {
	before = strings.TrimRight(before, " \t")
	after = strings.TrimLeft(after, " \t")
	if before == "" {
		return after
	}
	if after == "" {
		return before
	}
	return before + " " + after
}

// IndentWidth returns the number of leading whitespace characters.
func (l Line) IndentWidth() int {
	return len(l.Indent)
}

// IsHeading reports whether the line is a category heading.
func (l Line) IsHeading() bool {
	return l.HeadingName != ""
}

// IsSubItem reports whether the line is indented enough to belong to a
// preceding parent item. Exactly one level is modeled: indented vs. not.
func (l Line) IsSubItem() bool {
	return l.IndentWidth() >= 2
}

// BareContent returns the line's content with marker, checkbox, and
// priority tag stripped, leading indentation kept verbatim.
func (l Line) BareContent() string {
	return l.Indent + l.Content
}

// CategoryName returns the heading text of a heading line. Callers must
// guard with IsHeading (or the Rules heading pattern) first.
func CategoryName(r Rules, raw string) (string, error) {
	l := ParseLine(r, raw)
	if !l.IsHeading() {
		return "", fmt.Errorf("%w: %q", ErrNotAHeading, raw)
	}
	return l.HeadingName, nil
}

// FormatWithPriority rebuilds a line with the given priority tag, replacing
// any tag already present. Sub-item lines never carry their own priority
// and are returned unchanged.
func (r Rules) FormatWithPriority(raw string, priority int) string {
	l := ParseLine(r, raw)
	if l.IsSubItem() {
		return raw
	}
	tag := fmt.Sprintf(r.PriorityFormat, priority)
	if l.Marker == "" {
		return l.Indent + tag + " " + l.Content
	}
	return l.Indent + l.Marker + " " + tag + " " + l.Content
}

// StripPriority rebuilds a line without any priority tag, normalizing the
// marker spacing. Used when relocating an item into a new category.
func (r Rules) StripPriority(raw string) string {
	l := ParseLine(r, raw)
	if l.Marker == "" {
		return l.Indent + l.Content
	}
	return l.Indent + l.Marker + " " + l.Content
}
