package domain

import (
	"strings"
	"unicode"
)

// ShortcutExhausted is the sentinel shortcut assigned when every candidate
// character is taken. It is a sentinel rather than an error so that a scan
// of an oversized document degrades instead of failing.
const ShortcutExhausted = '?'

// AssignShortcut derives a human-guessable shortcut for a category name.
// Candidates are tried in order: the first letter of each word, every other
// character of the name restricted to a-z, the whole alphabet, and finally
// '0' (the only numeral that is not a priority digit). The first candidate
// not in used wins. Callers are expected to seed used with the reserved
// set; ScanCategories does this automatically.
func AssignShortcut(name string, used map[rune]bool) rune {
	free := func(c rune) bool { return !used[c] }

	for _, word := range strings.Fields(name) {
		c := unicode.ToLower([]rune(word)[0])
		if c >= 'a' && c <= 'z' && free(c) {
			return c
		}
	}

	runes := []rune(strings.ToLower(name))
	for i := 0; i < len(runes); i += 2 {
		c := runes[i]
		if c >= 'a' && c <= 'z' && free(c) {
			return c
		}
	}

	for c := 'a'; c <= 'z'; c++ {
		if free(c) {
			return c
		}
	}

	if free('0') {
		return '0'
	}
	return ShortcutExhausted
}
