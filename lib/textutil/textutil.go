package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var innerWhitespace = regexp.MustCompile(`\s+`)

// NormalizeKey turns free-form classification text into the natural key
// used for reference data lookups: lowercased and trimmed.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CleanDisplay tidies scraped display text: runs of whitespace collapsed
// to a single space, remaining non-printable runes removed, ends trimmed.
// Whitespace is collapsed before the printability pass so newlines and
// tabs become separators instead of vanishing.
func CleanDisplay(s string) string {
	collapsed := innerWhitespace.ReplaceAllString(s, " ")
	var b strings.Builder
	for _, c := range collapsed {
		if unicode.IsPrint(c) {
			b.WriteRune(c)
		}
	}
	return strings.TrimSpace(b.String())
}
