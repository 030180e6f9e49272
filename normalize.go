package bereia

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentStripper decomposes to NFD, drops combining marks and recomposes,
// turning "média" into "media".
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes diacritics from s so comparisons can be made
// diacritic-insensitively. The input is returned untouched on a transform
// error (malformed UTF-8).
func StripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

var (
	spaceRunRe     = regexp.MustCompile(`\s+`)
	spaceBeforeRe  = regexp.MustCompile(`\s+([,.;:?!)])`)
	spaceAfterOpRe = regexp.MustCompile(`\(\s+`)
)

// TidySpaces collapses whitespace runs and removes spaces before closing
// punctuation and after an opening parenthesis.
func TidySpaces(s string) string {
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = spaceBeforeRe.ReplaceAllString(s, "$1")
	s = spaceAfterOpRe.ReplaceAllString(s, "(")
	return strings.TrimSpace(s)
}
