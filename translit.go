package bereia

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	// roughBreathing is COMBINING REVERSED COMMA ABOVE, the Greek spiritus asper.
	roughBreathing = '̔'
	// diaeresis suppresses diphthong reading of a vowel pair.
	diaeresis = '̈'
)

// greekBase maps a Greek base letter to its Latin transliteration.
var greekBase = map[rune]string{
	'α': "a", 'β': "b", 'γ': "g", 'δ': "d", 'ε': "e", 'ζ': "z", 'η': "ē",
	'θ': "th", 'ι': "i", 'κ': "k", 'λ': "l", 'μ': "m", 'ν': "n", 'ξ': "x",
	'ο': "o", 'π': "p", 'ρ': "r", 'σ': "s", 'ς': "s", 'τ': "t", 'υ': "y",
	'φ': "ph", 'χ': "ch", 'ψ': "ps", 'ω': "ō",
	'Α': "a", 'Β': "b", 'Γ': "g", 'Δ': "d", 'Ε': "e", 'Ζ': "z", 'Η': "ē",
	'Θ': "th", 'Ι': "i", 'Κ': "k", 'Λ': "l", 'Μ': "m", 'Ν': "n", 'Ξ': "x",
	'Ο': "o", 'Π': "p", 'Ρ': "r", 'Σ': "s", 'Τ': "t", 'Υ': "y",
	'Φ': "ph", 'Χ': "ch", 'Ψ': "ps", 'Ω': "ō",
}

var greekVowels = map[rune]bool{
	'α': true, 'ε': true, 'η': true, 'ι': true, 'ο': true, 'υ': true, 'ω': true,
	'Α': true, 'Ε': true, 'Η': true, 'Ι': true, 'Ο': true, 'Υ': true, 'Ω': true,
}

// greekDiphthongs maps lowercase vowel pairs to their transliteration.
var greekDiphthongs = map[[2]rune]string{
	{'ο', 'υ'}: "ou",
	{'ε', 'υ'}: "eu",
	{'α', 'υ'}: "au",
	{'η', 'υ'}: "ēu",
	{'ε', 'ι'}: "ei",
	{'ο', 'ι'}: "oi",
	{'α', 'ι'}: "ai",
	{'υ', 'ι'}: "yi",
}

// cluster is one base character with its combining marks after NFD
// decomposition.
type cluster struct {
	base  rune
	marks []rune
}

func decompose(word string) []cluster {
	var clusters []cluster
	for _, r := range norm.NFD.String(word) {
		if unicode.Is(unicode.M, r) && len(clusters) > 0 {
			last := &clusters[len(clusters)-1]
			last.marks = append(last.marks, r)
			continue
		}
		clusters = append(clusters, cluster{base: r})
	}
	return clusters
}

func hasMark(marks []rune, want rune) bool {
	for _, m := range marks {
		if m == want {
			return true
		}
	}
	return false
}

// Transliterate converts a polytonic Greek word to its Latin transliteration.
// Diphthongs collapse to a single digraph unless the second vowel carries a
// diaeresis; rough breathing prefixes an "h" (and turns ρ into "rh"); the
// result is capitalized when the Greek word starts with an uppercase letter.
func Transliterate(word string) string {
	clusters := decompose(word)

	var out strings.Builder
	for i := 0; i < len(clusters); i++ {
		c := clusters[i]
		_, mapped := greekBase[c.base]
		if !unicode.IsLetter(c.base) && !mapped {
			out.WriteRune(c.base)
			continue
		}

		rough := hasMark(c.marks, roughBreathing)
		t, ok := greekBase[c.base]
		if !ok {
			t = string(c.base)
		}

		if (c.base == 'ρ' || c.base == 'Ρ') && rough {
			t = "rh"
		}

		if greekVowels[c.base] && i+1 < len(clusters) {
			next := clusters[i+1]
			key := [2]rune{unicode.ToLower(c.base), unicode.ToLower(next.base)}
			if d, ok := greekDiphthongs[key]; ok && !hasMark(next.marks, diaeresis) {
				if rough {
					d = "h" + d
				}
				out.WriteString(d)
				i++
				continue
			}
		}

		if greekVowels[c.base] && rough {
			t = "h" + t
		}
		out.WriteString(t)
	}

	result := out.String()
	if result != "" && startsUpperLetter(word) {
		runes := []rune(result)
		runes[0] = unicode.ToUpper(runes[0])
		result = string(runes)
	}
	return result
}

// startsUpperLetter reports whether the first letter of s is uppercase.
func startsUpperLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return unicode.IsUpper(r)
		}
	}
	return false
}
