package bereia

import (
	"regexp"
	"strings"
)

// LemmaInfo describes a verb lemma located inside a gloss phrase.
type LemmaInfo struct {
	// Lemma is the matched token text, possibly including a "-se" suffix.
	Lemma string
	// Root is the token with the reflexive suffix stripped.
	Root string
	// Reflexive reports whether the token carried a "-se" suffix.
	Reflexive bool
	// Start and End are byte offsets of the match within the source
	// phrase, suitable for splicing the replacement back in.
	Start int
	End   int
}

// wordRe matches a single Portuguese word token, optionally followed by the
// reflexive suffix marker.
var wordRe = regexp.MustCompile(`[A-Za-zÁÉÍÓÚÂÊÔÃÕÀÈÌÒÙáéíóúâêôãõàèìòùçÇ]+(?:-se)?`)

// infinitiveEndings are the token endings accepted as infinitive-class:
// the three regular classes plus irregular phonetic endings.
var infinitiveEndings = []string{"ar", "er", "ir", "or", "ôr", "ír", "êr", "uzir"}

// LocateLemma scans phrase left to right and returns the first token that
// looks like a Portuguese infinitive. The second return value is false when
// no token qualifies; callers must then leave the phrase unchanged.
func LocateLemma(phrase string) (LemmaInfo, bool) {
	for _, span := range wordRe.FindAllStringIndex(phrase, -1) {
		candidate := phrase[span[0]:span[1]]
		if !isInfinitive(candidate) {
			continue
		}
		info := LemmaInfo{
			Lemma: candidate,
			Root:  candidate,
			Start: span[0],
			End:   span[1],
		}
		if strings.HasSuffix(candidate, "-se") {
			info.Root = candidate[:len(candidate)-3]
			info.Reflexive = true
		}
		return info, true
	}
	return LemmaInfo{}, false
}

// isInfinitive reports whether token, lowercased and stripped of a trailing
// reflexive marker and punctuation, ends with an infinitive-class ending.
func isInfinitive(token string) bool {
	t := strings.ToLower(token)
	t = strings.TrimSuffix(t, "-se")
	t = strings.TrimRight(t, ".,;:!?")
	for _, ending := range infinitiveEndings {
		if strings.HasSuffix(t, ending) {
			return true
		}
	}
	return false
}
