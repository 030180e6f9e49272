package bereia

import (
	"regexp"
	"strings"
)

// preferredKeyOrder is the output field order of every transformed entry;
// fields not listed keep their original relative order after these.
var preferredKeyOrder = []string{
	"strongs",
	"grego",
	"transliteracao",
	"verbete",
	"ocorrencia",
	"traducao",
	"pt",
	"classegram",
	"desgram",
}

// verbClassPrefix marks verbal entries in the classegram field.
const verbClassPrefix = "V"

var phraseSepRe = regexp.MustCompile(`[;,]`)

// SplitPhrases splits a multi-sense gloss on comma/semicolon separators into
// trimmed, non-empty clauses.
func SplitPhrases(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	for _, part := range phraseSepRe.Split(text, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// BuildTranslation recomputes the traducao value of a verbal entry from its
// verbete clause list and desgram tag. It returns "" when the entry has no
// usable gloss, in which case the existing traducao must be kept.
func (c *Conjugator) BuildTranslation(entry *Entry) string {
	verbete := entry.GetString("verbete")
	if verbete == "" {
		return ""
	}
	base := verbete
	if idx := strings.Index(verbete, ":"); idx >= 0 {
		base = strings.TrimSpace(verbete[idx+1:])
	}
	if base == "" {
		return ""
	}

	morph := c.parser.Parse(entry.GetString("desgram"))
	phrases := SplitPhrases(base)
	if len(phrases) == 0 {
		phrases = []string{base}
	}
	return strings.Join(c.ConjugateEntry(phrases, morph), ", ")
}

// Transform applies the batch transform to every entry in place: verbal
// entries get a recomputed traducao, every entry gets pt recomputed as the
// first clause of traducao, and fields are reordered. The transform is
// best-effort per entry; a degraded tag leaves the gloss untouched.
func Transform(d *Dictionary, c *Conjugator) {
	for _, key := range d.Keys() {
		entry := d.Entry(key)
		if strings.HasPrefix(entry.GetString("classegram"), verbClassPrefix) {
			if traducao := c.BuildTranslation(entry); traducao != "" {
				entry.SetString("traducao", traducao)
			}
		}

		pt := ""
		if traducao := entry.GetString("traducao"); traducao != "" {
			pt = strings.TrimSpace(strings.SplitN(traducao, ",", 2)[0])
		}
		entry.SetString("pt", pt)

		entry.Reorder(preferredKeyOrder)
	}
}
