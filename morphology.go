package bereia

import (
	"regexp"
	"sort"
	"strings"
)

// Morphology is the normalized reading of a free-text grammatical tag.
// A zero value in any dimension ("" or 0) means the dimension was absent
// from the tag; absent dimensions are never guessed.
type Morphology struct {
	// Tense is the canonical tense name (presente, aoristo, imperfeito,
	// futuro, perfeito, pluperfeito).
	Tense string
	// Mood is the canonical mood name (indicativo, subjuntivo, imperativo,
	// infinitivo, participo, optativo, gerundio).
	Mood string
	// Voice is the canonical voice name (ativa, passiva, media,
	// media_passiva).
	Voice string
	// Person is 1, 2 or 3; 0 when absent.
	Person int
	// Number is "singular" or "plural"; empty when absent.
	Number string
	// Case is the grammatical case keyword found in the tag tail.
	Case string
	// Gender is the grammatical gender keyword found in the tag tail.
	Gender string
	// Extra keeps the original raw tag for traceability.
	Extra string
}

// IsFinite reports whether the mood selects a finite paradigm.
func (m Morphology) IsFinite() bool {
	switch m.Mood {
	case "indicativo", "subjuntivo", "imperativo":
		return true
	}
	return false
}

// IsParticiple reports whether the mood is participial.
func (m Morphology) IsParticiple() bool { return m.Mood == "participo" }

// IsInfinitive reports whether the mood is infinitival.
func (m Morphology) IsInfinitive() bool { return m.Mood == "infinitivo" }

// IsNonfinite is the complement of IsFinite.
func (m Morphology) IsNonfinite() bool { return !m.IsFinite() }

// alias is one (pattern, canonical) pair of an alias table. Tables are kept
// sorted by descending pattern length so a longer, more specific term always
// shadows a shorter one ("media ou passiva" before "media").
type alias struct {
	pattern   string
	canonical string
}

func sortAliases(m map[string]string) []alias {
	out := make([]alias, 0, len(m))
	for k, v := range m {
		out = append(out, alias{k, v})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].pattern) != len(out[j].pattern) {
			return len(out[i].pattern) > len(out[j].pattern)
		}
		return out[i].pattern < out[j].pattern
	})
	return out
}

// verbMarker is the token identifying verbal tags; tags without it yield an
// empty Morphology.
const verbMarker = "Verbo"

var personRe = regexp.MustCompile(`(?i)([123])ª?\s*pessoa`)

// MorphologyParser extracts a Morphology from a `desgram` tag string.
// It is stateless after construction and safe for concurrent use.
type MorphologyParser struct {
	voiceAliases []alias
	moodAliases  []alias
	tenseAliases map[string]string

	caseKeywords   []string
	genderKeywords []string
	numberKeywords []string
}

// NewMorphologyParser builds a parser over the canonical alias tables.
func NewMorphologyParser() *MorphologyParser {
	return &MorphologyParser{
		voiceAliases: sortAliases(map[string]string{
			"ativa":            "ativa",
			"ativo":            "ativa",
			"passiva":          "passiva",
			"passivo":          "passiva",
			"media":            "media",
			"medio":            "media",
			"medio ou passiva": "media_passiva",
			"media ou passiva": "media_passiva",
			"media ou passivo": "media_passiva",
		}),
		moodAliases: sortAliases(map[string]string{
			"indicativo": "indicativo",
			"subjuntivo": "subjuntivo",
			"imperativo": "imperativo",
			"infinitivo": "infinitivo",
			"participio": "participo",
			"participo":  "participo",
			"optativo":   "optativo",
			"gerundio":   "gerundio",
		}),
		tenseAliases: map[string]string{
			"presente":    "presente",
			"aoristo":     "aoristo",
			"imperfeito":  "imperfeito",
			"futuro":      "futuro",
			"perfeito":    "perfeito",
			"pluperfeito": "pluperfeito",
		},
		caseKeywords:   []string{"nominativo", "acusativo", "genitivo", "dativo", "vocativo"},
		genderKeywords: []string{"masculino", "feminino", "neutro"},
		numberKeywords: []string{"singular", "plural"},
	}
}

// Parse turns a free-text grammatical description into a Morphology.
// It never fails: an empty or non-verbal description yields a record with
// every dimension absent and Extra set to the raw input.
func (p *MorphologyParser) Parse(description string) Morphology {
	morph := Morphology{Extra: description}
	if description == "" || !strings.Contains(description, verbMarker) {
		return morph
	}

	segments := strings.Split(description, "-")
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}
	var core, tail string
	if len(segments) > 1 {
		core = segments[1]
	}
	if len(segments) > 2 {
		tail = segments[2]
	}

	voice, leftover := p.extractVoice(core)
	mood, tense := p.extractMoodTense(leftover)
	morph.Voice = voice
	morph.Mood = mood
	morph.Tense = tense

	if tail != "" {
		person, number := p.extractPersonNumber(tail)
		caseKw, gender, inferredNumber := p.extractCaseGenderNumber(tail, number)
		morph.Person = person
		morph.Number = inferredNumber
		morph.Case = caseKw
		morph.Gender = gender
	}

	return morph
}

// extractVoice finds the voice alias inside chunk (diacritic- and
// case-insensitive, longest alias wins) and returns the canonical voice plus
// the chunk with the matched substring removed.
func (p *MorphologyParser) extractVoice(chunk string) (voice, leftover string) {
	if chunk == "" {
		return "", ""
	}
	folded := StripAccents(strings.ToLower(chunk))
	for _, a := range p.voiceAliases {
		if idx := strings.Index(folded, a.pattern); idx >= 0 {
			leftover = strings.TrimSpace(folded[:idx] + folded[idx+len(a.pattern):])
			return a.canonical, leftover
		}
	}
	return "", strings.TrimSpace(folded)
}

// extractMoodTense finds the mood alias by substring and the tense by
// whole-token match on what remains. The pluperfect tense has multi-form
// spellings in the source tags, so a prefix check backs up the token match.
func (p *MorphologyParser) extractMoodTense(chunk string) (mood, tense string) {
	if chunk == "" {
		return "", ""
	}
	folded := StripAccents(strings.ToLower(chunk))
	for _, a := range p.moodAliases {
		if strings.Contains(folded, a.pattern) {
			mood = a.canonical
			folded = strings.Replace(folded, a.pattern, "", 1)
			break
		}
	}

	for _, token := range strings.Fields(folded) {
		token = strings.ReplaceAll(token, "º", "")
		if canonical, ok := p.tenseAliases[token]; ok {
			tense = canonical
			break
		}
		if strings.HasPrefix(token, "pluperfeito") {
			tense = "pluperfeito"
			break
		}
	}
	if tense == "" && strings.Contains(folded, "pluperfeito") {
		tense = "pluperfeito"
	}
	return mood, tense
}

// extractPersonNumber reads the "Nª pessoa" marker and a nearby number
// keyword from the tag tail.
func (p *MorphologyParser) extractPersonNumber(chunk string) (person int, number string) {
	if m := personRe.FindStringSubmatch(chunk); m != nil {
		person = int(m[1][0] - '0')
	}
	folded := StripAccents(strings.ToLower(chunk))
	for _, kw := range p.numberKeywords {
		if strings.Contains(folded, kw) {
			number = kw
			break
		}
	}
	return person, number
}

// extractCaseGenderNumber reads case, gender and (when not already found near
// the person marker) number from the tag tail by keyword membership.
func (p *MorphologyParser) extractCaseGenderNumber(chunk, fallbackNumber string) (caseKw, gender, number string) {
	folded := StripAccents(strings.ToLower(chunk))
	for _, kw := range p.caseKeywords {
		if strings.Contains(folded, kw) {
			caseKw = kw
			break
		}
	}
	for _, kw := range p.genderKeywords {
		if strings.Contains(folded, kw) {
			gender = kw
			break
		}
	}
	number = fallbackNumber
	if number == "" {
		for _, kw := range p.numberKeywords {
			if strings.Contains(folded, kw) {
				number = kw
				break
			}
		}
	}
	return caseKw, gender, number
}
