package bereia

import (
	"strings"
	"unicode"
)

// conjugatePredicate dispatches on the mood class of morph and returns the
// phrase with the located lemma replaced by its inflected form. Unclassified
// moods pass the phrase through unchanged.
func (c *Conjugator) conjugatePredicate(phrase string, info LemmaInfo, morph Morphology) string {
	switch {
	case morph.IsFinite():
		return c.conjugateFinite(phrase, info, morph)
	case morph.IsInfinitive():
		return c.conjugateInfinitive(phrase, info, morph)
	case morph.IsParticiple():
		return c.conjugateParticiple(phrase, info, morph)
	case morph.Mood == "gerundio":
		return c.conjugateGerund(phrase, info)
	case morph.Mood == "optativo":
		// Portuguese has no optative; approximate with the subjunctive.
		redispatched := morph
		redispatched.Mood = "subjuntivo"
		return c.conjugateFinite(phrase, info, redispatched)
	}
	return phrase
}

// conjugateFinite synthesizes a finite form and splices it into phrase.
// Missing person or number makes form selection impossible, so the phrase
// is returned unchanged.
func (c *Conjugator) conjugateFinite(phrase string, info LemmaInfo, morph Morphology) string {
	paradigm, ok := c.finiteParadigm(morph)
	if !ok {
		return phrase
	}
	if morph.Person == 0 || morph.Number == "" {
		return phrase
	}
	slot := slotIndex(morph.Person, morph.Number)

	reflexivePron := ""
	needsReflexive := info.Reflexive || morph.Voice == "media" || morph.Voice == "media_passiva"
	if needsReflexive {
		reflexivePron = c.tables.ReflexivePronouns[personNumber{morph.Person, morph.Number}]
	}

	root := strings.ToLower(info.Root)
	form, ok := c.conjugateSimple(root, paradigm, slot)
	if !ok {
		return phrase
	}

	replacement := restoreCase(info.Root, form)
	switch {
	case morph.Voice == "passiva":
		replacement = restoreCase(info.Root, c.buildPassive(root, morph, slot))
	case morph.Voice == "media_passiva":
		// Middle-or-passive defaults to a reflexive reading.
		replacement = attachReflexive(replacement, reflexivePron)
	case needsReflexive && reflexivePron != "":
		replacement = attachReflexive(replacement, reflexivePron)
	}

	return splice(phrase, info, replacement)
}

// conjugateInfinitive renders the bare infinitive, the "ter + participle"
// perfect or the "vir a + infinitive" future periphrasis.
func (c *Conjugator) conjugateInfinitive(phrase string, info LemmaInfo, morph Morphology) string {
	root := strings.ToLower(info.Root)
	var form string
	switch morph.Tense {
	case "aoristo", "perfeito":
		form = "ter " + c.pastParticiple(root)
	case "futuro":
		form = "vir a " + root
	default:
		form = root
	}
	return splice(phrase, info, restoreCase(info.Root, form))
}

// conjugateParticiple renders the gerund (present), "tendo + participle"
// (perfect), "prestes a + infinitive" (future) or the bare past participle.
func (c *Conjugator) conjugateParticiple(phrase string, info LemmaInfo, morph Morphology) string {
	root := strings.ToLower(info.Root)
	var form string
	switch morph.Tense {
	case "presente":
		form = c.gerund(root)
	case "aoristo", "perfeito":
		form = "tendo " + c.pastParticiple(root)
	case "futuro":
		form = "prestes a " + root
	default:
		form = c.pastParticiple(root)
	}
	return splice(phrase, info, restoreCase(info.Root, form))
}

// conjugateGerund always renders the gerund form of the lemma.
func (c *Conjugator) conjugateGerund(phrase string, info LemmaInfo) string {
	form := c.gerund(strings.ToLower(info.Root))
	return splice(phrase, info, restoreCase(info.Root, form))
}

// finiteParadigm maps (mood, tense) to a paradigm, falling back to the
// mood-only default when the pair is unmapped.
func (c *Conjugator) finiteParadigm(morph Morphology) (Paradigm, bool) {
	if p, ok := c.tables.FiniteParadigms[moodTense{morph.Mood, morph.Tense}]; ok {
		return p, true
	}
	switch morph.Mood {
	case "indicativo":
		return PresenteIndicativo, true
	case "subjuntivo":
		return PresenteSubjuntivo, true
	case "imperativo":
		return Imperativo, true
	}
	return "", false
}

// slotIndex computes the 0-5 form index from person and number.
func slotIndex(person int, number string) int {
	slot := person - 1
	if number == "plural" {
		slot += 3
	}
	return slot
}

// conjugateSimple resolves the base surface form for a lemma, paradigm and
// slot. Resolution order: irregular table for this exact lemma and paradigm;
// regular endings for the lemma's verb class; the fixed fallback paradigm
// order for irregular lemmas whose table lacks the target paradigm.
func (c *Conjugator) conjugateSimple(lemma string, paradigm Paradigm, slot int) (string, bool) {
	if paradigms, ok := c.tables.IrregularBases[lemma]; ok {
		if forms, ok := paradigms[paradigm]; ok {
			return forms[slot], true
		}
	}

	group := verbGroup(lemma)
	classes, hasParadigm := c.tables.RegularEndings[paradigm]
	if !hasParadigm || group == "" {
		if paradigms, ok := c.tables.IrregularBases[lemma]; ok {
			for _, fallback := range c.tables.FallbackParadigms {
				if forms, ok := paradigms[fallback]; ok {
					return forms[slot], true
				}
			}
		}
		return "", false
	}

	return verbRadical(lemma) + classes[group][slot], true
}

// buildPassive renders the passive periphrasis: "ser" conjugated in the
// voice-mapped paradigm and slot, followed by the past participle.
func (c *Conjugator) buildPassive(lemma string, morph Morphology, slot int) string {
	auxParadigm, ok := c.tables.PassiveAuxParadigms[moodTense{morph.Mood, morph.Tense}]
	if !ok {
		auxParadigm = PresenteIndicativo
	}
	auxForms, ok := c.tables.IrregularBases["ser"][auxParadigm]
	if !ok {
		auxForms = c.tables.IrregularBases["ser"][PresenteIndicativo]
	}
	return auxForms[slot] + " " + c.pastParticiple(lemma)
}

// pastParticiple derives the past participle: irregular table first, then
// the class suffix rule (ar→ado, er/ir→ido).
func (c *Conjugator) pastParticiple(lemma string) string {
	if p, ok := c.tables.IrregularParticiples[lemma]; ok {
		return p
	}
	switch verbGroup(lemma) {
	case ClassAR:
		return verbRadical(lemma) + "ado"
	case ClassER, ClassIR:
		return verbRadical(lemma) + "ido"
	}
	return lemma
}

// gerund derives the gerund: irregular table first, then the class suffix
// rule (ar→ando, er→endo, ir→indo).
func (c *Conjugator) gerund(lemma string) string {
	if g, ok := c.tables.IrregularGerunds[lemma]; ok {
		return g
	}
	switch verbGroup(lemma) {
	case ClassAR:
		return verbRadical(lemma) + "ando"
	case ClassER:
		return verbRadical(lemma) + "endo"
	case ClassIR:
		return verbRadical(lemma) + "indo"
	}
	return lemma
}

// verbGroup classifies a lemma into one of the three regular classes.
// Irregular phonetic endings collapse onto the class they conjugate like
// (or/êr/ôr → er, ír → ir). Returns "" when the lemma fits no class.
func verbGroup(lemma string) VerbClass {
	for _, group := range []VerbClass{ClassAR, ClassER, ClassIR} {
		if strings.HasSuffix(lemma, string(group)) {
			return group
		}
	}
	switch {
	case strings.HasSuffix(lemma, "or"), strings.HasSuffix(lemma, "êr"), strings.HasSuffix(lemma, "ôr"):
		return ClassER
	case strings.HasSuffix(lemma, "ír"):
		return ClassIR
	}
	return ""
}

// verbRadical strips the two-rune class suffix from a lemma.
func verbRadical(lemma string) string {
	runes := []rune(lemma)
	if len(runes) < 2 {
		return lemma
	}
	return string(runes[:len(runes)-2])
}

// attachReflexive places the reflexive pronoun before the verb form, or
// suffixes the generic reflexive marker when no pronoun exists for the slot.
func attachReflexive(form, pronoun string) string {
	if pronoun == "" {
		return form + "-se"
	}
	return pronoun + " " + form
}

// splice replaces the located lemma span with replacement, leaving the text
// outside the span untouched.
func splice(phrase string, info LemmaInfo, replacement string) string {
	return phrase[:info.Start] + replacement + phrase[info.End:]
}

// restoreCase mirrors the casing of reference onto word: title-cased
// references capitalize the word, all-caps references uppercase it, anything
// else leaves it lowercase.
func restoreCase(reference, word string) string {
	switch {
	case isTitle(reference):
		return capitalize(word)
	case isUpperCased(reference):
		return strings.ToUpper(word)
	}
	return word
}

func isTitle(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isUpperCased(s string) bool {
	return s != "" && s == strings.ToUpper(s) && s != strings.ToLower(s)
}

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
