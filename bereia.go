// Package bereia derives inflected Portuguese verb phrases from the
// morphological tags of a Koine Greek lexicon, turning a base gloss such as
// "amar" plus a tag like "Verbo - Presente Ativa Indicativo - 1ª Pessoa do
// Singular" into "eu amo". It also carries the companion utilities of the
// dictionary pipeline: the JSON dictionary batch transform and the
// Greek-to-Latin transliteration used by the interlinear pages.
package bereia

// Conjugator holds the morphology parser and the shared conjugation tables
// and provides the public API. Tables are read-only after construction, so a
// single Conjugator may be shared freely across concurrent callers.
type Conjugator struct {
	parser *MorphologyParser
	tables *Tables
}

// New returns a ready-to-use Conjugator backed by the built-in Portuguese
// conjugation tables.
func New() *Conjugator {
	return &Conjugator{
		parser: NewMorphologyParser(),
		tables: defaultTables,
	}
}

// Parser returns the morphology parser used by this Conjugator.
func (c *Conjugator) Parser() *MorphologyParser {
	return c.parser
}

// BuildPhrase conjugates the verb lemma found in phrase according to morph.
// It returns the resolved subject pronoun (empty when person or number is
// absent, or when no lemma was found) and the conjugated predicate with
// whitespace tidied. A phrase with no locatable lemma is returned unchanged
// apart from whitespace normalization.
func (c *Conjugator) BuildPhrase(phrase string, morph Morphology) (subject, predicate string) {
	info, ok := LocateLemma(phrase)
	if !ok {
		return "", TidySpaces(phrase)
	}
	if s, ok := c.ResolveSubject(morph); ok {
		subject = s
	}
	return subject, TidySpaces(c.conjugatePredicate(phrase, info, morph))
}

// ConjugateEntry conjugates each clause of a multi-sense gloss independently
// and prepends the subject pronoun only to the first clause.
func (c *Conjugator) ConjugateEntry(phrases []string, morph Morphology) []string {
	rendered := make([]string, 0, len(phrases))
	for i, phrase := range phrases {
		subject, predicate := c.BuildPhrase(phrase, morph)
		if i == 0 && subject != "" {
			rendered = append(rendered, TidySpaces(subject+" "+predicate))
		} else {
			rendered = append(rendered, predicate)
		}
	}
	return rendered
}

// ResolveSubject returns the subject pronoun for the person and number of
// morph. The second return value is false when either dimension is absent.
func (c *Conjugator) ResolveSubject(morph Morphology) (string, bool) {
	if morph.Person == 0 || morph.Number == "" {
		return "", false
	}
	p, ok := c.tables.SubjectPronouns[personNumber{morph.Person, morph.Number}]
	return p, ok
}
