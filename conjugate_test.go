package bereia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finiteTag(tense, voice, mood string, person int, number string) Morphology {
	return Morphology{Tense: tense, Mood: mood, Voice: voice, Person: person, Number: number}
}

func TestConjugateRegularPresent(t *testing.T) {
	c := New()
	subject, predicate := c.BuildPhrase("amar", finiteTag("presente", "ativa", "indicativo", 1, "singular"))
	assert.Equal(t, "eu", subject)
	assert.Equal(t, "amo", predicate)
}

func TestConjugateRegularPreterite(t *testing.T) {
	c := New()
	_, predicate := c.BuildPhrase("partir", finiteTag("aoristo", "ativa", "indicativo", 3, "plural"))
	assert.Equal(t, "partiram", predicate)
}

func TestConjugatePassive(t *testing.T) {
	c := New()
	subject, predicate := c.BuildPhrase("amar", finiteTag("presente", "passiva", "indicativo", 3, "singular"))
	assert.Equal(t, "ele(a)", subject)
	assert.Equal(t, "é amado", predicate)
}

func TestConjugateInfinitivePerfect(t *testing.T) {
	c := New()
	_, predicate := c.BuildPhrase("fazer", Morphology{Mood: "infinitivo", Tense: "aoristo"})
	assert.Equal(t, "ter feito", predicate)
}

func TestConjugateIrregularBase(t *testing.T) {
	c := New()
	subject, predicate := c.BuildPhrase("ser", finiteTag("presente", "ativa", "indicativo", 1, "plural"))
	assert.Equal(t, "nós", subject)
	assert.Equal(t, "somos", predicate)
}

func TestConjugateEmptyMorphologyIsNoOp(t *testing.T) {
	c := New()
	subject, predicate := c.BuildPhrase("amar profundamente", Morphology{})
	assert.Empty(t, subject)
	assert.Equal(t, "amar profundamente", predicate)
}

func TestConjugateMissingPersonIsNoOp(t *testing.T) {
	c := New()
	morph := Morphology{Tense: "presente", Mood: "indicativo", Voice: "ativa"}
	_, predicate := c.BuildPhrase("amar", morph)
	assert.Equal(t, "amar", predicate)

	morph.Person = 2
	_, predicate = c.BuildPhrase("amar", morph)
	assert.Equal(t, "amar", predicate, "number still missing")
}

func TestConjugateUnsupportedParadigmFallsBack(t *testing.T) {
	c := New()
	// The composite perfect paradigm has no regular endings; irregular
	// lemmas fall back through the fixed paradigm order.
	_, predicate := c.BuildPhrase("trazer", finiteTag("perfeito", "ativa", "indicativo", 3, "singular"))
	assert.Equal(t, "traz", predicate)

	_, predicate = c.BuildPhrase("ser", finiteTag("perfeito", "ativa", "indicativo", 1, "singular"))
	assert.Equal(t, "sou", predicate)

	// A regular lemma has no fallback table, so the phrase stays intact.
	_, predicate = c.BuildPhrase("amar", finiteTag("perfeito", "ativa", "indicativo", 1, "singular"))
	assert.Equal(t, "amar", predicate)
}

func TestConjugateMoodOnlyDefaults(t *testing.T) {
	c := New()
	// Unmapped (mood, tense) pairs degrade to the mood's default paradigm.
	_, predicate := c.BuildPhrase("amar", finiteTag("pluperfeito", "ativa", "subjuntivo", 3, "singular"))
	assert.Equal(t, "ame", predicate)
}

func TestConjugateOptativeAsSubjunctive(t *testing.T) {
	c := New()
	_, predicate := c.BuildPhrase("amar", Morphology{
		Tense: "presente", Mood: "optativo", Voice: "ativa", Person: 3, Number: "singular",
	})
	assert.Equal(t, "ame", predicate)
}

func TestConjugateReflexiveLemma(t *testing.T) {
	c := New()
	_, predicate := c.BuildPhrase("arrepender-se", finiteTag("presente", "ativa", "indicativo", 1, "singular"))
	assert.Equal(t, "me arrependo", predicate)
}

func TestConjugateMiddlePassiveReadsReflexive(t *testing.T) {
	c := New()
	_, predicate := c.BuildPhrase("amar", finiteTag("presente", "media_passiva", "indicativo", 3, "singular"))
	assert.Equal(t, "se ama", predicate)

	_, predicate = c.BuildPhrase("lavar", finiteTag("presente", "media", "indicativo", 2, "plural"))
	assert.Equal(t, "vos lavais", predicate)
}

func TestConjugateParticipleForms(t *testing.T) {
	c := New()
	tests := []struct {
		phrase string
		tense  string
		want   string
	}{
		{"amar", "presente", "amando"},
		{"fazer", "aoristo", "tendo feito"},
		{"amar", "futuro", "prestes a amar"},
		{"partir", "", "partido"},
	}
	for _, tt := range tests {
		_, predicate := c.BuildPhrase(tt.phrase, Morphology{Mood: "participo", Tense: tt.tense})
		assert.Equal(t, tt.want, predicate, "tense %q", tt.tense)
	}
}

func TestConjugateInfinitiveForms(t *testing.T) {
	c := New()
	tests := []struct {
		phrase string
		tense  string
		want   string
	}{
		{"amar", "", "amar"},
		{"amar", "presente", "amar"},
		{"partir", "futuro", "vir a partir"},
		{"ver", "perfeito", "ter visto"},
	}
	for _, tt := range tests {
		_, predicate := c.BuildPhrase(tt.phrase, Morphology{Mood: "infinitivo", Tense: tt.tense})
		assert.Equal(t, tt.want, predicate, "tense %q", tt.tense)
	}
}

func TestConjugateGerundMood(t *testing.T) {
	c := New()
	_, predicate := c.BuildPhrase("amar", Morphology{Mood: "gerundio"})
	assert.Equal(t, "amando", predicate)

	_, predicate = c.BuildPhrase("pôr", Morphology{Mood: "gerundio"})
	assert.Equal(t, "pondo", predicate)
}

func TestConjugateSplicesInsidePhrase(t *testing.T) {
	c := New()
	_, predicate := c.BuildPhrase("não amar o mundo", finiteTag("presente", "ativa", "indicativo", 1, "singular"))
	assert.Equal(t, "não amo o mundo", predicate)
}

func TestCasePreservation(t *testing.T) {
	c := New()
	morph := finiteTag("presente", "ativa", "indicativo", 1, "singular")

	_, predicate := c.BuildPhrase("Amar", morph)
	assert.Equal(t, "Amo", predicate)

	_, predicate = c.BuildPhrase("AMAR", morph)
	assert.Equal(t, "AMO", predicate)

	// Passive periphrases mirror the lemma casing too.
	_, predicate = c.BuildPhrase("Amar", finiteTag("presente", "passiva", "indicativo", 3, "singular"))
	assert.Equal(t, "É amado", predicate)
}

func TestPassiveRoundTrip(t *testing.T) {
	c := New()
	numbers := []string{"singular", "plural"}
	serPresente := c.tables.IrregularBases["ser"][PresenteIndicativo]

	for person := 1; person <= 3; person++ {
		for _, number := range numbers {
			slot := slotIndex(person, number)
			_, predicate := c.BuildPhrase("amar", finiteTag("presente", "passiva", "indicativo", person, number))
			assert.Equal(t, serPresente[slot]+" amado", predicate,
				"person %d %s", person, number)
		}
	}
}

func TestSlotIndex(t *testing.T) {
	tests := []struct {
		person int
		number string
		want   int
	}{
		{1, "singular", 0},
		{2, "singular", 1},
		{3, "singular", 2},
		{1, "plural", 3},
		{2, "plural", 4},
		{3, "plural", 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slotIndex(tt.person, tt.number))
	}
}

func TestRegularEndingsCoverAllClasses(t *testing.T) {
	for paradigm, classes := range DefaultTables().RegularEndings {
		for _, class := range []VerbClass{ClassAR, ClassER, ClassIR} {
			_, ok := classes[class]
			require.True(t, ok, "paradigm %s missing class %s", paradigm, class)
		}
	}
}

func TestConjugateEntrySubjectOnlyOnce(t *testing.T) {
	c := New()
	morph := finiteTag("presente", "ativa", "indicativo", 1, "singular")
	rendered := c.ConjugateEntry([]string{"amar", "estimar", "querer bem"}, morph)
	require.Len(t, rendered, 3)
	assert.Equal(t, "eu amo", rendered[0])
	assert.Equal(t, "estimo", rendered[1])
	assert.Equal(t, "quero bem", rendered[2])
}

func TestConjugateEntryNoLemmaKeepsClause(t *testing.T) {
	c := New()
	morph := finiteTag("presente", "ativa", "indicativo", 3, "plural")
	rendered := c.ConjugateEntry([]string{"de fato", "amar"}, morph)
	require.Len(t, rendered, 2)
	// The first clause has no lemma, so no subject is attached anywhere.
	assert.Equal(t, "de fato", rendered[0])
	assert.Equal(t, "amam", rendered[1])
}

func TestResolveSubject(t *testing.T) {
	c := New()

	subject, ok := c.ResolveSubject(Morphology{Person: 3, Number: "plural"})
	assert.True(t, ok)
	assert.Equal(t, "eles(as)", subject)

	_, ok = c.ResolveSubject(Morphology{Person: 3})
	assert.False(t, ok)
	_, ok = c.ResolveSubject(Morphology{Number: "plural"})
	assert.False(t, ok)
}

func TestConjugateDeterministic(t *testing.T) {
	c := New()
	morph := finiteTag("aoristo", "ativa", "indicativo", 2, "plural")
	_, first := c.BuildPhrase("partir", morph)
	for i := 0; i < 5; i++ {
		_, again := c.BuildPhrase("partir", morph)
		assert.Equal(t, first, again)
	}
}
