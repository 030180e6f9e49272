package bereia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEmptyDescription(t *testing.T) {
	p := NewMorphologyParser()
	m := p.Parse("")
	assert.Equal(t, Morphology{}, m)
	assert.False(t, m.IsFinite())
	assert.True(t, m.IsNonfinite())
}

func TestParseNonVerbal(t *testing.T) {
	p := NewMorphologyParser()
	m := p.Parse("Substantivo - Nominativo Feminino Singular")
	assert.Empty(t, m.Mood)
	assert.Empty(t, m.Tense)
	assert.Empty(t, m.Voice)
	assert.Zero(t, m.Person)
	assert.Empty(t, m.Number)
	assert.Equal(t, "Substantivo - Nominativo Feminino Singular", m.Extra)
}

func TestParseFinite(t *testing.T) {
	p := NewMorphologyParser()

	tests := []struct {
		in   string
		want Morphology
	}{
		{
			"Verbo - Presente Ativa Indicativo - 1ª Pessoa do Singular",
			Morphology{Tense: "presente", Mood: "indicativo", Voice: "ativa", Person: 1, Number: "singular"},
		},
		{
			"Verbo - Aoristo Ativa Indicativo - 3ª Pessoa do Plural",
			Morphology{Tense: "aoristo", Mood: "indicativo", Voice: "ativa", Person: 3, Number: "plural"},
		},
		{
			"Verbo - Presente Passiva Indicativo - 3ª Pessoa do Singular",
			Morphology{Tense: "presente", Mood: "indicativo", Voice: "passiva", Person: 3, Number: "singular"},
		},
		{
			"Verbo - Presente Média ou Passiva Indicativo - 2ª Pessoa do Plural",
			Morphology{Tense: "presente", Mood: "indicativo", Voice: "media_passiva", Person: 2, Number: "plural"},
		},
		{
			"Verbo - Imperfeito Ativa Indicativo - 1ª Pessoa do Plural",
			Morphology{Tense: "imperfeito", Mood: "indicativo", Voice: "ativa", Person: 1, Number: "plural"},
		},
		{
			"Verbo - PluPerfeito Ativa Indicativo - 3ª Pessoa do Singular",
			Morphology{Tense: "pluperfeito", Mood: "indicativo", Voice: "ativa", Person: 3, Number: "singular"},
		},
		{
			"Verbo - Aoristo Ativa Imperativo - 2ª Pessoa do Singular",
			Morphology{Tense: "aoristo", Mood: "imperativo", Voice: "ativa", Person: 2, Number: "singular"},
		},
	}

	for _, tt := range tests {
		got := p.Parse(tt.in)
		tt.want.Extra = tt.in
		assert.Equal(t, tt.want, got, "tag %q", tt.in)
		assert.True(t, got.IsFinite(), "tag %q", tt.in)
	}
}

func TestParseNonfinite(t *testing.T) {
	p := NewMorphologyParser()

	m := p.Parse("Verbo - Aoristo Ativa Infinitivo")
	assert.Equal(t, "infinitivo", m.Mood)
	assert.Equal(t, "aoristo", m.Tense)
	assert.True(t, m.IsInfinitive())
	assert.Zero(t, m.Person)
	assert.Empty(t, m.Number)

	m = p.Parse("Verbo - Aoristo Passiva Particípio - Nominativo Masculino Singular")
	assert.Equal(t, "participo", m.Mood)
	assert.Equal(t, "passiva", m.Voice)
	assert.True(t, m.IsParticiple())
	assert.Equal(t, "nominativo", m.Case)
	assert.Equal(t, "masculino", m.Gender)
	assert.Equal(t, "singular", m.Number)
	assert.Zero(t, m.Person)
}

func TestParseOptative(t *testing.T) {
	p := NewMorphologyParser()
	m := p.Parse("Verbo - Presente Ativa Optativo - 3ª Pessoa do Singular")
	assert.Equal(t, "optativo", m.Mood)
	assert.False(t, m.IsFinite())
}

func TestParseVoiceLongestAliasWins(t *testing.T) {
	p := NewMorphologyParser()
	// "media ou passiva" must win over the bare "media" alias.
	m := p.Parse("Verbo - Aoristo Média ou Passiva Subjuntivo - 3ª Pessoa do Plural")
	assert.Equal(t, "media_passiva", m.Voice)
	assert.Equal(t, "subjuntivo", m.Mood)
	assert.Equal(t, "aoristo", m.Tense)
}

func TestParseNumberInferredFromTail(t *testing.T) {
	p := NewMorphologyParser()
	m := p.Parse("Verbo - Presente Ativa Particípio - Acusativo Neutro Plural")
	assert.Equal(t, "plural", m.Number)
	assert.Equal(t, "acusativo", m.Case)
	assert.Equal(t, "neutro", m.Gender)
}
