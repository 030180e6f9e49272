package bereia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		greek string
		want  string
	}{
		{"λόγος", "logos"},
		{"ἅγιος", "hagios"},
		{"οὐρανός", "ouranos"},
		{"ῥῆμα", "rhēma"},
		{"πνεῦμα", "pneuma"},
		{"θεός", "theos"},
		{"ψυχή", "psychē"},
		{"χάρις", "charis"},
		{"ἀγάπη", "agapē"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Transliterate(tt.greek), "greek %q", tt.greek)
	}
}

func TestTransliterateCapitalization(t *testing.T) {
	assert.Equal(t, "Iēsous", Transliterate("Ἰησοῦς"))
	assert.Equal(t, "Theos", Transliterate("Θεός"))
}

func TestTransliterateDiaeresisBlocksDiphthong(t *testing.T) {
	// The diaeresis on upsilon blocks the αυ digraph, so the vowels
	// transliterate separately.
	assert.Equal(t, "prays", Transliterate("πραΰς"))
	// Without it the pair collapses to a diphthong.
	assert.Equal(t, "autos", Transliterate("αὐτός"))
}

func TestTransliterateRoughBreathingOnDiphthong(t *testing.T) {
	// ἑ carries the rough breathing ahead of the diphthong ευ.
	assert.Equal(t, "heuriskō", Transliterate("ἑυρισκω"))
}

func TestTransliteratePassesNonGreekThrough(t *testing.T) {
	assert.Equal(t, "", Transliterate(""))
	assert.Equal(t, "abc-123", Transliterate("abc-123"))
}
