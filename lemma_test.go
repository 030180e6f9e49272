package bereia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateLemma(t *testing.T) {
	tests := []struct {
		phrase    string
		lemma     string
		root      string
		reflexive bool
	}{
		{"amar", "amar", "amar", false},
		{"deixar ir, enviar", "deixar", "deixar", false},
		{"arrepender-se", "arrepender-se", "arrepender", true},
		{"fazer a si mesmo", "fazer", "fazer", false},
		{"pôr sobre", "pôr", "pôr", false},
		{"conduzir para fora", "conduzir", "conduzir", false},
	}
	for _, tt := range tests {
		info, ok := LocateLemma(tt.phrase)
		require.True(t, ok, "phrase %q", tt.phrase)
		assert.Equal(t, tt.lemma, info.Lemma, "phrase %q", tt.phrase)
		assert.Equal(t, tt.root, info.Root, "phrase %q", tt.phrase)
		assert.Equal(t, tt.reflexive, info.Reflexive, "phrase %q", tt.phrase)
		assert.Equal(t, tt.lemma, tt.phrase[info.Start:info.End], "span of %q", tt.phrase)
	}
}

func TestLocateLemmaSpanAfterMultibytePrefix(t *testing.T) {
	info, ok := LocateLemma("não amar")
	require.True(t, ok)
	assert.Equal(t, "amar", info.Lemma)
	assert.Equal(t, "amar", "não amar"[info.Start:info.End])
}

func TestLocateLemmaAbsent(t *testing.T) {
	for _, phrase := range []string{"", "bom", "de fato, realmente"} {
		_, ok := LocateLemma(phrase)
		assert.False(t, ok, "phrase %q", phrase)
	}
}
