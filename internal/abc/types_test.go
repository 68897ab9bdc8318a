package abc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLetter(t *testing.T) {
	tests := []struct {
		in   rune
		want Letter
		ok   bool
	}{
		{'A', 'A', true},
		{'z', 'Z', true},
		{'m', 'M', true},
		{'1', NoLetter, false},
		{' ', NoLetter, false},
		{'é', NoLetter, false},
	}

	for _, tt := range tests {
		got, ok := ParseLetter(tt.in)
		assert.Equal(t, tt.ok, ok, "rune %q", tt.in)
		assert.Equal(t, tt.want, got, "rune %q", tt.in)
	}
}

func TestAlphabet(t *testing.T) {
	letters := Alphabet()
	require.Len(t, letters, 26)
	assert.Equal(t, Letter('A'), letters[0])
	assert.Equal(t, Letter('Z'), letters[25])
	for _, l := range letters {
		assert.True(t, l.Valid())
	}
}

func TestLetterString(t *testing.T) {
	assert.Equal(t, "Q", Letter('Q').String())
	assert.Equal(t, "", NoLetter.String())
}

func TestSymbolLifecycle(t *testing.T) {
	var s Symbol
	assert.True(t, s.Empty())
	assert.False(t, s.Pending())

	s = NewSymbol('A')
	assert.True(t, s.Pending())

	s.CuePlayed = true
	assert.False(t, s.Pending())

	// Selecting the same letter again starts over.
	s = NewSymbol('A')
	assert.True(t, s.Pending())
}
