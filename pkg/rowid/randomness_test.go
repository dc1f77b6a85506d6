package rowid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomness(t *testing.T) {
	for _, n := range []int{0, 1, 6, 10, 20, 22, 300} {
		got := Randomness(n)
		assert.Len(t, got, n)
		for _, c := range got {
			assert.True(t, strings.ContainsRune(DefaultAlphabet, c), "unexpected character %q", c)
		}
	}
}

func TestRandomnessEmpty(t *testing.T) {
	assert.Equal(t, "", Randomness(0))
	assert.Equal(t, "", Randomness(-5))
}

func TestRandomnessCoversAlphabet(t *testing.T) {
	seen := make(map[rune]bool)
	for _, c := range Randomness(20000) {
		seen[c] = true
	}
	assert.Len(t, seen, len(DefaultAlphabet))
}

func TestRandomnessLargeAlphabetFallback(t *testing.T) {
	var b strings.Builder
	for c := rune(0x4E00); c < 0x4E00+400; c++ {
		b.WriteRune(c)
	}
	r, err := NewBuilder().WithAlphabet(b.String()).Finalize()
	require.NoError(t, err)

	got := r.Randomness(64)
	assert.Len(t, []rune(got), 64)
	for _, c := range got {
		assert.True(t, c >= 0x4E00 && c < 0x4E00+400, "unexpected character %q", c)
	}
}

func TestRandomnessDiffers(t *testing.T) {
	a := Randomness(22)
	b := Randomness(22)
	assert.NotEqual(t, a, b)
}
