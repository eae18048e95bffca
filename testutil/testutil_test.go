package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	rng := NewRNG(4711)

	w := Words[int8](rng, 8)
	assert.Len(t, w, 8)
	assert.Equal(t, int8(0), w[0])
	assert.Equal(t, int8(-1), w[1])

	assert.Equal(t, []uint32{0}, Words[uint32](rng, 1))
	assert.Empty(t, Words[uint32](rng, 0))
}

func TestWordsNegative(t *testing.T) {
	rng := NewRNG(1)
	assert.NotPanics(t, func() {
		assert.Empty(t, Words[uint16](rng, -1))
		assert.Empty(t, Words[int64](rng, -100))
	})
}

func TestWordsDeterministic(t *testing.T) {
	a := Words[uint64](NewRNG(42), 5)
	b := Words[uint64](NewRNG(42), 5)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, Words[uint64](NewRNG(43), 5))
}
