package testutil

import (
	"math/rand/v2"
	"sync"
)

// Integer mirrors atomicbits.Integer so tests of that package can import
// testutil without an import cycle.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// RNG struct encapsulates the random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Words returns n initial word values: zero and all ones first, followed by
// random bit patterns truncated to T. Fewer than two values are only the
// leading extremes; n <= 0 yields none.
func Words[T Integer](r *RNG, n int) []T {
	n = max(n, 0)
	words := make([]T, 0, max(n, 2))
	words = append(words, 0, ^T(0))
	if n <= 2 {
		return words[:n:n]
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for range n - 2 {
		words = append(words, T(r.rand.Uint64()))
	}
	return words
}
