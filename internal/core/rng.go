package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return NewRNGStream(seed, 0)
}

// NewRNGStream creates a deterministic RNG on a numbered stream. Different
// streams from the same seed draw independent sequences.
func NewRNGStream(seed int64, stream uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), stream))}
}

// WrapRNG adapts an existing generator.
func WrapRNG(r *rand.Rand) *RNG {
	if r == nil {
		return NewRNG(0)
	}
	return &RNG{r: r}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Permute shuffles s in place with Fisher-Yates.
func Permute[T any](r *RNG, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
