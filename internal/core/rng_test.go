package core

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
		assert.Equal(t, a.Bool(), b.Bool())
	}
	assert.Zero(t, a.IntN(0))
}

func TestRNGStreamsDiffer(t *testing.T) {
	a, b := NewRNG(7), NewRNGStream(7, 1)
	same := 0
	for i := 0; i < 64; i++ {
		if a.IntN(1<<30) == b.IntN(1<<30) {
			same++
		}
	}
	assert.Less(t, same, 2)

	c := NewRNGStream(7, 1)
	d := NewRNGStream(7, 1)
	assert.Equal(t, c.IntN(1000), d.IntN(1000))
}

func TestPermuteKeepsElements(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	Permute(NewRNG(3), s)
	sorted := slices.Clone(s)
	slices.Sort(sorted)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted)
}
