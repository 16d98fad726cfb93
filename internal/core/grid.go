package core

import (
	"errors"
	"fmt"
)

// OutOfBounds is returned by Get for coordinates outside the grid.
const OutOfBounds = -1

// ErrInvalidSize reports a grid constructed with a non-positive dimension.
var ErrInvalidSize = errors.New("core: grid dimensions must be positive")

// Reader is the read-only view of a grid handed to code that must not mutate it.
type Reader interface {
	Width() int
	Height() int
	Kind() Kind
	Get(x, y int) float64
	GetUnchecked(x, y int) float64
	Wrap(x, y int) (int, int)
}

// ReadWriter extends Reader with the write accessors.
type ReadWriter interface {
	Reader
	Set(x, y int, v float64)
	SetUnchecked(x, y int, v float64)
	Clear()
}

// Grid stores a 2D grid of numeric cell values in row-major order. The
// element type is fixed at construction; values cross the API as float64 and
// are quantized into the element type on write.
type Grid struct {
	w, h int
	kind Kind
	st   store
}

// NewGrid allocates a zeroed grid with the given dimensions and element kind.
func NewGrid(w, h int, kind Kind) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	st, err := newStore(kind, w*h)
	if err != nil {
		return nil, err
	}
	return &Grid{w: w, h: h, kind: kind, st: st}, nil
}

// MustGrid is NewGrid for static setups; it panics on invalid arguments.
func MustGrid(w, h int, kind Kind) *Grid {
	g, err := NewGrid(w, h, kind)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Kind returns the element type.
func (g *Grid) Kind() Kind { return g.kind }

// Len returns width*height.
func (g *Grid) Len() int { return g.w * g.h }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Get returns the value at (x, y), or OutOfBounds when outside the grid.
func (g *Grid) Get(x, y int) float64 {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return OutOfBounds
	}
	return g.st.at(y*g.w + x)
}

// GetUnchecked reads without bounds checking. Callers guarantee (x, y) is in
// bounds; otherwise it panics or aliases another row.
func (g *Grid) GetUnchecked(x, y int) float64 {
	return g.st.at(y*g.w + x)
}

// Set writes v at (x, y). Writes outside the grid are dropped.
func (g *Grid) Set(x, y int, v float64) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.st.put(y*g.w+x, v)
}

// SetUnchecked writes without bounds checking.
func (g *Grid) SetUnchecked(x, y int, v float64) {
	g.st.put(y*g.w+x, v)
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() { g.st.clear() }

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) { g.st.fill(v) }

// Clone returns an independent deep copy with the same shape and kind.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, kind: g.kind, st: g.st.clone()}
}

// Cells exposes the backing slice when T matches the grid's element kind.
func Cells[T Number](g *Grid) ([]T, bool) {
	s, ok := g.st.(*typedStore[T])
	if !ok {
		return nil, false
	}
	return s.data, true
}
