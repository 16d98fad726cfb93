package engine

import (
	"layered-ca/internal/core"
	"layered-ca/internal/render"
)

// Transition computes the next state of one coordinate. It reads from
// Cell.Current (and Peek for siblings) and writes into Cell.Next (and
// Coupled for siblings it declared in LayerSpec.Couples).
type Transition interface {
	Transition(c *Cell)
}

// TransitionFunc adapts a function to Transition.
type TransitionFunc func(c *Cell)

// Transition calls f(c).
func (f TransitionFunc) Transition(c *Cell) { f(c) }

// PostUpdate runs once per tick after the buffer swap, with write access to
// the layer's freshly computed grid.
type PostUpdate interface {
	PostUpdate(f *Frame)
}

// PostUpdateFunc adapts a function to PostUpdate.
type PostUpdateFunc func(f *Frame)

// PostUpdate calls fn(f).
func (fn PostUpdateFunc) PostUpdate(f *Frame) { fn(f) }

// LayerSpec declares one layer and the behaviors it implements. Nil
// behaviors are skipped; the choice is fixed at construction.
type LayerSpec struct {
	Name       string
	Grid       *core.Grid
	Transition Transition
	PostUpdate PostUpdate
	Color      render.ColorMap

	// Couples names sibling layers this layer may write to: their scratch
	// buffer from Transition, their current grid from PostUpdate. A layer
	// without PostUpdate may only couple siblings that have a Transition.
	Couples []string
}

// Cell is the per-coordinate context handed to a Transition.
type Cell struct {
	X, Y int
	DT   float64

	// Current is this layer's grid for the tick being computed.
	Current core.Reader
	// Next is this layer's scratch buffer, cleared before the scan.
	Next core.ReadWriter

	self int
	eng  *Engine
}

// Peek returns the current grid of layer i, or nil when i is out of range.
func (c *Cell) Peek(i int) core.Reader {
	if i < 0 || i >= len(c.eng.layers) {
		return nil
	}
	return c.eng.layers[i].current
}

// Coupled returns the scratch buffer of sibling i when this layer declared
// it in Couples and the sibling has a transition, nil otherwise.
func (c *Cell) Coupled(i int) core.ReadWriter {
	l := c.eng.layers[c.self]
	if i < 0 || i >= len(l.couples) || !l.couples[i] || c.eng.layers[i].transition == nil {
		return nil
	}
	return c.eng.layers[i].next
}

// Frame is the context handed to a PostUpdate.
type Frame struct {
	DT float64

	// Grid is this layer's current grid, already holding this tick's state.
	Grid core.ReadWriter

	self int
	eng  *Engine
}

// Peek returns the current grid of layer i, or nil when i is out of range.
func (f *Frame) Peek(i int) core.Reader {
	if i < 0 || i >= len(f.eng.layers) {
		return nil
	}
	return f.eng.layers[i].current
}

// Coupled returns the current grid of sibling i when this layer declared it
// in Couples, nil otherwise.
func (f *Frame) Coupled(i int) core.ReadWriter {
	l := f.eng.layers[f.self]
	if i < 0 || i >= len(l.couples) || !l.couples[i] {
		return nil
	}
	return f.eng.layers[i].currentRW
}

// layer owns the current/scratch pair. The views below always resolve
// through the layer so they stay valid across swaps.
type layer struct {
	name    string
	grid    *core.Grid
	scratch *core.Grid

	transition Transition
	post       PostUpdate
	color      render.ColorMap
	couples    []bool

	current   currentView
	currentRW currentWriter
	next      scratchView

	cell  Cell
	frame Frame
	eng   *Engine
}

// swap exchanges the current and scratch buffers.
func (l *layer) swap() { l.grid, l.scratch = l.scratch, l.grid }

type currentView struct{ l *layer }

func (v currentView) Width() int                    { return v.l.grid.Width() }
func (v currentView) Height() int                   { return v.l.grid.Height() }
func (v currentView) Kind() core.Kind               { return v.l.grid.Kind() }
func (v currentView) Get(x, y int) float64          { return v.l.grid.Get(x, y) }
func (v currentView) GetUnchecked(x, y int) float64 { return v.l.grid.GetUnchecked(x, y) }
func (v currentView) Wrap(x, y int) (int, int)      { return v.l.grid.Wrap(x, y) }

type currentWriter struct{ currentView }

func (v currentWriter) Set(x, y int, val float64)          { v.l.grid.Set(x, y, val) }
func (v currentWriter) SetUnchecked(x, y int, val float64) { v.l.grid.SetUnchecked(x, y, val) }
func (v currentWriter) Clear()                             { v.l.grid.Clear() }

type scratchView struct{ l *layer }

func (v scratchView) Width() int                         { return v.l.scratch.Width() }
func (v scratchView) Height() int                        { return v.l.scratch.Height() }
func (v scratchView) Kind() core.Kind                    { return v.l.scratch.Kind() }
func (v scratchView) Get(x, y int) float64               { return v.l.scratch.Get(x, y) }
func (v scratchView) GetUnchecked(x, y int) float64      { return v.l.scratch.GetUnchecked(x, y) }
func (v scratchView) Wrap(x, y int) (int, int)           { return v.l.scratch.Wrap(x, y) }
func (v scratchView) Set(x, y int, val float64)          { v.l.scratch.Set(x, y, val) }
func (v scratchView) SetUnchecked(x, y int, val float64) { v.l.scratch.SetUnchecked(x, y, val) }
func (v scratchView) Clear()                             { v.l.scratch.Clear() }
