package life

import (
	"testing"

	"layered-ca/internal/scene"
)

func newBoard(t *testing.T, w, h int) *Life {
	t.Helper()
	cfg := scene.DefaultConfig("")
	cfg.Width, cfg.Height = w, h
	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func TestBlinkerOscillation(t *testing.T) {
	life := newBoard(t, 5, 5)
	set := func(x, y int) { life.Engine().Grid("main").Set(x, y, 1) }
	set(2, 1)
	set(2, 2)
	set(2, 3)

	check := func(step string, expects map[[2]int]bool) {
		t.Helper()
		g := life.Engine().Grid("main")
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				alive := g.Get(x, y) == 1
				_, shouldBeAlive := expects[[2]int{x, y}]
				if shouldBeAlive != alive {
					t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", step, x, y, alive, shouldBeAlive)
				}
			}
		}
	}

	life.Engine().Step(16)
	check("first step", map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})

	life.Engine().Step(16)
	check("second step", map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	life := newBoard(t, 6, 6)
	g := life.Engine().Grid("main")
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		g.Set(p[0], p[1], 1)
	}
	// A glider returns to its shape shifted by (1,1) every 4 ticks; after
	// 24 ticks it has crossed the 6x6 torus back to the start.
	for i := 0; i < 24; i++ {
		life.Engine().Step(16)
	}
	g = life.Engine().Grid("main")
	alive := 0
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if g.Get(x, y) == 1 {
				alive++
			}
		}
	}
	if alive != 5 {
		t.Fatalf("glider has %d live cells after wrapping, want 5", alive)
	}
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		if g.Get(p[0], p[1]) != 1 {
			t.Fatalf("cell %v should be alive after a full lap", p)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	a := newBoard(t, 16, 12)
	b := newBoard(t, 16, 12)
	a.Reset(99)
	b.Reset(99)
	ga, gb := a.Engine().Grid("main"), b.Engine().Grid("main")
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			if ga.Get(x, y) != gb.Get(x, y) {
				t.Fatalf("Reset(99) differs at (%d,%d)", x, y)
			}
		}
	}
}

func TestBrushPaintsLiveCells(t *testing.T) {
	life := newBoard(t, 8, 8)
	b := life.Brush()
	b.SetSize(1)
	b.X, b.Y, b.Down = 4, 4, true
	life.Engine().Step(16)
	if life.Engine().Grid("main").Get(4, 4) != 1 {
		t.Fatal("brush did not paint a live cell")
	}
}
