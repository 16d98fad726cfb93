package briansbrain

import (
	"testing"

	"layered-ca/internal/engine"
	"layered-ca/internal/scene"
)

func TestFiringCellsDecayAndIgnite(t *testing.T) {
	cfg := scene.DefaultConfig(engine.LeftToRight)
	cfg.Width, cfg.Height = 6, 6
	b, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	eng := b.Engine()
	eng.ClearLayers()
	eng.Grid("main").Set(2, 2, stateOn)
	eng.Grid("main").Set(3, 2, stateOn)

	eng.Step(16)
	g := eng.Grid("main")
	want := map[[2]int]float64{
		{2, 2}: stateDying, {3, 2}: stateDying,
		{2, 1}: stateOn, {3, 1}: stateOn, {2, 3}: stateOn, {3, 3}: stateOn,
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if got := g.Get(x, y); got != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got, want[[2]int{x, y}])
			}
		}
	}

	eng.Step(16)
	if got := eng.Grid("main").Get(2, 2); got != stateDead {
		t.Fatalf("dying cell should be dead, got %v", got)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := scene.DefaultConfig(engine.LeftToRight)
	cfg.Width, cfg.Height = 16, 16
	a, _ := New(cfg)
	b, _ := New(cfg)
	ga, gb := a.Engine().Grid("main"), b.Engine().Grid("main")
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if ga.Get(x, y) != gb.Get(x, y) {
				t.Fatalf("Reset with the same seed differs at (%d,%d)", x, y)
			}
		}
	}
}
