package briansbrain

import (
	"image/color"

	"layered-ca/internal/core"
	"layered-ca/internal/engine"
	"layered-ca/internal/render"
	"layered-ca/internal/scene"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

var palette = map[int]color.NRGBA{
	stateDead:  {A: 255},
	stateOn:    {R: 255, G: 255, B: 255, A: 255},
	stateDying: {R: 40, G: 90, B: 220, A: 255},
}

// step advances Brian's Brain by one tick for a single cell.
func step(c *engine.Cell) {
	cur := c.Current
	x, y := c.X, c.Y
	switch cur.GetUnchecked(x, y) {
	case stateOn:
		c.Next.SetUnchecked(x, y, stateDying)
	case stateDying:
		c.Next.SetUnchecked(x, y, stateDead)
	default:
		neighbors := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := cur.Wrap(x+dx, y+dy)
				if cur.GetUnchecked(nx, ny) == stateOn {
					neighbors++
				}
			}
		}
		if neighbors == 2 {
			c.Next.SetUnchecked(x, y, stateOn)
		}
	}
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	cfg   scene.Config
	eng   *engine.Engine
	brush *core.Brush
}

// New creates a Brain scene with the provided configuration.
func New(cfg scene.Config, opts ...engine.Option) (*Brain, error) {
	g, err := core.NewGrid(cfg.Width, cfg.Height, core.KindUint8)
	if err != nil {
		return nil, err
	}
	b := &Brain{cfg: cfg, brush: core.NewBrush(cfg.Brush, stateOn)}
	colors := render.Palette(palette, palette[stateDead])
	eng, err := engine.NewSingle(g, engine.TransitionFunc(step), engine.PostUpdateFunc(b.paint), colors, cfg.EngineOptions(opts...)...)
	if err != nil {
		return nil, err
	}
	b.eng = eng
	b.Reset(cfg.Seed)
	return b, nil
}

func (b *Brain) paint(f *engine.Frame) {
	if b.brush.TakeClear() {
		f.Grid.Clear()
	}
	if b.brush.Down {
		b.brush.Stamp(func(x, y int) { f.Grid.Set(x, y, stateOn) })
	}
}

// Name identifies the scene.
func (b *Brain) Name() string { return "briansbrain" }

// Engine exposes the engine driving the scene.
func (b *Brain) Engine() *engine.Engine { return b.eng }

// Brush exposes the input state read on every tick.
func (b *Brain) Brush() *core.Brush { return b.brush }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	b.eng.ClearLayers()
	rng := core.NewRNG(seed)
	g := b.eng.Grid("main")
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if rng.IntN(8) == 0 {
				g.SetUnchecked(x, y, stateOn)
			}
		}
	}
}

func init() {
	scene.Register("briansbrain", func(cfg map[string]string, opts ...engine.Option) (scene.Scene, error) {
		c, err := scene.FromMap(cfg, scene.DefaultConfig(engine.LeftToRight))
		if err != nil {
			return nil, err
		}
		return New(c, opts...)
	})
}
