package life

import (
	"layered-ca/internal/core"
	"layered-ca/internal/engine"
	"layered-ca/internal/scene"
)

// Conway's Game of Life on a torus.
func step(c *engine.Cell) {
	cur := c.Current
	x, y := c.X, c.Y
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := cur.Wrap(x+dx, y+dy)
			if cur.GetUnchecked(nx, ny) == 1 {
				neighbors++
			}
		}
	}
	alive := cur.GetUnchecked(x, y) == 1
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		c.Next.SetUnchecked(x, y, 1)
	}
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cfg   scene.Config
	eng   *engine.Engine
	brush *core.Brush
}

// New returns a Life scene with the provided configuration. The board starts
// empty; call Reset to randomize it.
func New(cfg scene.Config, opts ...engine.Option) (*Life, error) {
	g, err := core.NewGrid(cfg.Width, cfg.Height, core.KindUint8)
	if err != nil {
		return nil, err
	}
	l := &Life{cfg: cfg, brush: core.NewBrush(cfg.Brush, 1)}
	eng, err := engine.NewSingle(g, engine.TransitionFunc(step), engine.PostUpdateFunc(l.paint), nil, cfg.EngineOptions(opts...)...)
	if err != nil {
		return nil, err
	}
	l.eng = eng
	return l, nil
}

func (l *Life) paint(f *engine.Frame) {
	if l.brush.TakeClear() {
		f.Grid.Clear()
	}
	if l.brush.Down {
		l.brush.Stamp(func(x, y int) { f.Grid.Set(x, y, 1) })
	}
}

// Name returns the scene identifier.
func (l *Life) Name() string { return "life" }

// Engine exposes the engine driving the scene.
func (l *Life) Engine() *engine.Engine { return l.eng }

// Brush exposes the input state read on every tick.
func (l *Life) Brush() *core.Brush { return l.brush }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.eng.ClearLayers()
	rng := core.NewRNG(seed)
	g := l.eng.Grid("main")
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.SetUnchecked(x, y, float64(rng.IntN(2)))
		}
	}
}

func init() {
	scene.Register("life", func(cfg map[string]string, opts ...engine.Option) (scene.Scene, error) {
		c, err := scene.FromMap(cfg, scene.DefaultConfig(engine.LeftToRight))
		if err != nil {
			return nil, err
		}
		l, err := New(c, opts...)
		if err != nil {
			return nil, err
		}
		l.Reset(c.Seed)
		return l, nil
	})
}
