package elementary

import (
	"strconv"

	"layered-ca/internal/core"
	"layered-ca/internal/engine"
	"layered-ca/internal/scene"
)

// DefaultRule is Wolfram code 110.
const DefaultRule = 110

// Elementary implements a one-dimensional Wolfram code projected vertically:
// row 0 holds the newest generation and older ones scroll downwards.
type Elementary struct {
	cfg   scene.Config
	rule  uint8
	eng   *engine.Engine
	brush *core.Brush
}

// New creates an automaton with the given configuration and rule.
func New(cfg scene.Config, rule uint8, opts ...engine.Option) (*Elementary, error) {
	g, err := core.NewGrid(cfg.Width, cfg.Height, core.KindUint8)
	if err != nil {
		return nil, err
	}
	e := &Elementary{cfg: cfg, rule: rule, brush: core.NewBrush(1, 1)}
	eng, err := engine.NewSingle(g, engine.TransitionFunc(e.step), engine.PostUpdateFunc(e.paint), nil, cfg.EngineOptions(opts...)...)
	if err != nil {
		return nil, err
	}
	e.eng = eng
	e.Reset(cfg.Seed)
	return e, nil
}

func (e *Elementary) step(c *engine.Cell) {
	cur := c.Current
	x, y := c.X, c.Y
	if y > 0 {
		c.Next.SetUnchecked(x, y, cur.GetUnchecked(x, y-1))
		return
	}
	w := cur.Width()
	left := uint8(cur.GetUnchecked((x-1+w)%w, 0))
	center := uint8(cur.GetUnchecked(x, 0))
	right := uint8(cur.GetUnchecked((x+1)%w, 0))
	idx := (left << 2) | (center << 1) | right
	c.Next.SetUnchecked(x, 0, float64((e.rule>>idx)&1))
}

// paint toggles cells on the newest row under the brush.
func (e *Elementary) paint(f *engine.Frame) {
	if e.brush.TakeClear() {
		f.Grid.Clear()
	}
	if e.brush.Down {
		e.brush.Stamp(func(x, y int) { f.Grid.Set(x, 0, 1) })
	}
}

// Name returns the scene identifier.
func (e *Elementary) Name() string { return "elementary" }

// Engine exposes the engine driving the scene.
func (e *Elementary) Engine() *engine.Engine { return e.eng }

// Brush exposes the input state read on every tick.
func (e *Elementary) Brush() *core.Brush { return e.brush }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(int64) {
	e.eng.ClearLayers()
	e.eng.Grid("main").Set(e.eng.Width()/2, 0, 1)
}

// Parameters describes the running configuration.
func (e *Elementary) Parameters() scene.ParameterSnapshot {
	snap := scene.Describe(e.cfg, e.eng)
	snap.Groups = append(snap.Groups, scene.ParameterGroup{
		Name:   "Rule",
		Params: []scene.Parameter{scene.IntParam("rule", "Wolfram code", int(e.rule))},
	})
	return snap
}

func init() {
	scene.Register("elementary", func(cfg map[string]string, opts ...engine.Option) (scene.Scene, error) {
		c, err := scene.FromMap(cfg, scene.DefaultConfig(engine.LeftToRight))
		if err != nil {
			return nil, err
		}
		rule := uint8(DefaultRule)
		if v, ok := cfg["rule"]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
				rule = uint8(parsed)
			}
		}
		return New(c, rule, opts...)
	})
}
