package sand

import (
	"image/color"

	"layered-ca/internal/core"
	"layered-ca/internal/engine"
	"layered-ca/internal/scene"
)

// Cell values.
const (
	Empty = 0
	Grain = 1
)

var (
	// GrainColor is the color of a grain of sand.
	GrainColor = color.NRGBA{R: 200, G: 200, B: 0, A: 255}
	airColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Rule moves grains straight down when the cell below is free, otherwise
// diagonally, picking a side at random when both are free.
type Rule struct {
	rng *core.RNG
}

// ruleStream keeps tie-break draws apart from the engine's scan-order stream,
// which uses stream 0 of the same seed.
const ruleStream = 1

// RuleRNG returns the tie-break generator for a scene seeded with seed.
func RuleRNG(seed int64) *core.RNG { return core.NewRNGStream(seed, ruleStream) }

// NewRule returns a falling rule drawing tie-breaks from rng.
func NewRule(rng *core.RNG) *Rule {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	return &Rule{rng: rng}
}

// Transition implements engine.Transition.
func (r *Rule) Transition(c *engine.Cell) {
	if c.Current.GetUnchecked(c.X, c.Y) != Grain {
		return
	}
	dx, dy := r.Destination(c.Current, c.Next, c.X, c.Y)
	c.Next.Set(dx, dy, Grain)
}

// Destination returns where the grain at (x, y) goes this tick. A target is
// free when it is empty in both the current grid and the scratch buffer, so
// two grains never claim the same cell.
func (r *Rule) Destination(cur, next core.Reader, x, y int) (int, int) {
	free := func(cx, cy int) bool {
		return cur.Get(cx, cy) == Empty && next.Get(cx, cy) == Empty
	}
	if free(x, y+1) {
		return x, y + 1
	}
	canR, canL := free(x+1, y+1), free(x-1, y+1)
	switch {
	case canR && canL:
		if r.rng.Bool() {
			return x + 1, y + 1
		}
		return x - 1, y + 1
	case canR:
		return x + 1, y + 1
	case canL:
		return x - 1, y + 1
	}
	return x, y
}

// Color renders grains yellow on white.
func Color(v float64, _, _, _ int) color.NRGBA {
	if v == Grain {
		return GrainColor
	}
	return airColor
}

// Sand is a single-layer falling-sand scene.
type Sand struct {
	cfg   scene.Config
	eng   *engine.Engine
	brush *core.Brush
}

// New builds the scene described by cfg.
func New(cfg scene.Config, opts ...engine.Option) (*Sand, error) {
	g, err := core.NewGrid(cfg.Width, cfg.Height, core.KindUint8)
	if err != nil {
		return nil, err
	}
	s := &Sand{cfg: cfg, brush: core.NewBrush(cfg.Brush, Grain)}
	rule := NewRule(RuleRNG(cfg.Seed))
	eng, err := engine.NewSingle(g, rule, engine.PostUpdateFunc(s.paint), Color, cfg.EngineOptions(opts...)...)
	if err != nil {
		return nil, err
	}
	s.eng = eng
	s.Reset(cfg.Seed)
	return s, nil
}

func (s *Sand) paint(f *engine.Frame) {
	if s.brush.TakeClear() {
		f.Grid.Clear()
	}
	if !s.brush.Down {
		return
	}
	s.brush.Stamp(func(x, y int) { f.Grid.Set(x, y, Grain) })
}

// Name returns the scene identifier.
func (s *Sand) Name() string { return "sand" }

// Engine exposes the engine driving the scene.
func (s *Sand) Engine() *engine.Engine { return s.eng }

// Brush exposes the input state read on every tick.
func (s *Sand) Brush() *core.Brush { return s.brush }

// Reset empties the world and, when noise seeding is enabled, scatters
// grains over the top third.
func (s *Sand) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.eng.ClearLayers()
	if s.cfg.Noise > 0 {
		scene.SeedNoise(s.eng.Grid("main"), seed, s.cfg.Noise, 0, s.eng.Height()/3, Grain)
	}
}

// Parameters describes the running configuration.
func (s *Sand) Parameters() scene.ParameterSnapshot {
	snap := scene.Describe(s.cfg, s.eng)
	snap.Groups = append(snap.Groups, scene.ParameterGroup{
		Name:   "Seeding",
		Params: []scene.Parameter{scene.FloatParam("noise", "Noise threshold", s.cfg.Noise)},
	})
	return snap
}

func init() {
	scene.Register("sand", func(cfg map[string]string, opts ...engine.Option) (scene.Scene, error) {
		c, err := scene.FromMap(cfg, scene.DefaultConfig(engine.Alternating))
		if err != nil {
			return nil, err
		}
		return New(c, opts...)
	})
}
