package sandlife

import (
	"image/color"
	"strconv"

	"layered-ca/internal/core"
	"layered-ca/internal/engine"
	"layered-ca/internal/render"
	"layered-ca/internal/scene"
	"layered-ca/internal/sims/sand"
)

// Layer positions.
const (
	SandLayer = 0
	LifeLayer = 1
)

const (
	defaultLifespan = 100
	defaultDecay    = 0.1
)

var hidden = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

// SandLife is a two-layer scene: grains fall on the sand layer while the
// life layer carries each grain's remaining lifespan along with it.
type SandLife struct {
	cfg      scene.Config
	lifespan float64
	decay    float64
	rule     *sand.Rule
	eng      *engine.Engine
	brush    *core.Brush
}

// New builds the scene. lifespan is the life given to painted grains and
// decay the amount removed per tick.
func New(cfg scene.Config, lifespan, decay float64, opts ...engine.Option) (*SandLife, error) {
	sandGrid, err := core.NewGrid(cfg.Width, cfg.Height, core.KindUint8)
	if err != nil {
		return nil, err
	}
	lifeGrid, err := core.NewGrid(cfg.Width, cfg.Height, core.KindFloat32)
	if err != nil {
		return nil, err
	}
	s := &SandLife{
		cfg:      cfg,
		lifespan: lifespan,
		decay:    decay,
		rule:     sand.NewRule(sand.RuleRNG(cfg.Seed)),
		brush:    core.NewBrush(cfg.Brush, sand.Grain),
	}
	eng, err := engine.New([]engine.LayerSpec{
		{
			Name:       "sand",
			Grid:       sandGrid,
			Transition: engine.TransitionFunc(s.fall),
			PostUpdate: engine.PostUpdateFunc(s.paint),
			Color:      sandColor,
			Couples:    []string{"life"},
		},
		{
			Name:       "life",
			Grid:       lifeGrid,
			Transition: engine.TransitionFunc(s.age),
			Color:      lifeColor,
		},
	}, cfg.EngineOptions(opts...)...)
	if err != nil {
		return nil, err
	}
	s.eng = eng
	s.Reset(cfg.Seed)
	return s, nil
}

// fall moves a grain and its lifespan together. Grains whose life has run
// out are removed.
func (s *SandLife) fall(c *engine.Cell) {
	x, y := c.X, c.Y
	if c.Current.GetUnchecked(x, y) != sand.Grain {
		return
	}
	lifeNext := c.Coupled(LifeLayer)
	life := c.Peek(LifeLayer).GetUnchecked(x, y)
	if life <= 0 {
		c.Next.Set(x, y, sand.Empty)
		lifeNext.Set(x, y, 0)
		return
	}

	dx, dy := s.rule.Destination(c.Current, c.Next, x, y)
	c.Next.Set(dx, dy, sand.Grain)
	lifeNext.Set(dx, dy, life)
	if dx != x || dy != y {
		lifeNext.Set(x, y, 0)
	}
}

// age decays the lifespan the sand layer wrote for this coordinate.
func (s *SandLife) age(c *engine.Cell) {
	life := c.Next.GetUnchecked(c.X, c.Y)
	if life > 0 {
		c.Next.SetUnchecked(c.X, c.Y, max(0, life-s.decay))
	}
}

func (s *SandLife) paint(f *engine.Frame) {
	life := f.Coupled(LifeLayer)
	if s.brush.TakeClear() {
		f.Grid.Clear()
		life.Clear()
	}
	if !s.brush.Down {
		return
	}
	s.brush.Stamp(func(x, y int) {
		f.Grid.Set(x, y, sand.Grain)
		life.Set(x, y, s.lifespan)
	})
}

func sandColor(v float64, _, _, _ int) color.NRGBA {
	if v == sand.Grain {
		return sand.GrainColor
	}
	return hidden
}

// lifeColor fades a white veil in as the lifespan runs out.
func lifeColor(v float64, _, _, _ int) color.NRGBA {
	return color.NRGBA{R: 255, G: 255, B: 255, A: render.Clamp(255 - v*2.5)}
}

// Name returns the scene identifier.
func (s *SandLife) Name() string { return "sandlife" }

// Engine exposes the engine driving the scene.
func (s *SandLife) Engine() *engine.Engine { return s.eng }

// Brush exposes the input state read on every tick.
func (s *SandLife) Brush() *core.Brush { return s.brush }

// Reset empties both layers and optionally scatters fresh grains.
func (s *SandLife) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.eng.ClearLayers()
	if s.cfg.Noise <= 0 {
		return
	}
	sandGrid, lifeGrid := s.eng.Grid("sand"), s.eng.Grid("life")
	scene.SeedNoise(sandGrid, seed, s.cfg.Noise, 0, s.eng.Height()/3, sand.Grain)
	for y := 0; y < s.eng.Height(); y++ {
		for x := 0; x < s.eng.Width(); x++ {
			if sandGrid.GetUnchecked(x, y) == sand.Grain {
				lifeGrid.SetUnchecked(x, y, s.lifespan)
			}
		}
	}
}

// Parameters describes the running configuration.
func (s *SandLife) Parameters() scene.ParameterSnapshot {
	snap := scene.Describe(s.cfg, s.eng)
	snap.Groups = append(snap.Groups, scene.ParameterGroup{
		Name: "Lifespan",
		Params: []scene.Parameter{
			scene.FloatParam("life", "Initial lifespan", s.lifespan),
			scene.FloatParam("decay", "Decay per tick", s.decay),
			scene.FloatParam("noise", "Noise threshold", s.cfg.Noise),
		},
	})
	return snap
}

func init() {
	scene.Register("sandlife", func(cfg map[string]string, opts ...engine.Option) (scene.Scene, error) {
		c, err := scene.FromMap(cfg, scene.DefaultConfig(engine.Shuffled))
		if err != nil {
			return nil, err
		}
		lifespan, decay := float64(defaultLifespan), defaultDecay
		if v, ok := cfg["life"]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
				lifespan = parsed
			}
		}
		if v, ok := cfg["decay"]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				decay = parsed
			}
		}
		return New(c, lifespan, decay, opts...)
	})
}
