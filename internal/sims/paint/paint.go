package paint

import (
	"image/color"

	"layered-ca/internal/core"
	"layered-ca/internal/engine"
	"layered-ca/internal/render"
	"layered-ca/internal/scene"
)

// Colors lists the palette entries a brush can paint; 0 is the eraser.
var Colors = map[int]color.NRGBA{
	0:  {R: 255, G: 255, B: 255, A: 255},
	1:  {R: 200, G: 200, B: 0, A: 255},
	2:  {R: 0, G: 200, B: 200, A: 255},
	3:  {R: 200, G: 0, B: 200, A: 255},
	4:  {R: 200, G: 0, B: 0, A: 255},
	5:  {R: 0, G: 200, B: 0, A: 255},
	6:  {R: 0, G: 0, B: 200, A: 255},
	7:  {R: 100, G: 100, B: 100, A: 255},
	8:  {R: 255, G: 165, B: 0, A: 255},
	9:  {R: 128, G: 0, B: 128, A: 255},
	10: {R: 0, G: 0, B: 0, A: 255},
}

// MaxColor is the highest palette index.
const MaxColor = 10

// Paint is a canvas with no transition: its single layer changes only
// through the brush.
type Paint struct {
	cfg   scene.Config
	eng   *engine.Engine
	brush *core.Brush
}

// New builds the scene described by cfg.
func New(cfg scene.Config, opts ...engine.Option) (*Paint, error) {
	g, err := core.NewGrid(cfg.Width, cfg.Height, core.KindUint8)
	if err != nil {
		return nil, err
	}
	p := &Paint{cfg: cfg, brush: core.NewBrush(cfg.Brush, 1)}
	colors := render.Palette(Colors, Colors[0])
	eng, err := engine.NewSingle(g, nil, engine.PostUpdateFunc(p.paint), colors, cfg.EngineOptions(opts...)...)
	if err != nil {
		return nil, err
	}
	p.eng = eng
	return p, nil
}

func (p *Paint) paint(f *engine.Frame) {
	if p.brush.TakeClear() {
		f.Grid.Clear()
	}
	if !p.brush.Down {
		return
	}
	v := float64(min(max(p.brush.Color, 0), MaxColor))
	p.brush.Stamp(func(x, y int) { f.Grid.Set(x, y, v) })
}

// Name returns the scene identifier.
func (p *Paint) Name() string { return "paint" }

// Engine exposes the engine driving the scene.
func (p *Paint) Engine() *engine.Engine { return p.eng }

// Brush exposes the input state read on every tick.
func (p *Paint) Brush() *core.Brush { return p.brush }

// Reset clears the canvas.
func (p *Paint) Reset(int64) { p.eng.ClearLayers() }

func init() {
	scene.Register("paint", func(cfg map[string]string, opts ...engine.Option) (scene.Scene, error) {
		c, err := scene.FromMap(cfg, scene.DefaultConfig(engine.LeftToRight))
		if err != nil {
			return nil, err
		}
		return New(c, opts...)
	})
}
