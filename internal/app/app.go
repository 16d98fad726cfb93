//go:build ebiten

package app

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"layered-ca/internal/core"
	"layered-ca/internal/engine"
	"layered-ca/internal/render"
	"layered-ca/internal/scene"
	"layered-ca/internal/ui"
	"layered-ca/internal/view"
)

const (
	hudWidth   = 220
	zoomFactor = 1.1
)

var (
	background = color.RGBA{R: 40, G: 40, B: 44, A: 255}
	colorKeys  = []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
)

// Game adapts a scene to the ebiten.Game interface.
type Game struct {
	scene    scene.Scene
	eng      *engine.Engine
	renderer *render.Renderer
	camera   *view.Camera
	hud      *ui.HUD
	clock    *core.FixedStep
	log      *zap.Logger

	img *ebiten.Image
	pix []byte

	viewW, viewH int
	seed         int64
	tickOnce     bool
	dragging     bool
	lastX, lastY int
}

// New constructs a Game for the provided scene. scale is the initial zoom.
func New(sc scene.Scene, cfg *Config, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	eng := sc.Engine()
	w, h := eng.Width(), eng.Height()
	scale := max(cfg.Scale, 1)
	g := &Game{
		scene:    sc,
		eng:      eng,
		renderer: render.New(w, h),
		camera:   &view.Camera{Zoom: float64(scale)},
		hud:      ui.NewHUD(hudWidth),
		clock:    core.NewFixedStep(cfg.TPS),
		log:      log,
		img:      ebiten.NewImage(w, h),
		pix:      make([]byte, 4*w*h),
		viewW:    w * scale,
		viewH:    h * scale,
		seed:     cfg.Seed,
	}
	eng.Start()
	return g
}

// WindowSize returns the outer window size in pixels.
func (g *Game) WindowSize() (int, int) { return g.viewW + g.hud.Width(), g.viewH }

// Reset reinitializes the scene with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.scene.Reset(seed)
	g.tickOnce = false
	g.log.Info("scene reset", zap.String("scene", g.scene.Name()), zap.Int64("seed", seed))
}

// Update handles input and advances the engine at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.eng.Running() {
			g.eng.Stop()
		} else {
			g.eng.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.handleCamera()
	g.handleBrush()

	step := g.clock.ShouldStep()
	switch {
	case g.tickOnce:
		g.eng.Step(g.clock.TakeDT())
		g.tickOnce = false
	case step:
		g.eng.Tick(g.clock.TakeDT())
	}
	g.hud.Update(ui.Snapshot(g.scene, g.camera.Zoom))
	return nil
}

func (g *Game) handleCamera() {
	mx, my := ebiten.CursorPosition()
	wx, wy := g.camera.ScreenToWorld(float64(mx), float64(my))
	if _, dy := ebiten.Wheel(); dy != 0 && mx < g.viewW {
		g.camera.SetZoom(math.Pow(zoomFactor, dy), wx, wy)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.camera.Fit(g.eng.Width(), g.eng.Height(), g.viewW, g.viewH)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.camera.ResetZoom()
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if g.dragging {
			dx, dy := float64(mx-g.lastX), float64(my-g.lastY)
			g.camera.Move(-dx/g.camera.Zoom, -dy/g.camera.Zoom)
		}
		g.dragging = true
		g.lastX, g.lastY = mx, my
	} else {
		g.dragging = false
	}
}

func (g *Game) handleBrush() {
	b := g.scene.Brush()
	if b == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	wx, wy := g.camera.ScreenToWorld(float64(mx), float64(my))
	b.X, b.Y = int(math.Floor(wx)), int(math.Floor(wy))
	b.Down = mx < g.viewW && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	for i, k := range colorKeys {
		if inpututil.IsKeyJustPressed(k) {
			b.Select(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		b.Erase()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		b.Draw()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		b.Grow(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		b.Grow(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		b.RequestClear()
	}
}

// Draw composites the layers and blits the visible part of the frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.renderer.DrawAll(g.eng.Layers())
	render.Premultiply(g.pix, g.renderer.Frame().Pix)
	g.img.WritePixels(g.pix)

	rect := g.camera.SourceRect(g.viewW, g.viewH).Intersect(g.img.Bounds())
	if !rect.Empty() {
		dst := screen.SubImage(image.Rect(0, 0, g.viewW, g.viewH)).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(rect.Min.X)-g.camera.X, float64(rect.Min.Y)-g.camera.Y)
		op.GeoM.Scale(g.camera.Zoom, g.camera.Zoom)
		dst.DrawImage(g.img.SubImage(rect).(*ebiten.Image), op)
	}
	g.hud.Draw(screen, g.viewW, g.viewH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(int, int) (int, int) {
	return g.WindowSize()
}
