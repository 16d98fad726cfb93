package render

import (
	"image"
	"image/color"

	"layered-ca/internal/core"
)

// Source is one layer as seen by the renderer.
type Source struct {
	Name  string
	Grid  core.Reader
	Color ColorMap
}

// Renderer turns one or more grids into a single straight-alpha RGBA frame.
type Renderer struct {
	w, h  int
	frame *image.NRGBA

	// AfterRender, when set, runs after every Draw or DrawAll with the
	// finished frame.
	AfterRender func(frame *image.NRGBA)
}

// New allocates a renderer for grids of size w*h.
func New(w, h int) *Renderer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Renderer{w: w, h: h, frame: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

// Size returns the frame dimensions.
func (r *Renderer) Size() (int, int) { return r.w, r.h }

// Frame exposes the current frame. It is overwritten by the next draw.
func (r *Renderer) Frame() *image.NRGBA { return r.frame }

// Draw writes a single layer straight into the frame without blending.
// Sources whose size differs from the renderer are ignored.
func (r *Renderer) Draw(src Source) {
	if !r.fits(src) {
		return
	}
	buf := r.frame.Pix
	colorOf := colorMapOf(src)
	g := src.Grid
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			idx := y*r.w + x
			putRGBA(buf, idx, colorOf(g.GetUnchecked(x, y), x, y, idx))
		}
	}
	r.done()
}

// DrawAll composites the sources in order over a fully transparent frame.
// Later sources paint over earlier ones.
func (r *Renderer) DrawAll(srcs []Source) {
	buf := r.frame.Pix
	fillRGBA(buf, color.NRGBA{})
	for _, src := range srcs {
		if !r.fits(src) {
			continue
		}
		colorOf := colorMapOf(src)
		g := src.Grid
		for y := 0; y < r.h; y++ {
			for x := 0; x < r.w; x++ {
				idx := y*r.w + x
				c := colorOf(g.GetUnchecked(x, y), x, y, idx)
				if c.A == 0 {
					continue
				}
				putRGBA(buf, idx, Blend(rgbaAt(buf, idx), c))
			}
		}
	}
	r.done()
}

func (r *Renderer) fits(src Source) bool {
	return src.Grid != nil && src.Grid.Width() == r.w && src.Grid.Height() == r.h
}

func (r *Renderer) done() {
	if r.AfterRender != nil {
		r.AfterRender(r.frame)
	}
}

func colorMapOf(src Source) ColorMap {
	if src.Color != nil {
		return src.Color
	}
	return DefaultColor
}
