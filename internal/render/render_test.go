package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layered-ca/internal/core"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func TestBlend(t *testing.T) {
	cases := []struct {
		name     string
		dst, src color.NRGBA
		want     color.NRGBA
	}{
		{"opaque over opaque", blue, red, red},
		{"transparent over opaque", blue, color.NRGBA{R: 255}, blue},
		{"half red over blue", blue, color.NRGBA{R: 255, A: 128}, color.NRGBA{R: 128, B: 127, A: 255}},
		{"anything over transparent", color.NRGBA{}, color.NRGBA{G: 10, A: 20}, color.NRGBA{G: 10, A: 20}},
		{"transparent over transparent", color.NRGBA{}, color.NRGBA{}, color.NRGBA{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Blend(tc.dst, tc.src))
		})
	}
}

func TestDefaultColor(t *testing.T) {
	assert.Equal(t, white, DefaultColor(0, 0, 0, 0))
	assert.Equal(t, black, DefaultColor(1, 0, 0, 0))
	assert.Equal(t, black, DefaultColor(-3, 0, 0, 0))
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, DefaultColor(0.5, 0, 0, 0))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, DefaultColor(math.Inf(1), 0, 0, 0))
	assert.Equal(t, uint8(0), DefaultColor(math.NaN(), 0, 0, 0).A)
}

func TestPalette(t *testing.T) {
	fallback := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	p := Palette(map[int]color.NRGBA{1: red, 70000: blue}, fallback)
	assert.Equal(t, red, p(1, 0, 0, 0))
	assert.Equal(t, blue, p(70000, 0, 0, 0))
	assert.Equal(t, fallback, p(2, 0, 0, 0))
	assert.Equal(t, fallback, p(1.5, 0, 0, 0))
	assert.Equal(t, fallback, p(-1, 0, 0, 0))

	small := Palette(map[int]color.NRGBA{0: red, 3: blue}, fallback)
	assert.Equal(t, red, small(0, 0, 0, 0))
	assert.Equal(t, fallback, small(2, 0, 0, 0))
	assert.Equal(t, blue, small(3, 0, 0, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, uint8(0), Clamp(-4))
	assert.Equal(t, uint8(0), Clamp(math.NaN()))
	assert.Equal(t, uint8(255), Clamp(300))
	assert.Equal(t, uint8(128), Clamp(127.5))
	assert.Equal(t, uint8(127), Clamp(127.49))
}

func TestDrawWritesSingleLayerDirectly(t *testing.T) {
	g := core.MustGrid(2, 1, core.KindUint8)
	g.Set(1, 0, 1)
	r := New(2, 1)
	r.Draw(Source{Grid: g})
	assert.Equal(t, white, r.Frame().NRGBAAt(0, 0))
	assert.Equal(t, black, r.Frame().NRGBAAt(1, 0))

	translucent := func(float64, int, int, int) color.NRGBA { return color.NRGBA{R: 9, A: 10} }
	r.Draw(Source{Grid: g, Color: translucent})
	assert.Equal(t, color.NRGBA{R: 9, A: 10}, r.Frame().NRGBAAt(0, 0), "single-layer draw does not blend")
}

func TestDrawAllCompositesInOrder(t *testing.T) {
	bottom := core.MustGrid(2, 2, core.KindUint8)
	top := core.MustGrid(2, 2, core.KindUint8)
	top.Set(0, 0, 1)

	solidBlue := func(float64, int, int, int) color.NRGBA { return blue }
	redWhereSet := func(v float64, _, _, _ int) color.NRGBA {
		if v == 1 {
			return red
		}
		return color.NRGBA{}
	}

	var calls int
	r := New(2, 2)
	r.AfterRender = func(*image.NRGBA) { calls++ }
	r.DrawAll([]Source{{Name: "bottom", Grid: bottom, Color: solidBlue}, {Name: "top", Grid: top, Color: redWhereSet}})
	assert.Equal(t, red, r.Frame().NRGBAAt(0, 0))
	assert.Equal(t, blue, r.Frame().NRGBAAt(1, 1))
	assert.Equal(t, 1, calls)

	r.DrawAll([]Source{{Grid: top, Color: redWhereSet}, {Grid: bottom, Color: solidBlue}})
	assert.Equal(t, blue, r.Frame().NRGBAAt(0, 0), "later layers paint over earlier ones")
}

func TestDrawAllStartsTransparentAndSkipsMismatchedSources(t *testing.T) {
	r := New(3, 3)
	r.DrawAll([]Source{{Grid: core.MustGrid(2, 2, core.KindUint8)}, {Grid: nil}})
	for _, b := range r.Frame().Pix {
		require.Zero(t, b)
	}
}

func TestPremultiply(t *testing.T) {
	src := []byte{255, 128, 0, 128, 10, 20, 30, 255}
	dst := make([]byte, len(src))
	Premultiply(dst, src)
	assert.Equal(t, []byte{128, 64, 0, 128, 10, 20, 30, 255}, dst)
}
