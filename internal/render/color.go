package render

import (
	"image/color"
	"math"
)

// ColorMap converts a cell value at (x, y) with flat index idx into a
// straight-alpha color.
type ColorMap func(v float64, x, y, idx int) color.NRGBA

var (
	white       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black       = color.NRGBA{A: 255}
	transparent = color.NRGBA{R: 255, G: 255, B: 255, A: 0}
)

// DefaultColor maps integer zero to opaque white and any other integer to
// opaque black. Fractional values become an opaque gray ramp over [0, 1].
// NaN is not treated as a number and maps to transparent white.
func DefaultColor(v float64, _, _, _ int) color.NRGBA {
	if math.IsNaN(v) {
		return transparent
	}
	if !math.IsInf(v, 0) && v == math.Trunc(v) {
		if v == 0 {
			return white
		}
		return black
	}
	g := Clamp(math.Max(0, math.Min(1, v)) * 255)
	return color.NRGBA{R: g, G: g, B: g, A: 255}
}

// Palette builds a ColorMap that looks integer values up in colors. Values
// without an entry, including fractional ones, map to fallback.
func Palette(colors map[int]color.NRGBA, fallback color.NRGBA) ColorMap {
	var lut []color.NRGBA
	maxKey := -1
	for k := range colors {
		if k > maxKey {
			maxKey = k
		}
	}
	if maxKey >= 0 && maxKey < 1<<16 {
		lut = make([]color.NRGBA, maxKey+1)
		for i := range lut {
			lut[i] = fallback
		}
		for k, c := range colors {
			if k >= 0 {
				lut[k] = c
			}
		}
	}
	return func(v float64, _, _, _ int) color.NRGBA {
		if v != math.Trunc(v) {
			return fallback
		}
		i := int(v)
		if i >= 0 && i < len(lut) {
			return lut[i]
		}
		if c, ok := colors[i]; ok {
			return c
		}
		return fallback
	}
}

// Clamp rounds v half-up and clamps it into a color channel.
func Clamp(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Floor(v + 0.5))
}
