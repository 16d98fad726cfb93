package render

import "image/color"

// Blend composites src over dst with the straight-alpha "over" operator.
// Alpha is normalized to [0, 1] for the arithmetic and stored back in
// [0, 255]. A fully transparent result is (0, 0, 0, 0).
func Blend(dst, src color.NRGBA) color.NRGBA {
	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	outA := sa + da*(1-sa)
	if outA == 0 {
		return color.NRGBA{}
	}
	dw := da * (1 - sa)
	ch := func(s, d uint8) uint8 {
		return Clamp((float64(s)*sa + float64(d)*dw) / outA)
	}
	return color.NRGBA{
		R: ch(src.R, dst.R),
		G: ch(src.G, dst.G),
		B: ch(src.B, dst.B),
		A: Clamp(outA * 255),
	}
}
