package render

import "image/color"

// putRGBA writes c into buf at pixel index i.
func putRGBA(buf []byte, i int, c color.NRGBA) {
	base := i * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

// rgbaAt reads the pixel at index i.
func rgbaAt(buf []byte, i int) color.NRGBA {
	base := i * 4
	return color.NRGBA{R: buf[base+0], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

// fillRGBA sets every pixel in buf to c.
func fillRGBA(buf []byte, c color.NRGBA) {
	if c == (color.NRGBA{}) {
		clear(buf)
		return
	}
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = c.R
		buf[i+1] = c.G
		buf[i+2] = c.B
		buf[i+3] = c.A
	}
}

// Premultiply converts straight-alpha RGBA pixels in src into premultiplied
// pixels in dst, the layout GPU-backed images expect.
func Premultiply(dst, src []byte) {
	n := min(len(dst), len(src))
	for i := 0; i+3 < n; i += 4 {
		a := uint32(src[i+3])
		dst[i+0] = uint8((uint32(src[i+0])*a + 127) / 255)
		dst[i+1] = uint8((uint32(src[i+1])*a + 127) / 255)
		dst[i+2] = uint8((uint32(src[i+2])*a + 127) / 255)
		dst[i+3] = uint8(a)
	}
}
