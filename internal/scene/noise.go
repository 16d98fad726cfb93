package scene

import (
	"github.com/aquilax/go-perlin"

	"layered-ca/internal/core"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 1.0 / 16
)

// SeedNoise writes value into every cell of the rows [top, bottom) whose
// Perlin noise, normalized to [0, 1], exceeds threshold. It returns the
// number of cells written.
func SeedNoise(g *core.Grid, seed int64, threshold float64, top, bottom int, value float64) int {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	top = max(top, 0)
	bottom = min(bottom, g.Height())
	n := 0
	for y := top; y < bottom; y++ {
		for x := 0; x < g.Width(); x++ {
			v := (p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale) + 1) / 2
			if v > threshold {
				g.SetUnchecked(x, y, value)
				n++
			}
		}
	}
	return n
}
