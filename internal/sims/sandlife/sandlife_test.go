package sandlife

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layered-ca/internal/engine"
	"layered-ca/internal/scene"
	"layered-ca/internal/sims/sand"
)

func newScene(t *testing.T) *SandLife {
	t.Helper()
	cfg := scene.DefaultConfig(engine.LeftToRight)
	cfg.Width, cfg.Height = 5, 5
	s, err := New(cfg, defaultLifespan, defaultDecay)
	require.NoError(t, err)
	return s
}

func TestLifeTravelsWithGrain(t *testing.T) {
	s := newScene(t)
	s.eng.Grid("sand").Set(2, 0, sand.Grain)
	s.eng.Grid("life").Set(2, 0, 100)

	s.eng.Step(16)
	sandGrid, lifeGrid := s.eng.Grid("sand"), s.eng.Grid("life")
	assert.Equal(t, float64(sand.Grain), sandGrid.Get(2, 1))
	assert.Equal(t, float64(sand.Empty), sandGrid.Get(2, 0))
	assert.InDelta(t, 99.9, lifeGrid.Get(2, 1), 1e-4)
	assert.Zero(t, lifeGrid.Get(2, 0))
}

func TestGrainDiesWhenLifeRunsOut(t *testing.T) {
	s := newScene(t)
	s.eng.Grid("sand").Set(2, 4, sand.Grain)
	s.eng.Grid("life").Set(2, 4, 0.25)

	for i := 0; i < 3; i++ {
		s.eng.Step(16)
		require.Equal(t, float64(sand.Grain), s.eng.Grid("sand").Get(2, 4), "step %d", i)
	}
	assert.Zero(t, s.eng.Grid("life").Get(2, 4))
	s.eng.Step(16)
	assert.Equal(t, float64(sand.Empty), s.eng.Grid("sand").Get(2, 4))
}

func TestBrushSeedsBothLayers(t *testing.T) {
	s := newScene(t)
	b := s.Brush()
	b.X, b.Y, b.Down = 2, 2, true
	s.eng.Step(16)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			assert.Equal(t, float64(sand.Grain), s.eng.Grid("sand").Get(x, y))
			assert.Equal(t, float64(defaultLifespan), s.eng.Grid("life").Get(x, y))
		}
	}

	b.Down = false
	b.RequestClear()
	s.eng.Step(16)
	assert.Zero(t, s.eng.Grid("sand").Get(2, 2))
	assert.Zero(t, s.eng.Grid("life").Get(2, 2))
}

func TestColors(t *testing.T) {
	assert.Equal(t, uint8(5), lifeColor(100, 0, 0, 0).A)
	assert.Equal(t, uint8(255), lifeColor(0, 0, 0, 0).A)
	assert.Equal(t, sand.GrainColor, sandColor(sand.Grain, 0, 0, 0))
	assert.Zero(t, sandColor(sand.Empty, 0, 0, 0).A)
}

func TestRegistered(t *testing.T) {
	sc, err := scene.New("sandlife", map[string]string{"w": "10", "h": "10", "life": "20", "decay": "0.5"})
	require.NoError(t, err)
	assert.Equal(t, engine.Shuffled, sc.Engine().ScanOrder())
	s := sc.(*SandLife)
	assert.Equal(t, 20.0, s.lifespan)
	assert.Equal(t, 0.5, s.decay)
	assert.Equal(t, 0, sc.Engine().Index("sand"))
	assert.Equal(t, 1, sc.Engine().Index("life"))
}
