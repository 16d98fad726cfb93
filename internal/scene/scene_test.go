package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layered-ca/internal/core"
	"layered-ca/internal/engine"
)

type stubScene struct{ eng *engine.Engine }

func (s *stubScene) Name() string           { return "stub" }
func (s *stubScene) Engine() *engine.Engine { return s.eng }
func (s *stubScene) Brush() *core.Brush     { return nil }
func (s *stubScene) Reset(int64)            {}

func TestFromMap(t *testing.T) {
	base := DefaultConfig(engine.Alternating)
	c, err := FromMap(map[string]string{"w": "64", "h": "-3", "seed": "5", "noise": "0.4", "brush": "x", "scan": "shuffle"}, base)
	require.NoError(t, err)
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, base.Height, c.Height, "malformed values keep the base")
	assert.EqualValues(t, 5, c.Seed)
	assert.Equal(t, 0.4, c.Noise)
	assert.Equal(t, base.Brush, c.Brush)
	assert.Equal(t, engine.Shuffled, c.Scan)

	c, err = FromMap(nil, base)
	require.NoError(t, err)
	assert.Equal(t, base, c)

	_, err = FromMap(map[string]string{"scan": "zigzag"}, base)
	assert.ErrorIs(t, err, engine.ErrUnknownScanOrder)
}

func TestRegistry(t *testing.T) {
	Register("stub-test", func(cfg map[string]string, opts ...engine.Option) (Scene, error) {
		c, err := FromMap(cfg, DefaultConfig(engine.LeftToRight))
		if err != nil {
			return nil, err
		}
		eng, err := engine.NewSingle(core.MustGrid(c.Width, c.Height, core.KindUint8), nil, nil, nil, c.EngineOptions(opts...)...)
		if err != nil {
			return nil, err
		}
		return &stubScene{eng: eng}, nil
	})
	Register("", nil)
	assert.Contains(t, Names(), "stub-test")
	assert.NotContains(t, Names(), "")

	sc, err := New("stub-test", map[string]string{"w": "8", "h": "4", "scan": "right-to-left"})
	require.NoError(t, err)
	assert.Equal(t, 8, sc.Engine().Width())
	assert.Equal(t, engine.RightToLeft, sc.Engine().ScanOrder())

	// Caller options come after the scene's own and win.
	sc, err = New("stub-test", nil, engine.WithScanOrder(engine.Checkerboard))
	require.NoError(t, err)
	assert.Equal(t, engine.Checkerboard, sc.Engine().ScanOrder())

	_, err = New("nope", nil)
	assert.ErrorIs(t, err, ErrUnknownScene)
}

func TestSeedNoise(t *testing.T) {
	a := core.MustGrid(40, 30, core.KindUint8)
	b := core.MustGrid(40, 30, core.KindUint8)
	na := SeedNoise(a, 7, 0.5, 0, 10, 1)
	nb := SeedNoise(b, 7, 0.5, 0, 10, 1)
	assert.Equal(t, na, nb)
	ca, _ := core.Cells[uint8](a)
	cb, _ := core.Cells[uint8](b)
	assert.Equal(t, ca, cb)
	for y := 10; y < 30; y++ {
		for x := 0; x < 40; x++ {
			require.Zero(t, a.Get(x, y), "rows outside the band stay empty")
		}
	}
	assert.Zero(t, SeedNoise(a, 7, 0.5, 20, 10, 1), "an empty band seeds nothing")
}

func TestDescribe(t *testing.T) {
	eng, err := engine.New([]engine.LayerSpec{
		{Name: "sand", Grid: core.MustGrid(3, 2, core.KindUint8)},
		{Name: "life", Grid: core.MustGrid(3, 2, core.KindFloat32)},
	}, engine.WithScanOrder(engine.Shuffled))
	require.NoError(t, err)
	snap := Describe(DefaultConfig(engine.Shuffled), eng)
	require.Len(t, snap.Groups, 2)
	assert.Equal(t, "World", snap.Groups[0].Name)
	assert.Equal(t, Parameter{Key: "scan", Label: "Scan order", Value: "shuffled"}, snap.Groups[0].Params[3])
	assert.Equal(t, []Parameter{
		{Key: "0", Label: "sand", Value: "uint8"},
		{Key: "1", Label: "life", Value: "float32"},
	}, snap.Groups[1].Params)
}
