package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layered-ca/internal/core"
	"layered-ca/internal/engine"
	"layered-ca/internal/scene"
)

type fakeScene struct {
	eng   *engine.Engine
	brush *core.Brush
}

func (f *fakeScene) Name() string           { return "demo" }
func (f *fakeScene) Engine() *engine.Engine { return f.eng }
func (f *fakeScene) Brush() *core.Brush     { return f.brush }
func (f *fakeScene) Reset(int64)            {}
func (f *fakeScene) Parameters() scene.ParameterSnapshot {
	return scene.ParameterSnapshot{Groups: []scene.ParameterGroup{{
		Name:   "Extra",
		Params: []scene.Parameter{scene.IntParam("k", "Knob", 3)},
	}}}
}

func TestSnapshotLines(t *testing.T) {
	eng, err := engine.NewSingle(core.MustGrid(2, 2, core.KindUint8), nil, nil, nil, engine.WithScanOrder(engine.Checkerboard))
	require.NoError(t, err)
	eng.Step(10)
	sc := &fakeScene{eng: eng, brush: core.NewBrush(5, 2)}

	s := Snapshot(sc, 2)
	assert.Equal(t, "Demo", s.Title())
	assert.True(t, s.Paused)

	text := strings.Join(s.Lines(), "\n")
	assert.Contains(t, text, "tick   1 (paused)")
	assert.Contains(t, text, "fps    10.0")
	assert.Contains(t, text, "scan   checkerboard")
	assert.Contains(t, text, "brush  5  color 2")
	assert.Contains(t, text, "zoom   2.00x")
	assert.Contains(t, text, "  Knob: 3")

	eng.Start()
	assert.False(t, Snapshot(sc, 0).Paused)
	assert.NotContains(t, strings.Join(Snapshot(sc, 0).Lines(), "\n"), "zoom")
}

func TestTitleFallback(t *testing.T) {
	assert.Equal(t, "Controls", Status{}.Title())
}
