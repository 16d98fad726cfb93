package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-scene", "paint", "-width", "64", "-scan", "checkerboard", "-seed", "9"}))
	assert.Equal(t, "paint", cfg.Scene)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 100, cfg.Height)
	assert.Equal(t, "checkerboard", cfg.Scan)
	assert.EqualValues(t, 9, cfg.Seed)
	assert.ElementsMatch(t, []string{"scene", "width", "scan", "seed"}, Explicit(fs))
}

func TestLoadFileFlagsWin(t *testing.T) {
	path := writeFile(t, `
scene: sandlife
width: 80
height: 40
tps: 30
scan: shuffled
log_level: debug
options:
  life: "50"
`)
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-width", "120"}))
	require.NoError(t, cfg.LoadFile(cfg.File, Explicit(fs)))

	assert.Equal(t, "sandlife", cfg.Scene)
	assert.Equal(t, 120, cfg.Width, "flag overrides file")
	assert.Equal(t, 40, cfg.Height)
	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, 4, cfg.Scale, "unset keys keep defaults")

	opts := cfg.SceneOptions()
	assert.Equal(t, "50", opts["life"])
	assert.Equal(t, "120", opts["w"])
	assert.Equal(t, "40", opts["h"])
	assert.Equal(t, "shuffled", opts["scan"])
	assert.Equal(t, "1337", opts["seed"])
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	assert.NoError(t, cfg.LoadFile("", nil))
	assert.Error(t, cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), nil))
	assert.Error(t, cfg.LoadFile(writeFile(t, "width: [1, 2"), nil))
}

func TestLogOutputs(t *testing.T) {
	cfg := NewConfig()
	assert.Empty(t, cfg.LogOutputs())
	cfg.LogFile = "ca.log"
	assert.Equal(t, []string{"ca.log"}, cfg.LogOutputs())
}

func TestNormalize(t *testing.T) {
	cfg := &Config{Scale: -1, TPS: 0, Width: 0, Height: -3}
	cfg.Normalize()
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 100, cfg.Height)
	assert.Equal(t, "200", cfg.SceneOptions()["w"])
	assert.Equal(t, 4, cfg.Scale)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, "sand", cfg.Scene)
}
