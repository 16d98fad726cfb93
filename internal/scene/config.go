package scene

import (
	"strconv"

	"layered-ca/internal/engine"
)

// Config holds the settings every scene understands.
type Config struct {
	Width  int
	Height int
	Seed   int64
	Scan   engine.ScanOrder
	Noise  float64
	Brush  int
}

// DefaultConfig returns the standard configuration for a scene whose
// preferred scan order is scan.
func DefaultConfig(scan engine.ScanOrder) Config {
	return Config{Width: 200, Height: 100, Seed: 1337, Scan: scan, Brush: 3}
}

// FromMap overlays flag-style key/value pairs on base. Malformed values keep
// the base setting; an unknown scan order is reported.
func FromMap(cfg map[string]string, base Config) (Config, error) {
	c := base
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Noise = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Brush = parsed
		}
	}
	if v, ok := cfg["scan"]; ok && v != "" {
		order, err := engine.ParseScanOrder(v)
		if err != nil {
			return c, err
		}
		c.Scan = order
	}
	return c, nil
}

// EngineOptions returns the engine options implied by c, followed by extra.
func (c Config) EngineOptions(extra ...engine.Option) []engine.Option {
	opts := []engine.Option{engine.WithScanOrder(c.Scan), engine.WithSeed(c.Seed)}
	return append(opts, extra...)
}
