package ui

import (
	"fmt"
	"strings"

	"layered-ca/internal/core"
	"layered-ca/internal/engine"
	"layered-ca/internal/scene"
)

// Status is the read-out shown next to the simulation.
type Status struct {
	Scene  string
	Tick   uint64
	FPS    float64
	Scan   engine.ScanOrder
	Brush  core.Brush
	Paused bool
	Zoom   float64
	Params scene.ParameterSnapshot
}

// Snapshot collects the status of sc.
func Snapshot(sc scene.Scene, zoom float64) Status {
	eng := sc.Engine()
	s := Status{
		Scene:  sc.Name(),
		Tick:   eng.Ticks(),
		FPS:    eng.FPS(),
		Scan:   eng.ScanOrder(),
		Paused: !eng.Running(),
		Zoom:   zoom,
	}
	if b := sc.Brush(); b != nil {
		s.Brush = *b
	}
	if p, ok := sc.(scene.ParameterProvider); ok {
		s.Params = p.Parameters()
	}
	return s
}

// Title returns the heading line.
func (s Status) Title() string {
	if s.Scene == "" {
		return "Controls"
	}
	return strings.ToUpper(s.Scene[:1]) + s.Scene[1:]
}

// Lines renders the status as text, one entry per line.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("tick   %d (%s)", s.Tick, state),
		fmt.Sprintf("fps    %.1f", s.FPS),
		fmt.Sprintf("scan   %s", s.Scan),
		fmt.Sprintf("brush  %d  color %d", s.Brush.Size, s.Brush.Color),
	}
	if s.Zoom > 0 {
		lines = append(lines, fmt.Sprintf("zoom   %.2fx", s.Zoom))
	}
	for _, g := range s.Params.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}
