package scene

import (
	"strconv"

	"layered-ca/internal/engine"
)

// Parameter describes a single value exposed by a scene.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the settings a scene currently runs with.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by scenes that describe their settings.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Describe returns the common groups for a scene running on e with c.
// Scenes append their own groups.
func Describe(c Config, e *engine.Engine) ParameterSnapshot {
	world := ParameterGroup{
		Name: "World",
		Params: []Parameter{
			IntParam("w", "Width", e.Width()),
			IntParam("h", "Height", e.Height()),
			{Key: "seed", Label: "Seed", Value: strconv.FormatInt(c.Seed, 10)},
			{Key: "scan", Label: "Scan order", Value: e.ScanOrder().String()},
		},
	}
	layers := ParameterGroup{Name: "Layers"}
	for i, src := range e.Layers() {
		layers.Params = append(layers.Params, Parameter{
			Key:   strconv.Itoa(i),
			Label: src.Name,
			Value: string(src.Grid.Kind()),
		})
	}
	return ParameterSnapshot{Groups: []ParameterGroup{world, layers}}
}

// IntParam builds an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(value)}
}

// FloatParam builds a floating-point parameter.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
