package scene

import (
	"errors"
	"fmt"
	"sort"

	"layered-ca/internal/core"
	"layered-ca/internal/engine"
)

// ErrUnknownScene reports a lookup of an unregistered scene.
var ErrUnknownScene = errors.New("scene: unknown scene")

// Scene couples an engine with the input it reacts to.
type Scene interface {
	Name() string
	Engine() *engine.Engine
	Brush() *core.Brush
	// Reset clears every layer and seeds the initial content.
	Reset(seed int64)
}

// Factory constructs a Scene from flag-style key/value pairs. The options are
// forwarded to the engine after the scene's own.
type Factory func(cfg map[string]string, opts ...engine.Option) (Scene, error)

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Names lists the registered scenes in lexical order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene.
func New(name string, cfg map[string]string, opts ...engine.Option) (Scene, error) {
	f, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return f(cfg, opts...)
}
