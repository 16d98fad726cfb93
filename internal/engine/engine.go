package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"layered-ca/internal/core"
	"layered-ca/internal/render"
)

// Engine advances a fixed, ordered set of co-indexed layers one tick at a
// time. It is single-threaded: Step must not be called concurrently and the
// layers' grids must not be read while a step is in progress.
type Engine struct {
	layers   []*layer
	active   []*layer
	posting  []*layer
	sources  []render.Source
	byName   map[string]int
	w, h     int
	order    ScanOrder
	scan     *traversal
	rng      *core.RNG
	log      *zap.Logger
	observer Observer
	sink     Sink

	running   bool
	ticks     uint64
	fps       float64
	smoothing float64
}

// New validates the layer specs and builds an engine. Every layer must share
// the first layer's dimensions; each gets a scratch buffer cloned from its grid.
func New(specs []LayerSpec, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(specs) == 0 {
		return nil, ErrNoLayers
	}
	order, err := ParseScanOrder(string(o.order))
	if err != nil {
		return nil, err
	}
	if o.rng == nil {
		o.rng = core.NewRNG(time.Now().UnixNano())
	}

	e := &Engine{
		byName:    make(map[string]int, len(specs)),
		order:     order,
		rng:       o.rng,
		log:       o.logger,
		observer:  o.observer,
		sink:      o.sink,
		smoothing: o.smoothing,
	}

	owned := make(map[*core.Grid]string, len(specs))
	for i, spec := range specs {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("layer%d", i)
		}
		if spec.Grid == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilGrid, name)
		}
		if i == 0 {
			e.w, e.h = spec.Grid.Width(), spec.Grid.Height()
		} else if spec.Grid.Width() != e.w || spec.Grid.Height() != e.h {
			return nil, fmt.Errorf("%w: %q is %dx%d, want %dx%d",
				ErrDimensionMismatch, name, spec.Grid.Width(), spec.Grid.Height(), e.w, e.h)
		}
		if owner, shared := owned[spec.Grid]; shared {
			return nil, fmt.Errorf("%w: %q and %q", ErrSharedGrid, owner, name)
		}
		owned[spec.Grid] = name
		if _, dup := e.byName[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLayer, name)
		}
		e.byName[name] = i

		l := &layer{
			name:       name,
			grid:       spec.Grid,
			scratch:    spec.Grid.Clone(),
			transition: spec.Transition,
			post:       spec.PostUpdate,
			color:      spec.Color,
			eng:        e,
		}
		l.current = currentView{l: l}
		l.currentRW = currentWriter{currentView: l.current}
		l.next = scratchView{l: l}
		l.cell = Cell{Current: l.current, Next: l.next, self: i, eng: e}
		l.frame = Frame{Grid: l.currentRW, self: i, eng: e}
		e.layers = append(e.layers, l)
		if l.transition != nil {
			e.active = append(e.active, l)
		}
		if l.post != nil {
			e.posting = append(e.posting, l)
		}
		e.sources = append(e.sources, render.Source{Name: name, Grid: l.current, Color: l.color})
	}

	for i, spec := range specs {
		l := e.layers[i]
		l.couples = make([]bool, len(e.layers))
		for _, sib := range spec.Couples {
			j, ok := e.byName[sib]
			if !ok {
				return nil, fmt.Errorf("%w: %q couples %q", ErrUnknownLayer, l.name, sib)
			}
			if e.layers[j].transition == nil && l.post == nil {
				return nil, fmt.Errorf("%w: %q couples %q", ErrCoupleStatic, l.name, sib)
			}
			l.couples[j] = true
		}
	}

	e.scan = newTraversal(order, e.w, e.h)
	e.log.Debug("engine configured",
		zap.Int("layers", len(e.layers)),
		zap.Int("width", e.w),
		zap.Int("height", e.h),
		zap.Stringer("scan", order))
	return e, nil
}

// NewSingle builds the single-layer engine: one grid driven through the same
// per-tick cycle. Any of transition, post and color may be nil.
func NewSingle(g *core.Grid, transition Transition, post PostUpdate, color render.ColorMap, opts ...Option) (*Engine, error) {
	return New([]LayerSpec{{
		Name:       "main",
		Grid:       g,
		Transition: transition,
		PostUpdate: post,
		Color:      color,
	}}, opts...)
}

// Step advances every layer by exactly one tick using the elapsed time dt.
func (e *Engine) Step(dt float64) {
	for _, l := range e.active {
		l.scratch.Clear()
	}

	seq, used := e.scan.sequence(e.order, e.ticks, e.rng)
	if len(e.active) > 0 {
		for _, l := range e.active {
			l.cell.DT = dt
		}
		for _, c := range seq {
			x, y := int(c.x), int(c.y)
			for _, l := range e.active {
				l.cell.X, l.cell.Y = x, y
				l.transition.Transition(&l.cell)
			}
		}
	}

	for _, l := range e.active {
		l.swap()
	}

	for _, l := range e.posting {
		l.frame.DT = dt
		l.post.PostUpdate(&l.frame)
	}

	e.ticks++
	if dt > 0 {
		e.fps = e.fps*e.smoothing + (1000/dt)*(1-e.smoothing)
	}
	if e.observer != nil {
		e.observer.ObserveStep(StepStats{Tick: e.ticks, DT: dt, FPS: e.fps, Order: used})
	}
	if e.sink != nil {
		e.sink.DrawAll(e.sources)
	}
}

// Start moves the engine to the running state.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	e.log.Info("engine started", zap.Uint64("tick", e.ticks))
}

// Stop moves the engine to the idle state.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.log.Info("engine stopped", zap.Uint64("tick", e.ticks), zap.Float64("fps", e.fps))
}

// Running reports whether the engine is started.
func (e *Engine) Running() bool { return e.running }

// Tick runs one Step when the engine is running and reports whether it did.
func (e *Engine) Tick(dt float64) bool {
	if !e.running {
		return false
	}
	e.Step(dt)
	return true
}

// FPS returns the smoothed frame-rate estimate derived from dt in milliseconds.
func (e *Engine) FPS() float64 { return e.fps }

// Ticks returns the number of completed steps.
func (e *Engine) Ticks() uint64 { return e.ticks }

// ScanOrder returns the configured traversal policy.
func (e *Engine) ScanOrder() ScanOrder { return e.order }

// Width returns the shared grid width.
func (e *Engine) Width() int { return e.w }

// Height returns the shared grid height.
func (e *Engine) Height() int { return e.h }

// Size returns the shared grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// SetRenderer replaces the sink handed the layers after every step. A nil
// sink disables it.
func (e *Engine) SetRenderer(s Sink) { e.sink = s }

// Layers returns the render sources in declared order. The slice is shared
// and its grids always resolve to the layers' current buffers.
func (e *Engine) Layers() []render.Source { return e.sources }

// Index returns the position of the named layer, or -1.
func (e *Engine) Index(name string) int {
	if i, ok := e.byName[name]; ok {
		return i
	}
	return -1
}

// Layer returns the render source of the named layer.
func (e *Engine) Layer(name string) (render.Source, bool) {
	i := e.Index(name)
	if i < 0 {
		return render.Source{}, false
	}
	return e.sources[i], true
}

// Grid returns the current grid of the named layer for direct external
// writes between steps, or nil.
func (e *Engine) Grid(name string) *core.Grid {
	i := e.Index(name)
	if i < 0 {
		return nil
	}
	return e.layers[i].grid
}

// ClearLayers zeroes the current and scratch buffers of every layer. Call it
// between steps only.
func (e *Engine) ClearLayers() {
	for _, l := range e.layers {
		l.grid.Clear()
		l.scratch.Clear()
	}
}
