package engine

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"layered-ca/internal/core"
	"layered-ca/internal/render"
)

// Sink receives the layer list after every step, in declared order.
type Sink interface {
	DrawAll(srcs []render.Source)
}

// StepStats describes one completed step.
type StepStats struct {
	Tick  uint64
	DT    float64
	FPS   float64
	Order ScanOrder
}

// Observer is notified after every step.
type Observer interface {
	ObserveStep(s StepStats)
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	order     ScanOrder
	rng       *core.RNG
	logger    *zap.Logger
	observer  Observer
	sink      Sink
	smoothing float64
}

func defaultOptions() options {
	return options{
		order:     LeftToRight,
		logger:    zap.NewNop(),
		smoothing: 0.9,
	}
}

// WithScanOrder selects the traversal policy. The default is LeftToRight.
func WithScanOrder(o ScanOrder) Option {
	return func(opts *options) { opts.order = o }
}

// WithRand injects the random source used by Alternating and Shuffled.
func WithRand(r *rand.Rand) Option {
	return func(opts *options) {
		if r != nil {
			opts.rng = core.WrapRNG(r)
		}
	}
}

// WithSeed seeds a deterministic random source.
func WithSeed(seed int64) Option {
	return func(opts *options) { opts.rng = core.NewRNG(seed) }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(opts *options) {
		if l != nil {
			opts.logger = l
		}
	}
}

// WithObserver registers a step observer.
func WithObserver(o Observer) Option {
	return func(opts *options) { opts.observer = o }
}

// WithRenderer hands the layers to s at the end of every step.
func WithRenderer(s Sink) Option {
	return func(opts *options) { opts.sink = s }
}

// WithFPSSmoothing sets the weight of the previous frame-rate estimate,
// clamped to [0, 1). The default is 0.9.
func WithFPSSmoothing(s float64) Option {
	return func(opts *options) {
		if s < 0 {
			s = 0
		}
		if s >= 1 {
			s = 0.99
		}
		opts.smoothing = s
	}
}
