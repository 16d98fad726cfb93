package engine

import "errors"

// Construction errors. New wraps one of these with the offending layer.
var (
	ErrNoLayers          = errors.New("engine: at least one layer is required")
	ErrNilGrid           = errors.New("engine: layer has no grid")
	ErrDimensionMismatch = errors.New("engine: layer dimensions differ")
	ErrDuplicateLayer    = errors.New("engine: duplicate layer name")
	ErrSharedGrid        = errors.New("engine: grid already owned by another layer")
	ErrUnknownLayer      = errors.New("engine: unknown layer")
	ErrCoupleStatic      = errors.New("engine: coupled layer has no transition")
	ErrUnknownScanOrder  = errors.New("engine: unknown scan order")
)
