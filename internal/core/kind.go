package core

import (
	"errors"
	"fmt"
	"math"
)

// Kind enumerates supported cell element types.
type Kind string

const (
	KindUint8   Kind = "uint8"
	KindInt8    Kind = "int8"
	KindUint16  Kind = "uint16"
	KindInt16   Kind = "int16"
	KindUint32  Kind = "uint32"
	KindInt32   Kind = "int32"
	KindFloat32 Kind = "float32"
	KindFloat64 Kind = "float64"
)

// ErrUnknownKind reports an unsupported element kind.
var ErrUnknownKind = errors.New("core: unknown cell kind")

// Number is the set of element types a grid can store.
type Number interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~float32 | ~float64
}

type store interface {
	at(i int) float64
	put(i int, v float64)
	clear()
	fill(v float64)
	clone() store
}

type typedStore[T Number] struct {
	data    []T
	integer bool
}

func newStore(kind Kind, n int) (store, error) {
	switch kind {
	case KindUint8, "":
		return &typedStore[uint8]{data: make([]uint8, n), integer: true}, nil
	case KindInt8:
		return &typedStore[int8]{data: make([]int8, n), integer: true}, nil
	case KindUint16:
		return &typedStore[uint16]{data: make([]uint16, n), integer: true}, nil
	case KindInt16:
		return &typedStore[int16]{data: make([]int16, n), integer: true}, nil
	case KindUint32:
		return &typedStore[uint32]{data: make([]uint32, n), integer: true}, nil
	case KindInt32:
		return &typedStore[int32]{data: make([]int32, n), integer: true}, nil
	case KindFloat32:
		return &typedStore[float32]{data: make([]float32, n)}, nil
	case KindFloat64:
		return &typedStore[float64]{data: make([]float64, n)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
}

func (s *typedStore[T]) at(i int) float64 { return float64(s.data[i]) }

func (s *typedStore[T]) put(i int, v float64) { s.data[i] = s.convert(v) }

func (s *typedStore[T]) convert(v float64) T {
	if !s.integer {
		return T(v)
	}
	return T(wrapInt(v))
}

func (s *typedStore[T]) clear() { clear(s.data) }

func (s *typedStore[T]) fill(v float64) {
	c := s.convert(v)
	for i := range s.data {
		s.data[i] = c
	}
}

func (s *typedStore[T]) clone() store {
	return &typedStore[T]{data: append([]T(nil), s.data...), integer: s.integer}
}

// wrapInt truncates toward zero and reduces modulo 2^32 so the final integer
// conversion wraps the way typed arrays do. NaN and infinities become 0.
func wrapInt(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Mod(math.Trunc(v), 1<<32))
}
