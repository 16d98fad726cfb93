package engine

import (
	"fmt"
	"strings"

	"layered-ca/internal/core"
)

// ScanOrder selects the sequence in which coordinates are visited each tick.
type ScanOrder string

const (
	// LeftToRight visits rows top to bottom, x ascending.
	LeftToRight ScanOrder = "left-to-right"
	// RightToLeft visits rows top to bottom, x descending.
	RightToLeft ScanOrder = "right-to-left"
	// Alternating picks LeftToRight or RightToLeft at random each tick.
	Alternating ScanOrder = "alternating"
	// Shuffled walks a random permutation that is redrawn every other tick.
	Shuffled ScanOrder = "shuffled"
	// Checkerboard visits cells with even x+y, then cells with odd x+y.
	Checkerboard ScanOrder = "checkerboard"
)

// ScanOrders lists every supported order.
var ScanOrders = []ScanOrder{LeftToRight, RightToLeft, Alternating, Shuffled, Checkerboard}

// ParseScanOrder maps a name to a ScanOrder. The empty string selects
// LeftToRight and "shuffle" is accepted for Shuffled.
func ParseScanOrder(s string) (ScanOrder, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "":
		return LeftToRight, nil
	case "shuffle":
		return Shuffled, nil
	}
	for _, o := range ScanOrders {
		if string(o) == name {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScanOrder, s)
}

func (o ScanOrder) String() string { return string(o) }

type coord struct{ x, y int32 }

// traversal holds the precomputed coordinate tables for one grid size.
type traversal struct {
	ltr      []coord
	rtl      []coord
	checker  []coord
	shuffled []coord
}

func newTraversal(order ScanOrder, w, h int) *traversal {
	t := &traversal{}
	switch order {
	case LeftToRight:
		t.ltr = rowMajor(w, h, false)
	case RightToLeft:
		t.rtl = rowMajor(w, h, true)
	case Alternating:
		t.ltr = rowMajor(w, h, false)
		t.rtl = rowMajor(w, h, true)
	case Shuffled:
		t.shuffled = rowMajor(w, h, false)
	case Checkerboard:
		t.checker = make([]coord, 0, w*h)
		for parity := 0; parity < 2; parity++ {
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if (x+y)%2 == parity {
						t.checker = append(t.checker, coord{int32(x), int32(y)})
					}
				}
			}
		}
	}
	return t
}

func rowMajor(w, h int, reverse bool) []coord {
	out := make([]coord, 0, w*h)
	for y := 0; y < h; y++ {
		for i := 0; i < w; i++ {
			x := i
			if reverse {
				x = w - 1 - i
			}
			out = append(out, coord{int32(x), int32(y)})
		}
	}
	return out
}

// sequence returns the coordinates to visit on the given tick and the order
// actually used.
func (t *traversal) sequence(order ScanOrder, tick uint64, rng *core.RNG) ([]coord, ScanOrder) {
	switch order {
	case RightToLeft:
		return t.rtl, RightToLeft
	case Alternating:
		if rng.Bool() {
			return t.rtl, RightToLeft
		}
		return t.ltr, LeftToRight
	case Shuffled:
		if tick%2 == 0 {
			core.Permute(rng, t.shuffled)
		}
		return t.shuffled, Shuffled
	case Checkerboard:
		return t.checker, Checkerboard
	default:
		return t.ltr, LeftToRight
	}
}
