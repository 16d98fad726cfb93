package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

const (
	// BrushMin and BrushMax bound the brush edge length.
	BrushMin = 1
	BrushMax = 50
)

// Brush is the pointer state a presenter feeds to post-update callbacks.
// Coordinates are in grid space.
type Brush struct {
	X, Y  int
	Down  bool
	Size  int
	Color int

	lastColor int
	clear     bool
}

// NewBrush returns a brush of the given size painting color.
func NewBrush(size, color int) *Brush {
	b := &Brush{Color: color, lastColor: color}
	b.SetSize(size)
	return b
}

// SetSize clamps and applies the brush edge length.
func (b *Brush) SetSize(size int) {
	b.Size = min(max(size, BrushMin), BrushMax)
}

// Grow changes the brush size by delta.
func (b *Brush) Grow(delta int) { b.SetSize(b.Size + delta) }

// Select picks a drawing color and remembers it for Draw.
func (b *Brush) Select(color int) {
	b.Color = color
	if color != 0 {
		b.lastColor = color
	}
}

// Erase switches to color 0, remembering the previous color.
func (b *Brush) Erase() {
	if b.Color != 0 {
		b.lastColor = b.Color
	}
	b.Color = 0
}

// Draw restores the last non-erase color.
func (b *Brush) Draw() { b.Color = b.lastColor }

// RequestClear asks the owning scene to wipe its canvas on the next tick.
func (b *Brush) RequestClear() { b.clear = true }

// TakeClear reports and resets a pending clear request.
func (b *Brush) TakeClear() bool {
	c := b.clear
	b.clear = false
	return c
}

// Stamp calls fn for every cell covered by a square brush centered on
// (X, Y). Coordinates may fall outside the grid.
func (b *Brush) Stamp(fn func(x, y int)) {
	size := max(b.Size, BrushMin)
	half := size / 2
	for dy := -half; dy < size-half; dy++ {
		for dx := -half; dx < size-half; dx++ {
			fn(b.X+dx, b.Y+dy)
		}
	}
}
