package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBrushSizeClamped(t *testing.T) {
	b := NewBrush(0, 1)
	assert.Equal(t, BrushMin, b.Size)
	b.SetSize(500)
	assert.Equal(t, BrushMax, b.Size)
	b.Grow(-10)
	assert.Equal(t, BrushMax-10, b.Size)
}

func TestBrushEraseRestoresColor(t *testing.T) {
	b := NewBrush(3, 4)
	b.Erase()
	assert.Equal(t, 0, b.Color)
	b.Draw()
	assert.Equal(t, 4, b.Color)
	b.Select(0)
	b.Draw()
	assert.Equal(t, 4, b.Color)
}

func TestBrushStampCoversSquare(t *testing.T) {
	b := NewBrush(3, 1)
	b.X, b.Y = 5, 5
	seen := map[[2]int]bool{}
	b.Stamp(func(x, y int) { seen[[2]int{x, y}] = true })
	assert.Len(t, seen, 9)
	assert.True(t, seen[[2]int{4, 4}])
	assert.True(t, seen[[2]int{6, 6}])

	b.SetSize(2)
	seen = map[[2]int]bool{}
	b.Stamp(func(x, y int) { seen[[2]int{x, y}] = true })
	assert.Len(t, seen, 4)
}

func TestBrushClearRequestIsConsumed(t *testing.T) {
	b := NewBrush(1, 1)
	assert.False(t, b.TakeClear())
	b.RequestClear()
	assert.True(t, b.TakeClear())
	assert.False(t, b.TakeClear())
}

func TestFixedStep(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }
	assert.Equal(t, 100*time.Millisecond, fs.Interval())

	// The accumulator starts primed so the first call steps.
	assert.True(t, fs.ShouldStep())
	now = now.Add(50 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	now = now.Add(60 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
	assert.InDelta(t, 110.0, fs.TakeDT(), 1e-9)
	assert.Zero(t, fs.TakeDT())
}

func TestFixedStepAdvanceOnlyMeasures(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	fs.Advance()
	now = now.Add(30 * time.Millisecond)
	fs.Advance()
	now = now.Add(20 * time.Millisecond)
	fs.Advance()
	assert.InDelta(t, 50.0, fs.TakeDT(), 1e-9)

	// Advancing does not consume the primed tick.
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())
}
