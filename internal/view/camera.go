// Package view maps between world (grid) coordinates and screen pixels.
package view

import (
	"image"
	"math"
)

const (
	MinZoom = 0.1
	MaxZoom = 20.0
)

// Camera is a 2D viewport. X and Y are the world coordinates of the top-left
// screen pixel; Zoom is screen pixels per world cell.
type Camera struct {
	X, Y float64
	Zoom float64
}

// NewCamera returns a camera at the origin with zoom 1.
func NewCamera() *Camera { return &Camera{Zoom: 1} }

// Rect is an axis-aligned region in world coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Move pans the camera by (dx, dy) world units.
func (c *Camera) Move(dx, dy float64) {
	c.X += dx
	c.Y += dy
}

// SetPosition places the top-left corner at (x, y).
func (c *Camera) SetPosition(x, y float64) {
	c.X, c.Y = x, y
}

// SetZoom multiplies the zoom by factor, clamped to [MinZoom, MaxZoom], and
// keeps the world point (wx, wy) at the same screen position.
func (c *Camera) SetZoom(factor, wx, wy float64) {
	old := c.zoom()
	z := clampZoom(old * factor)
	ratio := old / z
	c.X = wx - (wx-c.X)*ratio
	c.Y = wy - (wy-c.Y)*ratio
	c.Zoom = z
}

// ResetZoom restores zoom 1 at the origin.
func (c *Camera) ResetZoom() {
	c.X, c.Y, c.Zoom = 0, 0, 1
}

// WorldToScreen converts world coordinates to screen pixels.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	z := c.zoom()
	return (wx - c.X) * z, (wy - c.Y) * z
}

// ScreenToWorld converts screen pixels to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	z := c.zoom()
	return sx/z + c.X, sy/z + c.Y
}

// Bounds returns the world region visible on a canvas of cw x ch pixels.
func (c *Camera) Bounds(cw, ch int) Rect {
	z := c.zoom()
	return Rect{
		Left:   c.X,
		Top:    c.Y,
		Right:  c.X + float64(cw)/z,
		Bottom: c.Y + float64(ch)/z,
	}
}

// CenterOn moves the camera so (wx, wy) sits in the middle of the canvas.
func (c *Camera) CenterOn(wx, wy float64, cw, ch int) {
	z := c.zoom()
	c.X = wx - float64(cw)/z/2
	c.Y = wy - float64(ch)/z/2
}

// Fit picks the largest zoom showing the whole gw x gh grid on the canvas
// and centers on it.
func (c *Camera) Fit(gw, gh, cw, ch int) {
	if gw <= 0 || gh <= 0 || cw <= 0 || ch <= 0 {
		c.ResetZoom()
		return
	}
	c.Zoom = clampZoom(math.Min(float64(cw)/float64(gw), float64(ch)/float64(gh)))
	c.CenterOn(float64(gw)/2, float64(gh)/2, cw, ch)
}

// SourceRect returns the whole cells covering the visible region, for
// sampling a frame. The rectangle may extend past the frame; callers
// intersect it with the frame bounds.
func (c *Camera) SourceRect(cw, ch int) image.Rectangle {
	b := c.Bounds(cw, ch)
	return image.Rect(
		int(math.Floor(b.Left)),
		int(math.Floor(b.Top)),
		int(math.Ceil(b.Right)),
		int(math.Ceil(b.Bottom)),
	)
}

func (c *Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

func clampZoom(z float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}
