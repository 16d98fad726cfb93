package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"layered-ca/internal/render"
)

const halfBlock = "▀"

// Canvas converts frames into terminal text, two pixel rows per line.
type Canvas struct {
	bg     color.NRGBA
	styles map[[2]color.NRGBA]lipgloss.Style
}

// NewCanvas returns a canvas that flattens translucent pixels onto bg.
func NewCanvas(bg color.NRGBA) *Canvas {
	bg.A = 255
	return &Canvas{bg: bg, styles: make(map[[2]color.NRGBA]lipgloss.Style)}
}

// Render draws at most cols x rows terminal cells of frame, starting at its
// top-left corner. Non-positive limits mean unlimited.
func (c *Canvas) Render(frame *image.NRGBA, cols, rows int) string {
	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()
	if cols > 0 {
		w = min(w, cols)
	}
	lines := (h + 1) / 2
	if rows > 0 {
		lines = min(lines, rows)
	}
	var sb strings.Builder
	for line := 0; line < lines; line++ {
		y := b.Min.Y + line*2
		for x := b.Min.X; x < b.Min.X+w; x++ {
			top := c.flatten(frame.NRGBAAt(x, y))
			bottom := c.bg
			if y+1 < b.Max.Y {
				bottom = c.flatten(frame.NRGBAAt(x, y+1))
			}
			sb.WriteString(c.style(top, bottom).Render(halfBlock))
		}
		if line < lines-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (c *Canvas) flatten(px color.NRGBA) color.NRGBA {
	if px.A == 255 {
		return px
	}
	return render.Blend(c.bg, px)
}

func (c *Canvas) style(fg, bg color.NRGBA) lipgloss.Style {
	key := [2]color.NRGBA{fg, bg}
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(hex(fg)).Background(hex(bg))
	c.styles[key] = s
	return s
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
