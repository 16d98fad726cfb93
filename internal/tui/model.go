// Package tui presents a running scene in the terminal.
package tui

import (
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"layered-ca/internal/core"
	"layered-ca/internal/render"
	"layered-ca/internal/scene"
	"layered-ca/internal/ui"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			PaddingLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const help = "space pause • n step • r reset • [ ] brush • c clear • q quit"

type tickMsg time.Time

// Model is the bubbletea model driving one scene.
type Model struct {
	scene    scene.Scene
	renderer *render.Renderer
	canvas   *Canvas
	clock    *core.FixedStep
	interval time.Duration
	seed     int64

	cols, rows int
}

// New returns a model stepping sc at tps ticks per second.
func New(sc scene.Scene, tps int, seed int64) *Model {
	clock := core.NewFixedStep(tps)
	eng := sc.Engine()
	return &Model{
		scene:    sc,
		renderer: render.New(eng.Width(), eng.Height()),
		canvas:   NewCanvas(color.NRGBA{R: 40, G: 40, B: 44, A: 255}),
		clock:    clock,
		interval: clock.Interval(),
		seed:     seed,
	}
}

// Run starts the program and blocks until the user quits.
func Run(sc scene.Scene, tps int, seed int64) error {
	_, err := tea.NewProgram(New(sc, tps, seed), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the engine and the tick loop.
func (m *Model) Init() tea.Cmd {
	m.scene.Engine().Start()
	return m.tick()
}

// Update handles ticks, keys and mouse painting.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	eng := m.scene.Engine()
	brush := m.scene.Brush()
	switch msg := msg.(type) {
	case tickMsg:
		m.clock.Advance()
		eng.Tick(m.clock.TakeDT())
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height-3
	case tea.MouseMsg:
		if brush == nil {
			break
		}
		brush.X, brush.Y = msg.X, (msg.Y-1)*2
		switch msg.Action {
		case tea.MouseActionPress, tea.MouseActionMotion:
			brush.Down = msg.Button == tea.MouseButtonLeft
		case tea.MouseActionRelease:
			brush.Down = false
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			eng.Stop()
			return m, tea.Quit
		case " ":
			if eng.Running() {
				eng.Stop()
			} else {
				eng.Start()
			}
		case "n":
			eng.Step(float64(m.interval) / float64(time.Millisecond))
		case "r":
			m.scene.Reset(m.seed)
		case "[":
			if brush != nil {
				brush.Grow(-1)
			}
		case "]":
			if brush != nil {
				brush.Grow(1)
			}
		case "c":
			if brush != nil {
				brush.RequestClear()
			}
		}
	}
	return m, nil
}

// View renders the title, the frame and a status line.
func (m *Model) View() string {
	m.renderer.DrawAll(m.scene.Engine().Layers())
	status := ui.Snapshot(m.scene, 0)
	lines := status.Lines()
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(status.Title()))
	sb.WriteString(statusStyle.Render(strings.Join(lines[:min(3, len(lines))], "  ")))
	sb.WriteByte('\n')
	sb.WriteString(m.canvas.Render(m.renderer.Frame(), m.cols, m.rows))
	sb.WriteByte('\n')
	sb.WriteString(helpStyle.Render(help))
	return sb.String()
}
