package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/gogpu/gg"

	"github.com/gogpu/simview"
	"github.com/gogpu/simview/termview"
)

// tuiRate is the terminal refresh rate.
const tuiRate = 30

// fpsHistoryLen bounds the sparkline ring.
const fpsHistoryLen = 90

// tuiBody is one drawable body as the TUI consumes it.
type tuiBody struct {
	Geometry simview.Geometry
	State    simview.State
}

// tuiFrame is everything one terminal frame needs.
type tuiFrame struct {
	Bodies   []tuiBody
	FPS      float64
	IPF      int
	Fraction float64
}

// frameSource produces frames for the TUI; the live command backs it
// with the demo world, watch with a remote feed.
type frameSource interface {
	// Step advances the source to now and returns the frame to draw.
	Step(now time.Time) tuiFrame
	// Close releases the source (remote connection, if any).
	Close() error
}

var (
	tuiTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	tuiStatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6"))
	tuiDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	tuiCanvasStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#243141"))
)

type tickMsg time.Time

func tuiTick() tea.Cmd {
	return tea.Tick(time.Second/tuiRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// tuiModel is the shared bubbletea program for live and watch.
type tuiModel struct {
	title string
	src   frameSource

	// world extent the bodies move in, for fitting the canvas scale
	worldW, worldH float64

	width  int
	height int
	canvas *termview.Canvas

	paused bool
	debug  bool

	frame   tuiFrame
	fpsHist []float64
}

func newTUIModel(title string, src frameSource, worldW, worldH float64) tuiModel {
	return tuiModel{
		title:  title,
		src:    src,
		worldW: worldW,
		worldH: worldH,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return tuiTick()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cols := max(msg.Width-4, 10)
		rows := max(msg.Height-9, 4)
		m.canvas = termview.NewCanvas(cols, rows)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			_ = m.src.Close()
			return m, tea.Quit
		case "d":
			m.debug = !m.debug
		case " ", "space":
			m.paused = !m.paused
		}
		return m, nil

	case tickMsg:
		if !m.paused {
			m.frame = m.src.Step(time.Time(msg))
			m.fpsHist = append(m.fpsHist, m.frame.FPS)
			if len(m.fpsHist) > fpsHistoryLen {
				m.fpsHist = m.fpsHist[1:]
			}
		}
		return m, tuiTick()
	}
	return m, nil
}

func (m tuiModel) View() string {
	if m.canvas == nil {
		return "sizing..."
	}

	m.drawFrame()

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		tuiTitleStyle.Render(m.title),
		tuiStatStyle.Render(fmt.Sprintf("  fps %5.1f  ipf %d  bodies %d",
			m.frame.FPS, m.frame.IPF, len(m.frame.Bodies))),
	)
	if m.paused {
		header += tuiDimStyle.Render("  [paused]")
	}
	if m.debug {
		header += tuiDimStyle.Render("  [debug]")
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(tuiCanvasStyle.Render(m.canvas.String()))
	b.WriteByte('\n')
	if len(m.fpsHist) >= 2 {
		b.WriteString(tuiDimStyle.Render(asciigraph.Plot(m.fpsHist,
			asciigraph.Height(3),
			asciigraph.Width(max(min(m.width-8, fpsHistoryLen), 10)),
			asciigraph.Caption("fps"))))
		b.WriteByte('\n')
	}
	b.WriteString(tuiDimStyle.Render("q quit · space pause · d debug boxes"))
	return b.String()
}

// drawFrame projects the current bodies onto the braille canvas.
func (m tuiModel) drawFrame() {
	m.canvas.Clear()
	dotsW, dotsH := m.canvas.Size()
	scale := math.Min(float64(dotsW)/m.worldW, float64(dotsH)/m.worldH)

	for _, b := range m.frame.Bodies {
		pos, angle := b.State.At(m.frame.Fraction)
		termview.DrawView(m.canvas, b.Geometry, pos, angle, scale)
		if m.debug {
			m.drawBounds(b.Geometry, pos, scale)
		}
	}
}

// drawBounds outlines a geometry's axis-aligned box at the rendered
// position, the braille analog of the renderer's debug layer.
func (m tuiModel) drawBounds(g simview.Geometry, pos gg.Vec2, scale float64) {
	bb := g.Bounds()
	cx := (pos.X + bb.Center.X) * scale
	cy := (pos.Y + bb.Center.Y) * scale
	hw := bb.HalfW * scale
	hh := bb.HalfH * scale
	x0, y0 := int(cx-hw), int(cy-hh)
	x1, y1 := int(cx+hw), int(cy+hh)
	m.canvas.Line(x0, y0, x1, y0)
	m.canvas.Line(x1, y0, x1, y1)
	m.canvas.Line(x1, y1, x0, y1)
	m.canvas.Line(x0, y1, x0, y0)
}

func runTUI(m tuiModel) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
