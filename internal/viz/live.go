package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/trimesh/internal/metrics"
	"github.com/san-kum/trimesh/internal/sim"
)

const (
	width  = 80
	height = 24

	minSpeed = 0.125
	maxSpeed = 8
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Builder constructs a fresh, populated simulation for a seed.
type Builder func(seed int64) *sim.Simulation

// Model drives a simulation from wall-clock ticks and draws it.
type Model struct {
	build      Builder
	seed       int64
	sim        *sim.Simulation
	recorder   *metrics.Recorder
	canvas     *Canvas
	fps        int
	speed      float64
	running    bool
	edges      bool
	lastTick   time.Time
	degenerate int
	lastErr    error
	title      string
}

func NewModel(build Builder, seed int64, fps int, title string) Model {
	if fps <= 0 {
		fps = 30
	}
	m := Model{
		build:    build,
		seed:     seed,
		recorder: metrics.NewRecorder(metrics.DefaultHistory),
		canvas:   NewCanvas(width, height),
		fps:      fps,
		speed:    1,
		running:  true,
		edges:    true,
		title:    title,
	}
	m.restart()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			m.lastTick = time.Time{}
		case "r":
			m.seed = time.Now().UnixNano()
			m.restart()
		case "+", "=":
			m.speed = min(m.speed*2, maxSpeed)
		case "-", "_":
			m.speed = max(m.speed/2, minSpeed)
		case "e":
			m.edges = !m.edges
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		}
	case TickMsg:
		now := time.Time(msg)
		if m.running {
			m.advance(now)
		}
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

// advance feeds the wall time since the previous tick, scaled by the
// playback speed, into the simulation.
func (m *Model) advance(now time.Time) {
	if !m.lastTick.IsZero() {
		elapsed := now.Sub(m.lastTick).Seconds() * m.speed
		if _, err := m.sim.Tick(elapsed); err != nil {
			m.degenerate++
			m.lastErr = err
		}
	}
	m.lastTick = now
}

func (m *Model) restart() {
	m.recorder.Reset()
	m.sim = m.build(m.seed)
	m.sim.AddObserver(m.recorder)
	m.lastTick = time.Time{}
	m.degenerate = 0
	m.lastErr = nil
	m.draw()
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.canvas.DrawMesh(m.sim.Points(), m.sim.Triangles(), m.sim.Width(), m.sim.Height(), m.edges)
}

func (m Model) Simulation() *sim.Simulation { return m.sim }
func (m Model) Recorder() *metrics.Recorder { return m.recorder }
func (m Model) Speed() float64              { return m.speed }
func (m Model) Running() bool               { return m.running }
func (m Model) Seed() int64                 { return m.seed }
func (m Model) Degenerate() int             { return m.degenerate }

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(GradientText(strings.ToUpper(m.title), CurrentTheme.Primary, CurrentTheme.Secondary) + "\n\n")
	if m.running {
		s.WriteString(StatusRunning.Render(fmt.Sprintf("RUNNING x%g", m.speed)) + "\n\n")
	} else {
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	if counts := m.recorder.Series("triangles"); len(counts) > 1 {
		chart := asciigraph.Plot(counts, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Triangles"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	churn, _ := m.recorder.Latest("churn")
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Step", fmt.Sprintf("%d", m.sim.Steps()))
	row("Time", fmt.Sprintf("%.2fs", m.sim.Time()))
	row("Points", fmt.Sprintf("%d", len(m.sim.Points())))
	row("Triangles", fmt.Sprintf("%d", len(m.sim.Triangles())))
	row("Churn", fmt.Sprintf("%.1f%%", churn*100))
	row("Degenerate", fmt.Sprintf("%d", m.degenerate))
	row("Seed", fmt.Sprintf("%d", m.seed))
	s.WriteString(labelStyle.Render("") + SparklineChart(m.recorder.Series("churn"), 30) + "\n")
	if m.lastErr != nil {
		s.WriteString("\n" + SparkLow.Render(truncate(m.lastErr.Error(), 40)) + "\n")
	}

	s.WriteString(helpStyle.Render("\n" + Separator(24) + "\nSP:Pause R:Reseed Q:Quit\n+/-:Speed E:Edges T:Theme"))
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
