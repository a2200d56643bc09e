package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/trimesh/internal/metrics"
	"github.com/san-kum/trimesh/internal/sim"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColEdge    = rl.NewColor(255, 255, 255, 50)
	ColPoint   = rl.NewColor(255, 255, 255, 255)
	ColAnchor  = rl.NewColor(255, 80, 80, 255)
)

const (
	pointRadius = 2.0
	hudHeight   = 40
)

// Builder constructs a fresh, populated simulation for a seed.
type Builder func(seed int64) *sim.Simulation

type App struct {
	Build      Builder
	Seed       int64
	Sim        *sim.Simulation
	Recorder   *metrics.Recorder
	Title      string
	Running    bool
	ShowEdges  bool
	Degenerate int
	Font       rl.Font
	View       Viewport
}

// initWindow opens a window sized to the domain plus the HUD strip. ESC
// stays bound as the exit key.
func initWindow(w, h int32, title string) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(w, h+hudHeight, title)
	rl.SetTargetFPS(60)
}

func NewApp(build Builder, seed int64, title string) *App {
	a := &App{
		Build:     build,
		Seed:      seed,
		Recorder:  metrics.NewRecorder(400),
		Title:     title,
		Running:   true,
		ShowEdges: true,
	}
	a.restart()
	return a
}

// Run opens a window for the simulation produced by build and blocks until
// it is closed.
func Run(build Builder, seed int64, title string) {
	app := NewApp(build, seed, title)
	initWindow(int32(app.Sim.Width()), int32(app.Sim.Height()), title)
	defer rl.CloseWindow()
	app.Font = rl.GetFontDefault()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) restart() {
	a.Recorder.Reset()
	a.Sim = a.Build(a.Seed)
	a.Sim.AddObserver(a.Recorder)
	a.Degenerate = 0
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Seed = time.Now().UnixNano()
		a.restart()
	}
	if rl.IsKeyPressed(rl.KeyE) {
		a.ShowEdges = !a.ShowEdges
	}

	a.View = Fit(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()-hudHeight), a.Sim.Width(), a.Sim.Height())

	if a.Running {
		a.Advance(float64(rl.GetFrameTime()))
	}
}

// Advance feeds dt seconds of wall time into the simulation.
func (a *App) Advance(dt float64) {
	if _, err := a.Sim.Tick(dt); err != nil {
		a.Degenerate++
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawMesh()
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	y := int(a.View.Offset.Y+a.View.Height) + 12
	a.drawText(a.Title, 10, y, 16, ColSelect)

	churn, _ := a.Recorder.Latest("churn")
	a.drawText(fmt.Sprintf("step %d  t %.2fs  pts %d  tris %d  churn %.1f%%  degenerate %d",
		a.Sim.Steps(), a.Sim.Time(), len(a.Sim.Points()), len(a.Sim.Triangles()), churn*100, a.Degenerate),
		120, y, 14, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, int(a.View.Offset.X+a.View.Width)-80, y, 14, col)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 10, 10, 14, ColTextDim)
	a.drawText("[SPACE] PAUSE  [R] RESEED  [E] EDGES  [ESC] QUIT", 10, 28, 12, ColTextDim)

	a.DrawTelemetry()
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) DrawTelemetry() {
	series := a.Recorder.Series("triangles")
	if len(series) < 2 {
		return
	}

	rectX, rectY := a.View.Offset.X+a.View.Width-230, a.View.Offset.Y+10
	rl.DrawLineStrip(Telemetry(series, rectX, rectY, 220, 40), ColAccent)
	a.drawText(fmt.Sprintf("tris %.0f", series[len(series)-1]), int(rectX), int(rectY+44), 12, ColText)
}
