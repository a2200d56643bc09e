package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Viewport maps domain coordinates to screen pixels with a uniform scale.
type Viewport struct {
	Offset        rl.Vector2
	Scale         float32
	Width, Height float32
}

// Fit centres a domain of size dw x dh in a screen area of sw x sh.
func Fit(sw, sh float32, dw, dh float64) Viewport {
	if dw <= 0 || dh <= 0 {
		return Viewport{Scale: 1}
	}
	scale := float32(math.Min(float64(sw)/dw, float64(sh)/dh))
	w, h := float32(dw)*scale, float32(dh)*scale
	return Viewport{
		Offset: rl.NewVector2((sw-w)/2, (sh-h)/2),
		Scale:  scale,
		Width:  w,
		Height: h,
	}
}

func (v Viewport) Project(x, y float64) rl.Vector2 {
	return rl.NewVector2(v.Offset.X+float32(x)*v.Scale, v.Offset.Y+float32(y)*v.Scale)
}

func (a *App) drawMesh() {
	points := a.Sim.Points()

	if a.ShowEdges {
		for _, t := range a.Sim.Triangles() {
			for _, e := range t.Edges() {
				p, q := points[e.A].Position, points[e.B].Position
				rl.DrawLineV(a.View.Project(p.X, p.Y), a.View.Project(q.X, q.Y), ColEdge)
			}
		}
	}

	for _, p := range points {
		col := ColPoint
		if p.IsStatic() {
			col = ColAnchor
		}
		r := float32(p.Size*pointRadius) * a.View.Scale
		rl.DrawCircleV(a.View.Project(p.Position.X, p.Position.Y), max(r, 1), col)
	}
}

// Telemetry lays a series out as a line strip inside the given rectangle,
// normalised to its own range.
func Telemetry(series []float64, x, y, w, h float32) []rl.Vector2 {
	lo, hi := series[0], series[0]
	for _, v := range series {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}

	out := make([]rl.Vector2, len(series))
	for i, v := range series {
		px := x + float32(i)/float32(len(series)-1)*w
		norm := (v - lo) / (hi - lo)
		out[i] = rl.NewVector2(px, y+h-float32(norm)*h)
	}
	return out
}
