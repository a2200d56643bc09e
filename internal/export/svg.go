package export

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

type SVGOptions struct {
	Scale       float64
	Background  string
	EdgeStyle   string
	PointStyle  string
	StaticStyle string
	PointRadius float64 // multiplied by each point's Size
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Scale:       1,
		Background:  "fill:rgb(10,10,10)",
		EdgeStyle:   "stroke:rgb(255,255,255);stroke-opacity:0.25;stroke-width:1",
		PointStyle:  "fill:rgb(255,255,255)",
		StaticStyle: "fill:rgb(255,80,80)",
		PointRadius: 2,
	}
}

// WriteSVG renders the current triangles as lines and the points as
// circles sized by Point.Size.
func WriteSVG(w io.Writer, m Mesh, opts SVGOptions) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	s := opts.Scale
	px := func(v float64) int { return int(math.Round(v * s)) }

	width, height := px(m.Width()), px(m.Height())
	points := m.Points()

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, opts.Background)

	canvas.Gstyle(opts.EdgeStyle)
	for _, t := range m.Triangles() {
		for _, e := range t.Edges() {
			a, b := points[e.A].Position, points[e.B].Position
			canvas.Line(px(a.X), px(a.Y), px(b.X), px(b.Y))
		}
	}
	canvas.Gend()

	for _, p := range points {
		style := opts.PointStyle
		if p.IsStatic() {
			style = opts.StaticStyle
		}
		r := max(1, px(p.Size*opts.PointRadius))
		canvas.Circle(px(p.Position.X), px(p.Position.Y), r, style)
	}
	canvas.End()
	return nil
}

func SaveSVG(path string, m Mesh, opts SVGOptions) error {
	return writeFile(path, func(w io.Writer) error { return WriteSVG(w, m, opts) })
}
