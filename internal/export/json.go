package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/san-kum/trimesh/internal/delaunay"
)

type FramePoint struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Size   float64 `json:"size"`
	Static bool    `json:"static,omitempty"`
}

// Frame is a self-contained snapshot of one simulation step.
type Frame struct {
	Time      float64      `json:"time"`
	Step      int          `json:"step"`
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	Points    []FramePoint `json:"points"`
	Triangles [][3]int     `json:"triangles"`
}

func NewFrame(m Mesh) Frame {
	pts := m.Points()
	tris := m.Triangles()
	f := Frame{
		Time:      m.Time(),
		Step:      m.Steps(),
		Width:     m.Width(),
		Height:    m.Height(),
		Points:    make([]FramePoint, len(pts)),
		Triangles: make([][3]int, len(tris)),
	}
	for i, p := range pts {
		f.Points[i] = FramePoint{X: p.Position.X, Y: p.Position.Y, Size: p.Size, Static: p.IsStatic()}
	}
	for i, t := range tris {
		f.Triangles[i] = t.Indices()
	}
	return f
}

// Triangle returns triangle i of the frame.
func (f Frame) Triangle(i int) delaunay.Triangle {
	t := f.Triangles[i]
	return delaunay.Triangle{A: t[0], B: t[1], C: t[2]}
}

func WriteJSON(w io.Writer, f Frame) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(f)
}

func ReadJSON(r io.Reader) (Frame, error) {
	var f Frame
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return Frame{}, fmt.Errorf("decode frame: %w", err)
	}
	for i, t := range f.Triangles {
		for _, idx := range t {
			if idx < 0 || idx >= len(f.Points) {
				return Frame{}, fmt.Errorf("triangle %d references point %d of %d", i, idx, len(f.Points))
			}
		}
	}
	return f, nil
}

func SaveJSON(path string, m Mesh) error {
	return writeFile(path, func(w io.Writer) error { return WriteJSON(w, NewFrame(m)) })
}
