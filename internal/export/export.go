// Package export writes mesh snapshots to SVG and JSON.
package export

import (
	"io"
	"os"

	"github.com/san-kum/trimesh/internal/delaunay"
	"github.com/san-kum/trimesh/internal/motion"
)

// Mesh is the read-only view of a simulation that snapshots are taken
// from. *sim.Simulation satisfies it.
type Mesh interface {
	Points() []motion.Point
	Triangles() []delaunay.Triangle
	Width() float64
	Height() float64
	Steps() int
	Time() float64
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
