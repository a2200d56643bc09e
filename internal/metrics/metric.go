// Package metrics measures mesh quality and stability step by step.
package metrics

import (
	"github.com/san-kum/trimesh/internal/delaunay"
	"github.com/san-kum/trimesh/internal/motion"
)

// Metric observes one triangulated step at a time.
type Metric interface {
	Name() string
	Observe(points []motion.Point, triangles []delaunay.Triangle)
	Value() float64
	Reset()
}

// Defaults returns a fresh instance of every built-in metric.
func Defaults() []Metric {
	return []Metric{
		NewTriangleCount(),
		NewMeanArea(),
		NewEdgeLengthStdDev(),
		NewMinAngle(),
		NewChurn(),
	}
}
