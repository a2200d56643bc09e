package metrics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/trimesh/internal/delaunay"
	"github.com/san-kum/trimesh/internal/geom"
	"github.com/san-kum/trimesh/internal/motion"
)

type TriangleCount struct {
	name  string
	value float64
}

func NewTriangleCount() *TriangleCount {
	return &TriangleCount{name: "triangles"}
}

func (c *TriangleCount) Name() string { return c.name }

func (c *TriangleCount) Observe(points []motion.Point, triangles []delaunay.Triangle) {
	c.value = float64(len(triangles))
}

func (c *TriangleCount) Value() float64 { return c.value }
func (c *TriangleCount) Reset()         { c.value = 0 }

// MeanArea is the mean triangle area of the latest step.
type MeanArea struct {
	name  string
	areas []float64
	value float64
}

func NewMeanArea() *MeanArea {
	return &MeanArea{name: "mean_area"}
}

func (m *MeanArea) Name() string { return m.name }

func (m *MeanArea) Observe(points []motion.Point, triangles []delaunay.Triangle) {
	m.areas = m.areas[:0]
	for _, t := range triangles {
		a, b, c := vertices(points, t)
		m.areas = append(m.areas, geom.Area(a, b, c))
	}
	if len(m.areas) == 0 {
		m.value = 0
		return
	}
	m.value = stat.Mean(m.areas, nil)
}

func (m *MeanArea) Value() float64 { return m.value }

func (m *MeanArea) Reset() {
	m.areas = m.areas[:0]
	m.value = 0
}

// EdgeLengthStdDev is the standard deviation of the lengths of the unique
// edges of the mesh. A uniform mesh scores low.
type EdgeLengthStdDev struct {
	name    string
	seen    map[delaunay.Edge]struct{}
	lengths []float64
	value   float64
}

func NewEdgeLengthStdDev() *EdgeLengthStdDev {
	return &EdgeLengthStdDev{
		name: "edge_stddev",
		seen: make(map[delaunay.Edge]struct{}),
	}
}

func (e *EdgeLengthStdDev) Name() string { return e.name }

func (e *EdgeLengthStdDev) Observe(points []motion.Point, triangles []delaunay.Triangle) {
	clear(e.seen)
	e.lengths = e.lengths[:0]
	for _, t := range triangles {
		for _, edge := range t.Edges() {
			k := edge.Key()
			if _, ok := e.seen[k]; ok {
				continue
			}
			e.seen[k] = struct{}{}
			e.lengths = append(e.lengths, r2.Norm(r2.Sub(points[k.B].Position, points[k.A].Position)))
		}
	}
	if len(e.lengths) < 2 {
		e.value = 0
		return
	}
	e.value = stat.StdDev(e.lengths, nil)
}

func (e *EdgeLengthStdDev) Value() float64 { return e.value }

func (e *EdgeLengthStdDev) Reset() {
	clear(e.seen)
	e.lengths = e.lengths[:0]
	e.value = 0
}

// MinAngle is the smallest interior angle in the mesh, in degrees.
// Slivers drive it towards zero.
type MinAngle struct {
	name  string
	value float64
}

func NewMinAngle() *MinAngle {
	return &MinAngle{name: "min_angle"}
}

func (m *MinAngle) Name() string { return m.name }

func (m *MinAngle) Observe(points []motion.Point, triangles []delaunay.Triangle) {
	if len(triangles) == 0 {
		m.value = 0
		return
	}
	worst := math.Inf(1)
	for _, t := range triangles {
		a, b, c := vertices(points, t)
		x, y, z := geom.Angles(a, b, c)
		worst = math.Min(worst, math.Min(x, math.Min(y, z)))
	}
	m.value = worst * 180 / math.Pi
}

func (m *MinAngle) Value() float64 { return m.value }
func (m *MinAngle) Reset()         { m.value = 0 }

func vertices(points []motion.Point, t delaunay.Triangle) (r2.Vec, r2.Vec, r2.Vec) {
	return points[t.A].Position, points[t.B].Position, points[t.C].Position
}
