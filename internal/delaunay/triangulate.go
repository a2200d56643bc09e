package delaunay

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/trimesh/internal/geom"
)

// SuperExtent is the leg length of the bootstrap super-triangle. Inputs are
// expected to lie well inside [0, SuperExtent) on both axes.
const SuperExtent = 2000.0

var superTriangle = [3]r2.Vec{
	{X: SuperExtent, Y: 0},
	{X: 0, Y: 0},
	{X: 0, Y: SuperExtent},
}

// Triangulator keeps scratch buffers between runs. The zero value is ready
// to use. It is not safe for concurrent use.
type Triangulator struct {
	verts   []r2.Vec
	tris    []Triangle
	bad     []Triangle
	badKeys map[TriangleKey]struct{}
	polygon []Edge
	edges   map[Edge]int
}

func New() *Triangulator {
	return &Triangulator{}
}

// Vertices appends the coordinates of points to dst.
func Vertices[P Point](dst []r2.Vec, points []P) []r2.Vec {
	for _, p := range points {
		dst = append(dst, r2.Vec{X: p.X(), Y: p.Y()})
	}
	return dst
}

// Triangulate is a one-shot wrapper around a fresh Triangulator.
func Triangulate[P Point](points []P) ([]Triangle, error) {
	return New().Triangulate(Vertices(nil, points))
}

// Triangulate returns the Delaunay triangles of points as index triples.
// The returned slice is freshly allocated; points is not retained.
func (t *Triangulator) Triangulate(points []r2.Vec) ([]Triangle, error) {
	if t.badKeys == nil {
		t.badKeys = make(map[TriangleKey]struct{})
		t.edges = make(map[Edge]int)
	}

	n := len(points)
	t.verts = append(append(t.verts[:0], points...), superTriangle[:]...)
	t.tris = append(t.tris[:0], Triangle{n, n + 1, n + 2})

	for i := n - 1; i >= 0; i-- {
		t.insert(i)
	}

	out := make([]Triangle, 0, len(t.tris))
	var degenerate []Triangle
	for _, tri := range t.tris {
		if tri.A >= n || tri.B >= n || tri.C >= n {
			continue
		}
		out = append(out, tri)
		if !t.circle(tri).IsFinite() {
			degenerate = append(degenerate, tri)
		}
	}

	if len(degenerate) > 0 {
		return out, &DegenerateError{Triangles: degenerate}
	}
	return out, nil
}

func (t *Triangulator) insert(pi int) {
	p := t.verts[pi]

	t.bad = t.bad[:0]
	for i := len(t.tris) - 1; i >= 0; i-- {
		if t.circle(t.tris[i]).Contains(p) {
			t.bad = append(t.bad, t.tris[i])
		}
	}

	// Boundary edges belong to exactly one bad triangle.
	clear(t.edges)
	for _, tri := range t.bad {
		for _, e := range tri.Edges() {
			t.edges[e.Key()]++
		}
	}
	t.polygon = t.polygon[:0]
	for _, tri := range t.bad {
		for _, e := range tri.Edges() {
			if t.edges[e.Key()] == 1 {
				t.polygon = append(t.polygon, e)
			}
		}
	}

	clear(t.badKeys)
	for _, tri := range t.bad {
		t.badKeys[tri.Key()] = struct{}{}
	}
	kept := t.tris[:0]
	for _, tri := range t.tris {
		if _, ok := t.badKeys[tri.Key()]; !ok {
			kept = append(kept, tri)
		}
	}
	t.tris = kept

	for _, e := range t.polygon {
		t.tris = append(t.tris, Triangle{e.A, e.B, pi})
	}
}

func (t *Triangulator) circle(tri Triangle) geom.Circle {
	return geom.Circumcircle(t.verts[tri.A], t.verts[tri.B], t.verts[tri.C])
}
