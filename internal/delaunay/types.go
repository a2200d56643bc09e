package delaunay

// Point is the coordinate accessor the triangulator reads input through.
type Point interface {
	X() float64
	Y() float64
}

// Edge is an unordered pair of point indices.
type Edge struct {
	A, B int
}

// Key returns the edge with its indices sorted, suitable as a map key.
func (e Edge) Key() Edge {
	if e.A > e.B {
		return Edge{A: e.B, B: e.A}
	}
	return e
}

func (e Edge) Equal(o Edge) bool {
	return e.Key() == o.Key()
}

// Triangle is an unordered triple of point indices.
type Triangle struct {
	A, B, C int
}

// TriangleKey is the sorted index triple of a Triangle.
type TriangleKey [3]int

// Key returns the canonical form shared by every rotation and reflection.
func (t Triangle) Key() TriangleKey {
	a, b, c := t.A, t.B, t.C
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return TriangleKey{a, b, c}
}

func (t Triangle) Equal(o Triangle) bool {
	return t.Key() == o.Key()
}

// Edges returns AB, BC and CA in that order.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (t Triangle) Has(i int) bool {
	return t.A == i || t.B == i || t.C == i
}

func (t Triangle) Indices() [3]int {
	return [3]int{t.A, t.B, t.C}
}
