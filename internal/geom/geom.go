// Package geom holds the planar predicates used by the triangulator.
//
// Every function is pure. Degenerate input (collinear or coincident
// vertices) is not guarded: the resulting [Circle] carries NaN or Inf
// components, which callers can detect with [Circle.IsFinite].
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Circle is a circumscribed circle. R2 is the squared radius.
type Circle struct {
	Center r2.Vec
	R2     float64
}

// Circumcircle returns the circle through a, b and c using the closed-form
// determinant solution. The radius is measured from a.
func Circumcircle(a, b, c r2.Vec) Circle {
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y

	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	x := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	y := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d

	dx, dy := x-a.X, y-a.Y
	return Circle{Center: r2.Vec{X: x, Y: y}, R2: dx*dx + dy*dy}
}

// Contains reports whether q lies inside the circle or on its boundary.
func (c Circle) Contains(q r2.Vec) bool {
	dx := c.Center.X - q.X
	dy := c.Center.Y - q.Y
	return dx*dx+dy*dy <= c.R2
}

// IsFinite reports whether the circle is well defined.
func (c Circle) IsFinite() bool {
	for _, v := range [...]float64{c.Center.X, c.Center.Y, c.R2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// InCircumcircle reports whether q lies inside or on the circumcircle of a, b, c.
func InCircumcircle(q, a, b, c r2.Vec) bool {
	return Circumcircle(a, b, c).Contains(q)
}

// SignedArea is positive when a, b, c wind counter-clockwise.
func SignedArea(a, b, c r2.Vec) float64 {
	return 0.5 * ((b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X))
}

func Area(a, b, c r2.Vec) float64 {
	return math.Abs(SignedArea(a, b, c))
}

// Angles returns the interior angles at a, b and c in radians.
func Angles(a, b, c r2.Vec) (float64, float64, float64) {
	return angleAt(a, b, c), angleAt(b, c, a), angleAt(c, a, b)
}

func angleAt(p, q, r r2.Vec) float64 {
	u, v := r2.Sub(q, p), r2.Sub(r, p)
	nu, nv := r2.Norm(u), r2.Norm(v)
	if nu == 0 || nv == 0 {
		return 0
	}
	cos := r2.Dot(u, v) / (nu * nv)
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}
