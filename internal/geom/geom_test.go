package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestCircumcircle(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c r2.Vec
		center  r2.Vec
		r2      float64
	}{
		{"right angle", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 0, Y: 100}, r2.Vec{X: 100, Y: 100}, r2.Vec{X: 50, Y: 50}, 5000},
		{"super triangle", r2.Vec{X: 2000, Y: 0}, r2.Vec{X: 0, Y: 0}, r2.Vec{X: 0, Y: 2000}, r2.Vec{X: 1000, Y: 1000}, 2e6},
		{"unit", r2.Vec{X: 1, Y: 0}, r2.Vec{X: 0, Y: 1}, r2.Vec{X: -1, Y: 0}, r2.Vec{X: 0, Y: 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Circumcircle(tt.a, tt.b, tt.c)
			if math.Abs(c.Center.X-tt.center.X) > 1e-9 || math.Abs(c.Center.Y-tt.center.Y) > 1e-9 {
				t.Errorf("center = %v, want %v", c.Center, tt.center)
			}
			if math.Abs(c.R2-tt.r2) > 1e-9 {
				t.Errorf("r2 = %f, want %f", c.R2, tt.r2)
			}
			if !c.IsFinite() {
				t.Error("expected finite circle")
			}
		})
	}
}

func TestCircumcircle_Collinear(t *testing.T) {
	c := Circumcircle(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 1}, r2.Vec{X: 2, Y: 2})
	if c.IsFinite() {
		t.Errorf("collinear circle should not be finite, got %+v", c)
	}

	c = Circumcircle(r2.Vec{X: 3, Y: 4}, r2.Vec{X: 3, Y: 4}, r2.Vec{X: 7, Y: 1})
	if c.IsFinite() {
		t.Errorf("coincident vertices should not be finite, got %+v", c)
	}
	if c.Contains(r2.Vec{X: 3, Y: 4}) {
		t.Error("NaN circle must not contain anything")
	}
}

func TestInCircumcircle_Boundary(t *testing.T) {
	a, b, c := r2.Vec{X: 0, Y: 0}, r2.Vec{X: 0, Y: 100}, r2.Vec{X: 100, Y: 100}

	if !InCircumcircle(r2.Vec{X: 100, Y: 0}, a, b, c) {
		t.Error("co-circular point should count as inside")
	}
	if !InCircumcircle(r2.Vec{X: 50, Y: 50}, a, b, c) {
		t.Error("center should be inside")
	}
	if InCircumcircle(r2.Vec{X: 200, Y: 200}, a, b, c) {
		t.Error("far point should be outside")
	}
}

func TestArea(t *testing.T) {
	a, b, c := r2.Vec{X: 0, Y: 0}, r2.Vec{X: 4, Y: 0}, r2.Vec{X: 0, Y: 3}
	if got := SignedArea(a, b, c); got != 6 {
		t.Errorf("SignedArea = %f, want 6", got)
	}
	if got := SignedArea(a, c, b); got != -6 {
		t.Errorf("SignedArea reversed = %f, want -6", got)
	}
	if got := Area(a, c, b); got != 6 {
		t.Errorf("Area = %f, want 6", got)
	}
}

func TestAngles(t *testing.T) {
	a, b, c := r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 0, Y: 1}
	pa, pb, pc := Angles(a, b, c)
	if math.Abs(pa-math.Pi/2) > 1e-12 {
		t.Errorf("angle at a = %f, want pi/2", pa)
	}
	if math.Abs(pa+pb+pc-math.Pi) > 1e-12 {
		t.Errorf("angles sum to %f", pa+pb+pc)
	}
}
