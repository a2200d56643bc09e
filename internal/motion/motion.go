// Package motion implements the kinematics of the simulated points:
// constant speed along a heading that is re-sampled on a timer, with
// toroidal wrap-around at the domain edges.
package motion

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// VariedValue is a mean with a symmetric uniform spread.
type VariedValue struct {
	Mean     float64 `yaml:"mean" toml:"mean"`
	Variance float64 `yaml:"variance" toml:"variance"`
}

// Sample returns Mean + Variance*(U-0.5) with U uniform in [0, 1).
func (v VariedValue) Sample(rng *rand.Rand) float64 {
	return v.Mean + v.Variance*(rng.Float64()-0.5)
}

// Settings parameterize point speed and retarget interval.
type Settings struct {
	Speed    VariedValue
	Retarget VariedValue
}

// NewSettings performs no validation; negative values produce unusual but
// accepted behaviour.
func NewSettings(speed, speedVariance, retarget, retargetVariance float64) Settings {
	return Settings{
		Speed:    VariedValue{Mean: speed, Variance: speedVariance},
		Retarget: VariedValue{Mean: retarget, Variance: retargetVariance},
	}
}

// Domain is the toroidal area points move in.
type Domain struct {
	Width, Height float64
}

// Wrap folds p back into the domain, at most once per axis.
func (d Domain) Wrap(p r2.Vec) r2.Vec {
	if p.X < 0 {
		p.X += d.Width
	} else if p.X > d.Width {
		p.X -= d.Width
	}
	if p.Y < 0 {
		p.Y += d.Height
	} else if p.Y > d.Height {
		p.Y -= d.Height
	}
	return p
}

// Point is a single simulated particle.
type Point struct {
	Position r2.Vec
	Size     float64
	Speed    float64
	Heading  r2.Vec
	Retarget float64 // seconds until the heading is re-sampled
}

// NewPoint returns a moving point at (x, y).
func NewPoint(rng *rand.Rand, x, y float64, s Settings) Point {
	return Point{
		Position: r2.Vec{X: x, Y: y},
		Size:     RandomSize(rng),
		Speed:    s.Speed.Sample(rng),
		Retarget: s.Retarget.Sample(rng),
		Heading:  RandomHeading(rng),
	}
}

// NewStaticPoint returns an anchor that never moves or retargets.
func NewStaticPoint(rng *rand.Rand, x, y float64) Point {
	return Point{
		Position: r2.Vec{X: x, Y: y},
		Size:     RandomSize(rng),
		Retarget: math.MaxFloat64,
	}
}

func (p Point) X() float64 { return p.Position.X }
func (p Point) Y() float64 { return p.Position.Y }

func (p Point) IsStatic() bool {
	return p.Speed == 0 && p.Retarget == math.MaxFloat64
}

// Update advances p by dt seconds inside d.
func (p *Point) Update(rng *rand.Rand, d Domain, dt float64, s Settings) {
	step := p.Speed * dt
	p.Position.X += p.Heading.X * step
	p.Position.Y += p.Heading.Y * step
	p.Position = d.Wrap(p.Position)

	p.Retarget -= dt
	if p.Retarget <= 0 {
		p.Heading = RandomHeading(rng)
		p.Retarget = s.Retarget.Sample(rng)
	}
}

// RandomHeading draws a unit heading with angle in [π/4, 3π/4) and a
// negated y component, so every heading has Y < 0. The range is restricted
// on purpose; do not widen it to a full circle.
func RandomHeading(rng *rand.Rand) r2.Vec {
	angle := rng.Float64()*math.Pi*0.5 + math.Pi*0.25
	return r2.Vec{X: math.Cos(angle), Y: math.Sin(-angle)}
}

// RandomSize returns a render radius in [0.5, 1.5).
func RandomSize(rng *rand.Rand) float64 {
	return rng.Float64() + 0.5
}
