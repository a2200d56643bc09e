package sim

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/trimesh/internal/delaunay"
	"github.com/san-kum/trimesh/internal/motion"
)

// MaxFrames caps the discrete steps a single Tick may run. Whole steps of
// lag left over after the cap are dropped, not carried into the next call.
const MaxFrames = 10

// Observer is notified after every discrete step. The slices are owned by
// the simulation and must not be retained past the call.
type Observer interface {
	OnStep(step int, t float64, points []motion.Point, triangles []delaunay.Triangle)
}

type Option func(*Simulation)

// WithRand injects the random source used for point creation and motion.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) { s.rng = rng }
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithObserver(o Observer) Option {
	return func(s *Simulation) { s.observers = append(s.observers, o) }
}

// Simulation moves a point set on a fixed timestep and re-triangulates it
// after every step. It is not safe for concurrent use.
type Simulation struct {
	domain    motion.Domain
	framerate float64
	settings  motion.Settings
	rng       *rand.Rand

	lastTick    float64
	currentTick float64
	steps       int
	dropped     float64

	points    []motion.Point
	triangles []delaunay.Triangle

	triangulator *delaunay.Triangulator
	verts        []r2.Vec
	observers    []Observer
}

func New(width, height, framerate float64, settings motion.Settings, opts ...Option) *Simulation {
	s := &Simulation{
		domain:       motion.Domain{Width: width, Height: height},
		framerate:    framerate,
		settings:     settings,
		triangulator: delaunay.New(),
		observers:    make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

func (s *Simulation) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// AddPoint appends a moving point. Coordinates outside the domain are
// wrapped on the first update.
func (s *Simulation) AddPoint(x, y float64) {
	s.points = append(s.points, motion.NewPoint(s.rng, x, y, s.settings))
}

// AddStaticPoint appends an anchor that takes part in triangulation but
// never moves.
func (s *Simulation) AddStaticPoint(x, y float64) {
	s.points = append(s.points, motion.NewStaticPoint(s.rng, x, y))
}

// AddCorners anchors the four corners of the domain.
func (s *Simulation) AddCorners() {
	w, h := s.domain.Width, s.domain.Height
	s.AddStaticPoint(0, 0)
	s.AddStaticPoint(w, 0)
	s.AddStaticPoint(w, h)
	s.AddStaticPoint(0, h)
}

// Populate adds n moving points spread uniformly over the domain.
func (s *Simulation) Populate(n int) {
	for i := 0; i < n; i++ {
		s.AddPoint(s.rng.Float64()*s.domain.Width, s.rng.Float64()*s.domain.Height)
	}
}

// Tick consumes realDelta seconds of wall time and runs up to MaxFrames
// fixed steps. It returns the number of steps run and the last
// degenerate-geometry error seen while triangulating, if any. Points and
// triangles are updated regardless of the error.
func (s *Simulation) Tick(realDelta float64) (int, error) {
	s.currentTick += realDelta

	inc := s.FrameIncrement()
	frames := 0
	var lastErr error
	for s.currentTick-s.lastTick >= inc && frames < MaxFrames {
		s.lastTick += inc
		frames++

		if err := s.step(inc); err != nil {
			lastErr = &StepError{Step: s.steps, Time: s.lastTick, Wrapped: err}
		}
	}

	if lag := s.currentTick - s.lastTick; lag >= inc {
		keep := math.Mod(lag, inc)
		s.dropped += lag - keep
		s.currentTick = s.lastTick + keep
	}
	return frames, lastErr
}

func (s *Simulation) step(dt float64) error {
	for i := range s.points {
		s.points[i].Update(s.rng, s.domain, dt, s.settings)
	}
	err := s.triangulate()
	s.steps++

	for _, o := range s.observers {
		o.OnStep(s.steps, s.lastTick, s.points, s.triangles)
	}
	return err
}

func (s *Simulation) triangulate() error {
	s.verts = delaunay.Vertices(s.verts[:0], s.points)
	tris, err := s.triangulator.Triangulate(s.verts)
	s.triangles = tris
	return err
}

// Points returns the live point slice in index order.
func (s *Simulation) Points() []motion.Point { return s.points }

// Triangles returns the triangles of the latest step. They index into
// Points and are replaced by the next step.
func (s *Simulation) Triangles() []delaunay.Triangle { return s.triangles }

func (s *Simulation) Width() float64            { return s.domain.Width }
func (s *Simulation) Height() float64           { return s.domain.Height }
func (s *Simulation) Domain() motion.Domain     { return s.domain }
func (s *Simulation) Framerate() float64        { return s.framerate }
func (s *Simulation) Settings() motion.Settings { return s.settings }
func (s *Simulation) FrameIncrement() float64   { return 1 / s.framerate }

// Steps is the number of discrete steps run since construction.
func (s *Simulation) Steps() int { return s.steps }

// Time is the simulated time, always a whole number of steps.
func (s *Simulation) Time() float64 { return s.lastTick }

// Lag is wall time accumulated but not yet simulated.
func (s *Simulation) Lag() float64 { return s.currentTick - s.lastTick }

// Dropped is the total wall time discarded by the MaxFrames cap.
func (s *Simulation) Dropped() float64 { return s.dropped }
