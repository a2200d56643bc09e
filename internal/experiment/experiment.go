// Package experiment runs a configured simulation headless for a fixed
// span of simulated time while recording metrics.
package experiment

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/trimesh/internal/config"
	"github.com/san-kum/trimesh/internal/delaunay"
	"github.com/san-kum/trimesh/internal/metrics"
	"github.com/san-kum/trimesh/internal/sim"
)

var ErrDuration = errors.New("experiment: duration must be positive")

type Result struct {
	Sim        *sim.Simulation
	Recorder   *metrics.Recorder
	Steps      int
	Time       float64
	Degenerate int
	LastErr    error
}

type Experiment struct {
	cfg      *config.Config
	duration float64
	history  int
	metrics  []metrics.Metric
}

// New prepares a run of duration simulated seconds. History 0 keeps every
// step.
func New(cfg *config.Config, duration float64, history int) *Experiment {
	return &Experiment{cfg: cfg, duration: duration, history: history}
}

// WithMetrics replaces the default metric set.
func (e *Experiment) WithMetrics(m ...metrics.Metric) *Experiment {
	e.metrics = m
	return e
}

// Run steps the simulation one frame increment at a time until the
// duration has elapsed or ctx is done.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.duration <= 0 {
		return nil, fmt.Errorf("%w, got %g", ErrDuration, e.duration)
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	history := e.history
	if history <= 0 {
		history = int(e.duration*e.cfg.Framerate) + 2
	}
	rec := metrics.NewRecorder(history, e.metrics...)
	s := e.cfg.NewSimulation(sim.WithObserver(rec))

	res := &Result{Sim: s, Recorder: rec}
	inc := s.FrameIncrement()
	for s.Time()+inc/2 < e.duration {
		select {
		case <-ctx.Done():
			res.Steps, res.Time = s.Steps(), s.Time()
			return res, ctx.Err()
		default:
		}

		if _, err := s.Tick(inc); err != nil {
			res.LastErr = err
			if errors.Is(err, delaunay.ErrDegenerate) {
				res.Degenerate++
			}
		}
	}

	res.Steps, res.Time = s.Steps(), s.Time()
	return res, nil
}
