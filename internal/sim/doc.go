// Package sim drives the point mesh: a fixed-timestep accumulator that
// moves every point and then rebuilds the Delaunay triangulation from
// scratch.
//
//   - [Simulation]: owns points, triangles and the accumulator
//   - [Observer]: per-step callback, used by metrics and recorders
//   - [StepError]: degenerate triangulation reported by [Simulation.Tick]
//
// # Example
//
//	s := sim.New(1080, 720, 60, motion.NewSettings(50, 0.2, 5, 0.5), sim.WithSeed(1))
//	s.Populate(500)
//	for running {
//	    s.Tick(frameSeconds)
//	    draw(s.Points(), s.Triangles())
//	}
//
// # Thread Safety
//
// Simulation instances are NOT thread-safe. A Simulation is owned and
// driven by a single goroutine.
package sim
