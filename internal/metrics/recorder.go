package metrics

import (
	"github.com/san-kum/trimesh/internal/delaunay"
	"github.com/san-kum/trimesh/internal/motion"
)

// DefaultHistory is the number of samples a Recorder keeps per metric.
const DefaultHistory = 512

// Recorder feeds every step to its metrics and keeps a bounded history of
// their values. It satisfies sim.Observer.
type Recorder struct {
	metrics []Metric
	size    int
	history map[string]*ring
	times   *ring
	last    int
}

func NewRecorder(size int, metrics ...Metric) *Recorder {
	if size <= 0 {
		size = DefaultHistory
	}
	if len(metrics) == 0 {
		metrics = Defaults()
	}
	r := &Recorder{
		metrics: metrics,
		size:    size,
		history: make(map[string]*ring, len(metrics)),
		times:   newRing(size),
	}
	for _, m := range metrics {
		r.history[m.Name()] = newRing(size)
	}
	return r
}

func (r *Recorder) OnStep(step int, t float64, points []motion.Point, triangles []delaunay.Triangle) {
	for _, m := range r.metrics {
		m.Observe(points, triangles)
		r.history[m.Name()].push(m.Value())
	}
	r.times.push(t)
	r.last = step
}

func (r *Recorder) Metrics() []Metric { return r.metrics }

// Step is the step number of the most recent observation.
func (r *Recorder) Step() int { return r.last }

// Latest returns the current value of the named metric.
func (r *Recorder) Latest(name string) (float64, bool) {
	for _, m := range r.metrics {
		if m.Name() == name {
			return m.Value(), true
		}
	}
	return 0, false
}

// Series returns the recorded values of the named metric, oldest first.
func (r *Recorder) Series(name string) []float64 {
	h, ok := r.history[name]
	if !ok {
		return nil
	}
	return h.values()
}

// Times returns the simulated time of each recorded sample, oldest first.
func (r *Recorder) Times() []float64 { return r.times.values() }

func (r *Recorder) Len() int { return r.times.n }

func (r *Recorder) Reset() {
	for _, m := range r.metrics {
		m.Reset()
		r.history[m.Name()].reset()
	}
	r.times.reset()
	r.last = 0
}

type ring struct {
	buf  []float64
	head int
	n    int
}

func newRing(size int) *ring {
	return &ring{buf: make([]float64, size)}
}

func (r *ring) push(v float64) {
	r.buf[r.head] = v
	r.head = (r.head + 1) % len(r.buf)
	if r.n < len(r.buf) {
		r.n++
	}
}

func (r *ring) values() []float64 {
	out := make([]float64, r.n)
	start := (r.head - r.n + len(r.buf)) % len(r.buf)
	for i := 0; i < r.n; i++ {
		out[i] = r.buf[(start+i)%len(r.buf)]
	}
	return out
}

func (r *ring) reset() {
	r.head = 0
	r.n = 0
}
