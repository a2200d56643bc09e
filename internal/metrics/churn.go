package metrics

import (
	"github.com/san-kum/trimesh/internal/delaunay"
	"github.com/san-kum/trimesh/internal/motion"
)

// Churn is the fraction of the current triangles that did not exist in the
// previous step. The first observation scores zero.
type Churn struct {
	name   string
	prev   map[delaunay.TriangleKey]struct{}
	curr   map[delaunay.TriangleKey]struct{}
	primed bool
	value  float64
}

func NewChurn() *Churn {
	return &Churn{
		name: "churn",
		prev: make(map[delaunay.TriangleKey]struct{}),
		curr: make(map[delaunay.TriangleKey]struct{}),
	}
}

func (c *Churn) Name() string { return c.name }

func (c *Churn) Observe(points []motion.Point, triangles []delaunay.Triangle) {
	clear(c.curr)
	fresh := 0
	for _, t := range triangles {
		k := t.Key()
		c.curr[k] = struct{}{}
		if _, ok := c.prev[k]; !ok {
			fresh++
		}
	}

	switch {
	case !c.primed:
		c.value = 0
	case len(triangles) == 0:
		c.value = 0
	default:
		c.value = float64(fresh) / float64(len(triangles))
	}

	c.prev, c.curr = c.curr, c.prev
	c.primed = true
}

func (c *Churn) Value() float64 { return c.value }

func (c *Churn) Reset() {
	clear(c.prev)
	clear(c.curr)
	c.primed = false
	c.value = 0
}
