package sim_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/trimesh/internal/delaunay"
	"github.com/san-kum/trimesh/internal/motion"
	"github.com/san-kum/trimesh/internal/sim"
)

var _ = Describe("Simulation", func() {
	var s *sim.Simulation

	BeforeEach(func() {
		s = sim.New(800, 600, 60, motion.NewSettings(50, 0.2, 5, 0.5), sim.WithRand(rand.New(rand.NewSource(11))))
	})

	Context("with corner anchors and random movers", func() {
		BeforeEach(func() {
			s.AddCorners()
			s.Populate(60)
		})

		It("only emits triangles over real point indices", func() {
			_, err := s.Tick(1.0 / 60)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Triangles()).NotTo(BeEmpty())

			n := len(s.Points())
			for _, tri := range s.Triangles() {
				for _, i := range tri.Indices() {
					Expect(i).To(BeNumerically(">=", 0))
					Expect(i).To(BeNumerically("<", n))
				}
				Expect(tri.A).NotTo(Equal(tri.B))
				Expect(tri.B).NotTo(Equal(tri.C))
				Expect(tri.A).NotTo(Equal(tri.C))
			}
		})

		It("rebuilds the same mesh for an unchanged point set", func() {
			s.Tick(1.0 / 60)

			again, err := delaunay.Triangulate(s.Points())
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(Equal(s.Triangles()))
		})

		It("keeps anchors in place", func() {
			for i := 0; i < 120; i++ {
				s.Tick(1.0 / 60)
			}
			pts := s.Points()
			Expect(pts[0].Position).To(Equal(r2.Vec{X: 0, Y: 0}))
			Expect(pts[1].Position).To(Equal(r2.Vec{X: 800, Y: 0}))
			Expect(pts[2].Position).To(Equal(r2.Vec{X: 800, Y: 600}))
			Expect(pts[3].Position).To(Equal(r2.Vec{X: 0, Y: 600}))
		})
	})

	Context("when a frame stalls", func() {
		It("caps catch-up at MaxFrames and drops the rest", func() {
			s.Populate(10)

			n, _ := s.Tick(2.5)
			Expect(n).To(Equal(sim.MaxFrames))
			Expect(s.Dropped()).To(BeNumerically("~", 2.5-float64(sim.MaxFrames)/60, 1.0/60))

			n, _ = s.Tick(1.0 / 60)
			Expect(n).To(Equal(1))
		})
	})

	Context("with a moving point at the right edge", func() {
		It("wraps it to the left edge", func() {
			s.AddPoint(799.9, 300)
			p := &s.Points()[0]
			p.Heading = r2.Vec{X: 1, Y: 0}
			p.Speed = 60
			p.Retarget = 100

			s.Tick(1.0 / 60)
			Expect(s.Points()[0].Position.X).To(BeNumerically("~", 799.9+1-800, 1e-9))
			Expect(s.Points()[0].Position.Y).To(Equal(300.0))
			Expect(s.Points()[0].Heading).To(Equal(r2.Vec{X: 1, Y: 0}))
		})
	})
})
