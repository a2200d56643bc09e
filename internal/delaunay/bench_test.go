package delaunay

import "testing"

func benchmarkTriangulate(b *testing.B, n int) {
	verts := Vertices(nil, randomPoints(42, n))
	tr := New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Triangulate(verts)
	}
}

func BenchmarkTriangulate50(b *testing.B)  { benchmarkTriangulate(b, 50) }
func BenchmarkTriangulate200(b *testing.B) { benchmarkTriangulate(b, 200) }
func BenchmarkTriangulate500(b *testing.B) { benchmarkTriangulate(b, 500) }
