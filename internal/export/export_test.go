package export

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/trimesh/internal/delaunay"
	"github.com/san-kum/trimesh/internal/motion"
)

type fakeMesh struct {
	points    []motion.Point
	triangles []delaunay.Triangle
}

func (m *fakeMesh) Points() []motion.Point         { return m.points }
func (m *fakeMesh) Triangles() []delaunay.Triangle { return m.triangles }
func (m *fakeMesh) Width() float64                 { return 100 }
func (m *fakeMesh) Height() float64                { return 50 }
func (m *fakeMesh) Steps() int                     { return 7 }
func (m *fakeMesh) Time() float64                  { return 0.25 }

func newFakeMesh() *fakeMesh {
	return &fakeMesh{
		points: []motion.Point{
			{Position: r2.Vec{X: 0, Y: 0}, Size: 1, Retarget: math.MaxFloat64},
			{Position: r2.Vec{X: 100, Y: 0}, Size: 1.2, Speed: 10, Retarget: 1},
			{Position: r2.Vec{X: 100, Y: 50}, Size: 0.7, Speed: 10, Retarget: 1},
			{Position: r2.Vec{X: 0, Y: 50}, Size: 1.4, Speed: 10, Retarget: 1},
		},
		triangles: []delaunay.Triangle{{A: 3, B: 2, C: 0}, {A: 2, B: 1, C: 0}},
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultSVGOptions()
	opts.Scale = 2

	if err := WriteSVG(&buf, newFakeMesh(), opts); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `width="200"`) || !strings.Contains(out, `height="100"`) {
		t.Errorf("expected scaled 200x100 canvas")
	}
	if n := strings.Count(out, "<line"); n != 6 {
		t.Errorf("expected 6 edge lines, got %d", n)
	}
	if n := strings.Count(out, "<circle"); n != 4 {
		t.Errorf("expected 4 circles, got %d", n)
	}
	if !strings.Contains(out, opts.StaticStyle) {
		t.Error("expected static point style")
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("expected closed svg document")
	}
}

func TestFrameJSON(t *testing.T) {
	f := NewFrame(newFakeMesh())
	if f.Step != 7 || f.Time != 0.25 {
		t.Errorf("unexpected header: step %d time %f", f.Step, f.Time)
	}
	if !f.Points[0].Static || f.Points[1].Static {
		t.Error("static flags not carried")
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, f); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(got.Points) != 4 || len(got.Triangles) != 2 {
		t.Fatalf("expected 4 points and 2 triangles, got %d and %d", len(got.Points), len(got.Triangles))
	}
	if !got.Triangle(1).Equal(delaunay.Triangle{A: 0, B: 1, C: 2}) {
		t.Errorf("unexpected triangle %v", got.Triangle(1))
	}
}

func TestReadJSON_BadIndex(t *testing.T) {
	doc := `{"points":[{"x":0,"y":0,"size":1}],"triangles":[[0,1,2]]}`
	if _, err := ReadJSON(strings.NewReader(doc)); err == nil {
		t.Error("expected error for out of range triangle index")
	}
}

func TestSaveFiles(t *testing.T) {
	dir := t.TempDir()
	m := newFakeMesh()

	svgPath := filepath.Join(dir, "mesh.svg")
	if err := SaveSVG(svgPath, m, DefaultSVGOptions()); err != nil {
		t.Fatalf("save svg failed: %v", err)
	}
	jsonPath := filepath.Join(dir, "mesh.json")
	if err := SaveJSON(jsonPath, m); err != nil {
		t.Fatalf("save json failed: %v", err)
	}

	for _, path := range []string{svgPath, jsonPath} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}
