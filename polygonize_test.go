package siafu

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func constant(v float64) Sampler {
	return func(x, y, z int) float64 { return v }
}

func TestPolygonizeEmptyVolume(t *testing.T) {
	var vertices []Vertex
	var triangles []Triangle
	Polygonize(0.5, constant(0), 4, 4, 4, &vertices, &triangles)
	if len(vertices) != 0 || len(triangles) != 0 {
		t.Fatalf("got %d vertices, %d triangles, want 0, 0", len(vertices), len(triangles))
	}
}

func TestPolygonizeFullVolume(t *testing.T) {
	var vertices []Vertex
	var triangles []Triangle
	Polygonize(0.5, constant(1), 4, 4, 4, &vertices, &triangles)
	if len(vertices) != 0 || len(triangles) != 0 {
		t.Fatalf("got %d vertices, %d triangles, want 0, 0", len(vertices), len(triangles))
	}
}

func TestPolygonizeZeroDimension(t *testing.T) {
	var vertices []Vertex
	var triangles []Triangle
	Polygonize(0.5, constant(1), 0, 4, 4, &vertices, &triangles)
	if len(vertices) != 0 || len(triangles) != 0 {
		t.Fatalf("zero-width volume: got %d vertices, %d triangles", len(vertices), len(triangles))
	}
}

func checkInvariants(t *testing.T, vertices []Vertex, triangles []Triangle) {
	t.Helper()
	for i, tr := range triangles {
		for _, idx := range []uint32{tr.A, tr.B, tr.C} {
			if int(idx) >= len(vertices) {
				t.Fatalf("triangle %d: index %d out of range [0,%d)", i, idx, len(vertices))
			}
		}
		if tr.A == tr.B || tr.A == tr.C || tr.B == tr.C {
			t.Fatalf("triangle %d is degenerate: %+v", i, tr)
		}
	}
	for i, v := range vertices {
		l := math.Sqrt(v.N.X*v.N.X + v.N.Y*v.N.Y + v.N.Z*v.N.Z)
		if l != 0 && math.Abs(l-1) >= 1e-5 {
			t.Fatalf("vertex %d normal has length %v, want 0 or ~1", i, l)
		}
	}
}

func TestPolygonizeHalfSpace(t *testing.T) {
	sample := func(x, y, z int) float64 { return float64(x) }
	const w, h, d = 4, 4, 4
	var vertices []Vertex
	var triangles []Triangle
	Polygonize(1.5, sample, w, h, d, &vertices, &triangles)

	checkInvariants(t, vertices, triangles)
	if len(vertices) == 0 {
		t.Fatal("expected a nonempty isosurface")
	}

	m := w - 1
	scale := 2.0 / float64(m)
	wantX := scale*1.5 - 1
	for i, v := range vertices {
		if math.Abs(v.P.X-wantX) > 1e-9 {
			t.Fatalf("vertex %d: P.X = %v, want %v", i, v.P.X, wantX)
		}
	}
}

func TestPolygonizeVertexSharing(t *testing.T) {
	sample := func(x, y, z int) float64 { return float64(x) }
	const w, h, d = 4, 5, 6
	var vertices []Vertex
	var triangles []Triangle
	Polygonize(0.5, sample, w, h, d, &vertices, &triangles)

	checkInvariants(t, vertices, triangles)

	want := h * d
	if len(vertices) != want {
		t.Fatalf("got %d vertices, want %d (H*D, one per crossed edge)", len(vertices), want)
	}
}

func TestPolygonizeSingleVoxelBlob(t *testing.T) {
	const w, h, d = 3, 3, 3
	sample := func(x, y, z int) float64 {
		if x == 1 && y == 1 && z == 1 {
			return 1
		}
		return 0
	}
	var vertices []Vertex
	var triangles []Triangle
	Polygonize(0.5, sample, w, h, d, &vertices, &triangles)

	checkInvariants(t, vertices, triangles)

	if len(triangles) != 6 {
		t.Fatalf("got %d triangles, want 6", len(triangles))
	}
	if len(vertices) != 8 {
		t.Fatalf("got %d vertices, want 8", len(vertices))
	}

	var center r3.Vec
	for _, v := range vertices {
		center = r3.Add(center, v.P)
	}
	center = r3.Scale(1/float64(len(vertices)), center)

	for i, v := range vertices {
		toV := r3.Sub(v.P, center)
		dot := toV.X*v.N.X + toV.Y*v.N.Y + toV.Z*v.N.Z
		if dot <= 0 {
			t.Fatalf("vertex %d normal %+v does not point outward from center (dot=%v)", i, v.N, dot)
		}
	}
}

func TestPolygonizeDiagonalRamp(t *testing.T) {
	const n = 5
	sample := func(x, y, z int) float64 { return float64(x + y + z) }
	var vertices []Vertex
	var triangles []Triangle
	Polygonize(3.0, sample, n, n, n, &vertices, &triangles)

	checkInvariants(t, vertices, triangles)
	if len(triangles) == 0 {
		t.Fatal("expected a nonempty isosurface")
	}

	want := -1 / math.Sqrt(3)
	for i, tr := range triangles {
		a, b, c := vertices[tr.A].P, vertices[tr.B].P, vertices[tr.C].P
		fn := faceNormal(a, b, c)
		if math.Abs(fn.X-want) > 0.35 || math.Abs(fn.Y-want) > 0.35 || math.Abs(fn.Z-want) > 0.35 {
			t.Fatalf("triangle %d face normal %+v not close to (%v,%v,%v)", i, fn, want, want, want)
		}
	}
}

func TestPolygonizeDeterministic(t *testing.T) {
	sample := func(x, y, z int) float64 { return float64(x*x + y*y + z*z) }
	const n = 6
	var v1 []Vertex
	var t1 []Triangle
	Polygonize(10, sample, n, n, n, &v1, &t1)

	var v2 []Vertex
	var t2 []Triangle
	Polygonize(10, sample, n, n, n, &v2, &t2)

	if len(v1) != len(v2) || len(t1) != len(t2) {
		t.Fatalf("run sizes differ: (%d,%d) vs (%d,%d)", len(v1), len(t1), len(v2), len(t2))
	}
	for i := range v1 {
		if v1[i] != v2[i] {
			t.Fatalf("vertex %d differs between runs: %+v vs %+v", i, v1[i], v2[i])
		}
	}
	for i := range t1 {
		if t1[i] != t2[i] {
			t.Fatalf("triangle %d differs between runs: %+v vs %+v", i, t1[i], t2[i])
		}
	}
}

func TestPolygonizeVertexOnEdge(t *testing.T) {
	sample := func(x, y, z int) float64 { return float64(x*2 + y*3 + z) }
	const w, h, d = 5, 5, 5
	var vertices []Vertex
	var triangles []Triangle
	Polygonize(4.5, sample, w, h, d, &vertices, &triangles)

	checkInvariants(t, vertices, triangles)

	m := w - 1
	scale := 2.0 / float64(m)
	isLattice := func(v float64) bool {
		f := (v + 1) / scale
		return math.Abs(f-math.Round(f)) < 1e-6
	}

	for i, v := range vertices {
		latticeCount := 0
		if isLattice(v.P.X) {
			latticeCount++
		}
		if isLattice(v.P.Y) {
			latticeCount++
		}
		if isLattice(v.P.Z) {
			latticeCount++
		}
		if latticeCount != 2 {
			t.Fatalf("vertex %d at %+v lies on %d lattice coordinates, want 2", i, v.P, latticeCount)
		}
	}
}

// faceNormal is the geometric (cross-product) normal of a triangle, used
// here to check which way each emitted triangle faces, independently of
// the polygonizer's gradient-derived vertex normals — the mesh writer's
// STL path computes the same thing for real, in stl.go.
func faceNormal(a, b, c r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	l := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}
