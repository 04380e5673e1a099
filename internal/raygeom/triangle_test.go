package raygeom

import "testing"

var (
	tri0 = vec(0, 0, 0)
	tri1 = vec(1, 0, 0)
	tri2 = vec(0, 1, 0)
)

func TestIntersectTriangle(t *testing.T) {
	h := mustHit(t, IntersectTriangle(NewRay(vec(0.2, 0.2, 1), vec(0, 0, -1)), tri0, tri1, tri2))
	if !nearly(h.Distance, 1, eps) || !uvAlmostEq(h.UV, vec2(0.2, 0.2), eps) {
		t.Fatalf("unexpected hit %+v", h)
	}
	if !vecAlmostEq(h.Normal, vec(0, 0, 1), eps) || !vecAlmostEq(h.Position, vec(0.2, 0.2, 0), eps) {
		t.Fatalf("unexpected frame %+v", h)
	}

	// from below: same uv, normal keeps the winding
	h = mustHit(t, IntersectTriangle(NewRay(vec(0.5, 0.25, -2), vec(0, 0, 2)), tri0, tri1, tri2))
	if !nearly(h.Distance, 1, eps) || !uvAlmostEq(h.UV, vec2(0.5, 0.25), eps) || !vecAlmostEq(h.Normal, vec(0, 0, 1), eps) {
		t.Fatalf("unexpected hit from below %+v", h)
	}
}

func TestIntersectTriangleMisses(t *testing.T) {
	down := vec(0, 0, -1)
	// u+v > 1
	mustMiss(t, IntersectTriangle(NewRay(vec(0.8, 0.8, 1), down), tri0, tri1, tri2))
	// u < 0
	mustMiss(t, IntersectTriangle(NewRay(vec(-0.1, 0.5, 1), down), tri0, tri1, tri2))
	// parallel to the plane
	mustMiss(t, IntersectTriangle(NewRay(vec(0.2, 0.2, 1), vec(1, 0, 0)), tri0, tri1, tri2))
	// degenerate
	mustMiss(t, IntersectTriangle(NewRay(vec(0.2, 0, 1), down), tri0, tri1, vec(2, 0, 0)))
	// behind
	mustMiss(t, IntersectTriangle(NewRay(vec(0.2, 0.2, -1), down), tri0, tri1, tri2))
}

func TestClosestUVTriangle_Vertices(t *testing.T) {
	for _, c := range []struct {
		pos  [3]float64
		u, v float64
	}{
		{[3]float64{0, 0, 0}, 0, 0},
		{[3]float64{1, 0, 0}, 1, 0},
		{[3]float64{0, 1, 0}, 0, 1},
	} {
		got := ClosestUVTriangle(vec(c.pos[0], c.pos[1], c.pos[2]), tri0, tri1, tri2)
		if got != vec2(c.u, c.v) {
			t.Errorf("vertex %v: got %+v, want exactly (%g,%g)", c.pos, got, c.u, c.v)
		}
	}
}

func TestClosestUVTriangle_Regions(t *testing.T) {
	for _, c := range []struct {
		name string
		pos  [3]float64
		u, v float64
	}{
		{"face", [3]float64{0.25, 0.25, 1}, 0.25, 0.25},
		{"hypotenuse", [3]float64{1, 1, 0}, 0.5, 0.5},
		{"beyond vertex 1", [3]float64{2, -0.5, 0}, 1, 0},
		{"below edge 0-1", [3]float64{0.5, -1, 0}, 0.5, 0},
		{"left of edge 0-2", [3]float64{-3, 0.4, 2}, 0, 0.4},
		{"beyond vertex 2", [3]float64{-0.5, 3, 0}, 0, 1},
		{"behind vertex 0", [3]float64{-1, -1, -1}, 0, 0},
	} {
		pos := vec(c.pos[0], c.pos[1], c.pos[2])
		uv := ClosestUVTriangle(pos, tri0, tri1, tri2)
		if !uvAlmostEq(uv, vec2(c.u, c.v), eps) {
			t.Errorf("%s: got %+v, want (%g,%g)", c.name, uv, c.u, c.v)
			continue
		}
		// feeding uv back must reproduce the closest point
		want := vec(c.u, c.v, 0)
		if got := InterpolateTriangle(tri0, tri1, tri2, uv); !vecAlmostEq(got, want, eps) {
			t.Errorf("%s: interpolated %+v, want %+v", c.name, got, want)
		}
	}
}

func TestOverlapTriangle(t *testing.T) {
	pos := vec(0.25, 0.25, 1)
	h := mustHit(t, OverlapTriangle(pos, 1, tri0, tri1, tri2, 0, 0, 0))
	if !nearly(h.Distance, 1, eps) || !vecAlmostEq(h.Position, vec(0.25, 0.25, 0), eps) || !uvAlmostEq(h.UV, vec2(0.25, 0.25), eps) {
		t.Fatalf("unexpected overlap %+v", h)
	}
	mustMiss(t, OverlapTriangle(pos, 0.5, tri0, tri1, tri2, 0, 0, 0))
	// per-vertex radii extend the reach
	mustHit(t, OverlapTriangle(pos, 0.5, tri0, tri1, tri2, 0.5, 0.5, 0.5))
	// zero area never overlaps
	mustMiss(t, OverlapTriangle(vec(0, 0, 0), 10, tri0, tri1, vec(2, 0, 0), 0, 0, 0))
}
