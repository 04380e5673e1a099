package raygeom

import "testing"

func TestIntersectLine(t *testing.T) {
	p0, p1 := vec(0, 0, 0), vec(1, 0, 0)
	up := vec(0, 0, 1)

	cases := []struct {
		name   string
		origin [3]float64
		dist   float64
		uv     [2]float64
		normal [3]float64
	}{
		{"on axis", [3]float64{0.5, 0, -5}, 5, [2]float64{0.5, 0}, [3]float64{0, 0, -1}},
		{"off axis", [3]float64{0.5, 0.05, -5}, 5, [2]float64{0.5, 0.5}, [3]float64{0, 1, 0}},
		{"past the end", [3]float64{1.05, 0, -5}, 5, [2]float64{1, 0.5}, [3]float64{1, 0, 0}},
	}
	for _, c := range cases {
		ray := NewRay(vec(c.origin[0], c.origin[1], c.origin[2]), up)
		h, ok := IntersectLine(ray, p0, p1, 0.1, 0.1).Get()
		if !ok {
			t.Errorf("%s: miss", c.name)
			continue
		}
		if !nearly(h.Distance, c.dist, eps) {
			t.Errorf("%s: distance %g, want %g", c.name, h.Distance, c.dist)
		}
		if !nearly(h.UV.X, c.uv[0], eps) || !nearly(h.UV.Y, c.uv[1], 1e-9) {
			t.Errorf("%s: uv %+v, want %v", c.name, h.UV, c.uv)
		}
		if !vecAlmostEq(h.Normal, vec(c.normal[0], c.normal[1], c.normal[2]), 1e-9) {
			t.Errorf("%s: normal %+v, want %v", c.name, h.Normal, c.normal)
		}
	}
}

func TestIntersectLineMisses(t *testing.T) {
	p0, p1 := vec(0, 0, 0), vec(1, 0, 0)
	// parallel to the segment
	mustMiss(t, IntersectLine(NewRay(vec(-1, 0, 0), vec(1, 0, 0)), p0, p1, 0.1, 0.1))
	// zero-length segment
	mustMiss(t, IntersectLine(NewRay(vec(0, 0, -5), vec(0, 0, 1)), p0, p0, 0.1, 0.1))
	// too far from the axis
	mustMiss(t, IntersectLine(NewRay(vec(0.5, 0.2, -5), vec(0, 0, 1)), p0, p1, 0.1, 0.1))
	// segment behind the ray
	mustMiss(t, IntersectLine(NewRay(vec(0.5, 0, 5), vec(0, 0, 1)), p0, p1, 0.1, 0.1))
}

func TestIntersectLineZeroRadius(t *testing.T) {
	h := mustHit(t, IntersectLine(NewRay(vec(0.25, 0, -1), vec(0, 0, 1)), vec(0, 0, 0), vec(1, 0, 0), 0, 0))
	if h.UV.Y != 0 || !nearly(h.UV.X, 0.25, eps) {
		t.Fatalf("uv %+v", h.UV)
	}
}

func TestClosestUVLine(t *testing.T) {
	p0, p1 := vec(0, 0, 0), vec(2, 0, 0)
	for _, c := range []struct {
		pos  [3]float64
		want float64
	}{
		{[3]float64{-1, 0, 0}, 0},
		{[3]float64{3, 1, 0}, 1},
		{[3]float64{0.5, 7, -2}, 0.25},
	} {
		if got := ClosestUVLine(vec(c.pos[0], c.pos[1], c.pos[2]), p0, p1); !nearly(got, c.want, eps) {
			t.Errorf("pos %v: got %g, want %g", c.pos, got, c.want)
		}
	}
	if got := ClosestUVLine(vec(5, 5, 5), p0, p0); got != 0 {
		t.Errorf("zero-length segment: got %g, want 0", got)
	}
}

func TestOverlapLine(t *testing.T) {
	p0, p1 := vec(0, 0, 0), vec(1, 0, 0)
	h := mustHit(t, OverlapLine(vec(0.5, 1, 0), 1, p0, p1, 0.1, 0.1))
	if !nearly(h.Distance, 1, eps) || !nearly(h.UV.X, 0.5, eps) || !vecAlmostEq(h.Position, vec(0.5, 0, 0), eps) {
		t.Fatalf("unexpected hit %+v", h)
	}
	mustMiss(t, OverlapLine(vec(0.5, 1, 0), 0.5, p0, p1, 0.1, 0.1))
	mustMiss(t, OverlapLine(vec(0, 0, 0), 10, p0, p0, 0.1, 0.1))
}
