package raygeom

import (
	"math"
	"testing"
)

var (
	axis0 = vec(0, 0, 0)
	axis1 = vec(0, 0, 2)
)

func TestIntersectCone_Capsule(t *testing.T) {
	// body
	h := mustHit(t, IntersectCone(NewRay(vec(5, 0, 1), vec(-1, 0, 0)), axis0, axis1, 0.5, 0.5))
	if !nearly(h.Distance, 4.5, 1e-9) || !vecAlmostEq(h.Position, vec(0.5, 0, 1), 1e-9) {
		t.Fatalf("body hit %+v", h)
	}
	if !vecAlmostEq(h.Normal, vec(1, 0, 0), 1e-9) || !nearly(h.UV.Y, 0.5, 1e-9) {
		t.Fatalf("body frame %+v", h)
	}

	// same hit, direction scaled by two
	h = mustHit(t, IntersectCone(NewRay(vec(5, 0, 1), vec(-2, 0, 0)), axis0, axis1, 0.5, 0.5))
	if !nearly(h.Distance, 2.25, 1e-9) {
		t.Fatalf("scaled dir t %.12g", h.Distance)
	}

	// top cap
	h = mustHit(t, IntersectCone(NewRay(vec(0, 0, 5), vec(0, 0, -1)), axis0, axis1, 0.5, 0.5))
	if !nearly(h.Distance, 2.5, 1e-9) || !vecAlmostEq(h.Normal, vec(0, 0, 1), 1e-9) {
		t.Fatalf("cap hit %+v", h)
	}
}

func TestIntersectCone_Frustum(t *testing.T) {
	h := mustHit(t, IntersectCone(NewRay(vec(0, 0, -5), vec(0, 0, 1)), axis0, axis1, 1, 0.5))
	if !nearly(h.Distance, 4, 1e-9) || !vecAlmostEq(h.Normal, vec(0, 0, -1), 1e-9) {
		t.Fatalf("bottom cap %+v", h)
	}
	h = mustHit(t, IntersectCone(NewRay(vec(0, 0, 5), vec(0, 0, -1)), axis0, axis1, 1, 0.5))
	if !nearly(h.Distance, 2.5, 1e-9) {
		t.Fatalf("top cap %+v", h)
	}

	// slanted side: the tangent line of the two spheres
	h = mustHit(t, IntersectCone(NewRay(vec(5, 0, 1), vec(-1, 0, 0)), axis0, axis1, 1, 0.5))
	if !nearly(h.Distance, 4.225403330758517, 1e-9) {
		t.Fatalf("side t %.15g", h.Distance)
	}
	if !vecAlmostEq(h.Normal, vec(0.9682458365518541, 0, 0.25), 1e-9) {
		t.Fatalf("side normal %+v", h.Normal)
	}

	mustMiss(t, IntersectCone(NewRay(vec(5, 5, 1), vec(-1, 0, 0)), axis0, axis1, 1, 0.5))

	r := NewRay(vec(5, 0, 1), vec(-1, 0, 0))
	r.TMax = 3
	mustMiss(t, IntersectCone(r, axis0, axis1, 1, 0.5))
}

func TestIntersectCone_Azimuth(t *testing.T) {
	hx := mustHit(t, IntersectCone(NewRay(vec(5, 0, 1), vec(-1, 0, 0)), axis0, axis1, 1, 0.5))
	hy := mustHit(t, IntersectCone(NewRay(vec(0, 5, 1), vec(0, -1, 0)), axis0, axis1, 1, 0.5))
	d := math.Mod(hy.UV.X-hx.UV.X+1, 1)
	if !nearly(d, 0.25, 1e-9) {
		t.Fatalf("a quarter turn should move u by 0.25, got %g (%g -> %g)", d, hx.UV.X, hy.UV.X)
	}
	if !nearly(hx.UV.Y, hy.UV.Y, 1e-9) {
		t.Fatalf("same height, different v: %g %g", hx.UV.Y, hy.UV.Y)
	}
	for _, h := range []Hit{hx, hy} {
		if h.UV.X < 0 || h.UV.X >= 1 {
			t.Fatalf("u out of [0,1): %g", h.UV.X)
		}
	}
}

func TestIntersectCone_Degenerate(t *testing.T) {
	// coincident ends: the larger sphere
	h := mustHit(t, IntersectCone(NewRay(vec(0, 0, -5), vec(0, 0, 1)), axis0, axis0, 0.5, 1))
	if !nearly(h.Distance, 4, 1e-12) {
		t.Fatalf("t %.12g", h.Distance)
	}
	mustMiss(t, IntersectCone(NewRay(vec(0, 0, -5), vec(0, 0, 0)), axis0, axis1, 1, 1))
}

func TestConeAxisUV(t *testing.T) {
	ray := NewRay(vec(5, 0, 1), vec(-1, 0, 0))
	h := mustHit(t, IntersectCone(ray, axis0, axis1, 0.5, 0.5))
	uv := ConeAxisUV(ray, axis0, axis1, 0.5, 0.5, h.Position)
	if !uvAlmostEq(uv, vec2(0.5, 1), 1e-9) {
		t.Fatalf("uv %+v", uv)
	}
}

func TestIntersectCone_OriginInside(t *testing.T) {
	for _, ray := range []Ray{
		NewRay(vec(0.45, 0, 1), vec(0, 0, -1)),
		NewRay(vec(0.3, 0, 1), vec(0.05, 0, -1)),
		NewRay(vec(0, 0, 1), vec(0, 0, -1)),
		NewRay(vec(0, 0, 1), vec(1, 0, 0)),
		NewRay(vec(0, 0, -0.2), vec(0, 0, -1)),
	} {
		if r := IntersectCone(ray, axis0, axis1, 0.5, 0.5); r.OK() {
			h, _ := r.Get()
			t.Fatalf("origin %+v inside the capsule reported %+v", ray.Origin, h)
		}
	}

	// the exposed cap below the body is still reachable from outside
	h := mustHit(t, IntersectCone(NewRay(vec(0.2, 0, -3), vec(0, 0, 1)), axis0, axis1, 0.5, 0.5))
	if !nearly(h.Distance, 3-math.Sqrt(0.21), 1e-9) || h.Position.Z > 0 {
		t.Fatalf("lower cap %+v", h)
	}
}

func TestIntersectCone_ContainedEndSphere(t *testing.T) {
	top := vec(0, 0, 0.5)
	want := mustHit(t, IntersectSphere(NewRay(vec(5, 0, 1), vec(-1, 0, 0)), axis0, 2))
	for _, h := range []Hit{
		mustHit(t, IntersectCone(NewRay(vec(5, 0, 1), vec(-1, 0, 0)), axis0, top, 2, 0.1)),
		mustHit(t, IntersectCone(NewRay(vec(5, 0, 1), vec(-1, 0, 0)), top, axis0, 0.1, 2)),
	} {
		if !nearly(h.Distance, want.Distance, 1e-12) || !vecAlmostEq(h.Normal, want.Normal, 1e-12) {
			t.Fatalf("got %+v, want the outer sphere %+v", h, want)
		}
	}
}
