package raygeom

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// IntersectCone intersects ray with the rounded cone spanning p0 (radius r0)
// to p1 (radius r1): the convex hull of the two end spheres.
//
// The lateral surface is solved on the unit-length direction as
// k2 t^2 + 2 k1 t + k0 = 0; the hit is kept only when its axial projection y
// falls strictly between the two cap planes (0 < y < d2). Anything else is
// resolved against the two cap spheres, counting only the part of each
// sphere outside the body, nearest in-range entry wins. Distances are
// reported in the caller's ray parameterization. Only the entering surface
// is reported. When one end sphere contains the other the cone is that
// sphere.
func IntersectCone(ray Ray, p0, p1 r3.Vector, r0, r1 float64) Result {
	ba := p1.Sub(p0)
	if ba.Norm2() <= (r0-r1)*(r0-r1) {
		if r0 >= r1 {
			return IntersectSphere(ray, p0, r0)
		}
		return IntersectSphere(ray, p1, r1)
	}
	dl := ray.Dir.Norm()
	if dl == 0 {
		return Miss()
	}
	rd := ray.Dir.Mul(1 / dl)
	oa := ray.Origin.Sub(p0)
	ob := ray.Origin.Sub(p1)
	rr := r0 - r1

	m0 := ba.Dot(ba)
	m1 := ba.Dot(oa)
	m2 := ba.Dot(rd)
	m3 := rd.Dot(oa)
	m5 := oa.Dot(oa)
	m6 := ob.Dot(rd)
	m7 := ob.Dot(ob)

	// body
	d2 := m0 - rr*rr
	k2 := d2 - m2*m2
	k1 := d2*m3 - m1*m2 + m2*rr*r0
	k0 := d2*m5 - m1*m1 + m1*rr*r0*2 - m0*r0*r0

	h := k1*k1 - k0*k2
	if h < 0 {
		return Miss()
	}
	// k2 == 0: ray runs along a generator of the lateral surface
	if k2 != 0 {
		t := (-math.Sqrt(h) - k1) / k2
		y := m1 - r0*rr + t*m2
		if y > 0 && y < d2 {
			// an out-of-range body entry hides the caps too
			if !ray.Range().Contains(t / dl) {
				return Miss()
			}
			position := ray.Point(t / dl)
			normal := oa.Add(rd.Mul(t)).Mul(d2).Sub(ba.Mul(y)).Normalize()
			return Found(Hit{
				UV:       coneUV(position, p0, ba),
				Distance: t / dl,
				Position: position,
				Normal:   normal,
			})
		}
	}

	// caps
	h0 := m3*m3 - m5 + r0*r0
	h1 := m6*m6 - m7 + r1*r1
	if math.Max(h0, h1) < 0 {
		return Miss()
	}
	// y <= 0 and y >= d2 are the cap regions past the tangent circles
	best := Miss()
	if h0 > 0 {
		t := -m3 - math.Sqrt(h0)
		if m1-r0*rr+t*m2 <= 0 {
			best = Closest(best, coneCap(ray, t/dl, p0, r0, p0, ba))
		}
	}
	if h1 > 0 {
		t := -m6 - math.Sqrt(h1)
		if m1-r0*rr+t*m2 >= d2 {
			best = Closest(best, coneCap(ray, t/dl, p1, r1, p0, ba))
		}
	}
	return best
}

func coneCap(ray Ray, t float64, center r3.Vector, r float64, p0, ba r3.Vector) Result {
	if r <= 0 || !ray.Range().Contains(t) {
		return Miss()
	}
	position := ray.Point(t)
	return Found(Hit{
		UV:       coneUV(position, p0, ba),
		Distance: t,
		Position: position,
		Normal:   position.Sub(center).Mul(1 / r).Normalize(),
	})
}

// coneUV unwraps position cylindrically around the cone axis: u is the
// azimuth in [0,1), v the axial coordinate (0 at p0, 1 at p1).
func coneUV(position, p0, ba r3.Vector) r2.Point {
	x := ba.Ortho()
	y := ba.Normalize().Cross(x)
	local := position.Sub(p0)
	return r2.Point{
		X: wrap01(math.Atan2(local.Dot(y), local.Dot(x))),
		Y: local.Dot(ba) / ba.Norm2(),
	}
}

// ConeAxisUV is the alternative distance-based parameterization of a cone
// hit: u is the clamped axis parameter at the ray's closest approach, v the
// distance of position from the axis over the radius there.
func ConeAxisUV(ray Ray, p0, p1 r3.Vector, r0, r1 float64, position r3.Vector) r2.Point {
	ab := p1.Sub(p0)
	a := ray.Dir.Dot(ray.Dir)
	b := ray.Dir.Dot(ab)
	c := ab.Dot(ab)
	d := ray.Dir.Dot(ray.Origin.Sub(p0))
	e := ab.Dot(ray.Origin.Sub(p0))
	det := a*c - b*b

	var u float64
	if det == 0 {
		u = ClosestUVLine(position, p0, p1)
	} else {
		u = unitInterval.ClampPoint((a*e - b*d) / det)
	}
	r := lerp(r0, r1, u)
	if r <= 0 {
		return r2.Point{X: u}
	}
	return r2.Point{X: u, Y: position.Sub(lerpVec(p0, p1, u)).Norm() / r}
}
