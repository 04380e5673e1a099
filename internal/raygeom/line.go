package raygeom

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// IntersectLine intersects ray with the capsule around segment p0-p1 whose
// radius goes linearly from r0 to r1. UV is (segment parameter, distance
// from the axis over the local radius).
func IntersectLine(ray Ray, p0, p1 r3.Vector, r0, r1 float64) Result {
	u := ray.Dir
	v := p1.Sub(p0)
	w := ray.Origin.Sub(p0)

	// Gram system for the closest points of the two lines
	a := u.Dot(u)
	b := u.Dot(v)
	c := v.Dot(v)
	d := u.Dot(w)
	e := v.Dot(w)
	det := a*c - b*b
	// parallel, or a zero-length segment
	if det == 0 {
		return Miss()
	}

	t := (b*e - c*d) / det
	s := (a*e - b*d) / det
	if !ray.Range().Contains(t) {
		return Miss()
	}
	s = unitInterval.ClampPoint(s)

	pr := ray.Point(t)
	pl := lerpVec(p0, p1, s)
	prl := pr.Sub(pl)
	d2 := prl.Norm2()
	r := lerp(r0, r1, s)
	if d2 > r*r {
		return Miss()
	}
	dist := math.Sqrt(d2)
	radial := 0.0
	if r > 0 {
		radial = dist / r
	}
	return Found(Hit{
		UV:       r2.Point{X: s, Y: radial},
		Distance: t,
		Position: pr,
		Normal:   unitOr(prl, ray.Dir.Mul(-1).Normalize()),
	})
}

// ClosestUVLine returns the segment parameter in [0,1] closest to pos.
// A zero-length segment yields 0.
func ClosestUVLine(pos, p0, p1 r3.Vector) float64 {
	ab := p1.Sub(p0)
	d := ab.Norm2()
	if d == 0 {
		return 0
	}
	return unitInterval.ClampPoint(pos.Sub(p0).Dot(ab) / d)
}

// OverlapLine checks whether the capsule p0-p1 (radii r0, r1) lies within
// distMax of pos.
func OverlapLine(pos r3.Vector, distMax float64, p0, p1 r3.Vector, r0, r1 float64) Result {
	if p0 == p1 {
		return Miss()
	}
	u := ClosestUVLine(pos, p0, p1)
	p := InterpolateLine(p0, p1, u)
	r := lerp(r0, r1, u)
	d2 := pos.Sub(p).Norm2()
	if d2 > (distMax+r)*(distMax+r) {
		return Miss()
	}
	return Found(Hit{UV: r2.Point{X: u}, Distance: math.Sqrt(d2), Position: p})
}
