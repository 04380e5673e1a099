package raygeom

import (
	"math"

	"github.com/golang/geo/r3"
)

// IntersectPoint intersects ray with a point of radius r (approximate: the
// test is done at the ray's closest approach to p, not on a true sphere).
func IntersectPoint(ray Ray, p r3.Vector, r float64) Result {
	a := ray.Dir.Dot(ray.Dir)
	if a == 0 {
		return Miss()
	}
	t := p.Sub(ray.Origin).Dot(ray.Dir) / a
	if !ray.Range().Contains(t) {
		return Miss()
	}

	rp := ray.Point(t)
	if p.Sub(rp).Norm2() > r*r {
		return Miss()
	}
	return Found(Hit{
		Distance: t,
		Position: rp,
		Normal:   ray.Dir.Mul(-1).Normalize(),
	})
}

// OverlapPoint checks whether a point of radius r lies within distMax of pos.
func OverlapPoint(pos r3.Vector, distMax float64, p r3.Vector, r float64) Result {
	d2 := pos.Sub(p).Norm2()
	if d2 > (distMax+r)*(distMax+r) {
		return Miss()
	}
	return Found(Hit{Distance: math.Sqrt(d2), Position: p})
}
