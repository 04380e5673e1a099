package raygeom

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// IntersectSphere intersects ray with the sphere of center p and radius r.
//
// Solve |o + t d - p|^2 = r^2 as a t^2 + 2 b t + c = 0 with
// a = d.d, b = (o-p).d, c = |o-p|^2 - r^2. The root is picked by the sign
// of c: outside (c > 0) takes the entry, inside (c < 0) the exit, so both
// cases resolve without a second pass over the naive pair of roots.
func IntersectSphere(ray Ray, p r3.Vector, r float64) Result {
	oc := ray.Origin.Sub(p)
	a := ray.Dir.Dot(ray.Dir)
	b := oc.Dot(ray.Dir)
	c := oc.Dot(oc) - r*r
	if a == 0 || r <= 0 {
		return Miss()
	}

	h := b*b - a*c
	if h < 0 {
		return Miss()
	}
	t := (-b - sign(c)*math.Sqrt(h)) / a
	if !ray.Range().Contains(t) {
		return Miss()
	}

	position := ray.Point(t)
	normal := position.Sub(p).Mul(1 / r).Normalize()
	return Found(Hit{
		UV:       sphereUV(normal),
		Distance: t,
		Position: position,
		Normal:   normal,
	})
}

// sphereUV maps a unit normal to (azimuth in [0,1), colatitude in [0,1]).
func sphereUV(n r3.Vector) r2.Point {
	return r2.Point{
		X: wrap01(math.Atan2(n.Y, n.X)),
		Y: math.Acos(clamp(n.Z, -1, 1)) / math.Pi,
	}
}
