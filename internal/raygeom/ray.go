package raygeom

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r3"
)

// Ray is origin + t*Dir for t in [TMin, TMax]. Dir need not be unit length.
type Ray struct {
	Origin r3.Vector
	Dir    r3.Vector
	TMin   float64
	TMax   float64
}

// NewRay returns a ray with the default [RayEps, +Inf) range.
func NewRay(origin, dir r3.Vector) Ray {
	return Ray{Origin: origin, Dir: dir, TMin: RayEps, TMax: math.Inf(1)}
}

// Point returns the point at parameter t.
func (r Ray) Point(t float64) r3.Vector { return r.Origin.Add(r.Dir.Mul(t)) }

// Range is the valid parameter interval.
func (r Ray) Range() r1.Interval { return r1.Interval{Lo: r.TMin, Hi: r.TMax} }

// InvDir returns the component-wise reciprocal of Dir, for reuse across
// many IntersectBoxInv calls. Zero components become ±Inf.
func (r Ray) InvDir() r3.Vector {
	return r3.Vector{X: 1 / r.Dir.X, Y: 1 / r.Dir.Y, Z: 1 / r.Dir.Z}
}
