// Package raygeom intersects rays with, and measures point distance to,
// the primitives a renderer builds its scenes from.
package raygeom

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Hit describes where a query touched a primitive.
//
// UV lies in the primitive's own parameterization: barycentric (u, v) with
// implicit 1-u-v for lines and triangles, bilinear [0,1]^2 for quads and
// patches, azimuth/height for spheres and cones. Distance is the ray
// parameter for intersections and the Euclidean distance for overlaps.
// Normal is only set by intersection queries.
type Hit struct {
	UV       r2.Point
	Distance float64
	Position r3.Vector
	Normal   r3.Vector
}

// Result is either a Hit or a miss. The hit is only reachable through Get.
type Result struct {
	hit Hit
	ok  bool
}

// Miss returns the absent result.
func Miss() Result { return Result{} }

// Found wraps h as a present result.
func Found(h Hit) Result { return Result{hit: h, ok: true} }

// Get returns the hit and whether there is one.
func (r Result) Get() (Hit, bool) { return r.hit, r.ok }

// OK reports whether the query hit.
func (r Result) OK() bool { return r.ok }

// Dist returns the hit distance, or +Inf on a miss so that misses always
// lose a nearest-hit reduction.
func (r Result) Dist() float64 {
	if !r.ok {
		return math.Inf(1)
	}
	return r.hit.Distance
}

// Closest returns a if it is strictly nearer than b, b otherwise.
func Closest(a, b Result) Result {
	if a.Dist() < b.Dist() {
		return a
	}
	return b
}
