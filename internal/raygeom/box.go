package raygeom

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r3"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max r3.Vector
}

// EmptyBox returns the inverted box that every Merge/Union grows from.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: r3.Vector{X: inf, Y: inf, Z: inf},
		Max: r3.Vector{X: -inf, Y: -inf, Z: -inf},
	}
}

func (b Box) Merge(p r3.Vector) Box { return Box{Min: vmin(b.Min, p), Max: vmax(b.Max, p)} }
func (b Box) Union(o Box) Box       { return Box{Min: vmin(b.Min, o.Min), Max: vmax(b.Max, o.Max)} }
func (b Box) Center() r3.Vector     { return b.Min.Add(b.Max).Mul(0.5) }
func (b Box) Size() r3.Vector       { return b.Max.Sub(b.Min) }

// Expand grows the box by margin on every side.
func (b Box) Expand(margin float64) Box {
	return Box{Min: vadd(b.Min, -margin), Max: vadd(b.Max, margin)}
}

// Axis returns the box extent along axis i as an interval.
func (b Box) Axis(i int) r1.Interval {
	return r1.Interval{Lo: comp(b.Min, i), Hi: comp(b.Max, i)}
}

// IsEmpty reports whether any axis is inverted.
func (b Box) IsEmpty() bool {
	return b.Axis(0).IsEmpty() || b.Axis(1).IsEmpty() || b.Axis(2).IsEmpty()
}

// IntersectBox reports whether ray crosses b within [TMin, TMax].
func IntersectBox(ray Ray, b Box) bool {
	return IntersectBoxInv(ray, ray.InvDir(), b)
}

// IntersectBoxInv is IntersectBox with a precomputed ray.InvDir().
//
// Slab bounds are folded in with explicit comparisons: a 0*Inf NaN on an
// axis the ray is parallel to and starts on never tightens the interval.
func IntersectBoxInv(ray Ray, invDir r3.Vector, b Box) bool {
	tmin, tmax := ray.TMin, ray.TMax
	for i := 0; i < 3; i++ {
		o, inv := comp(ray.Origin, i), comp(invDir, i)
		t0 := (comp(b.Min, i) - o) * inv
		t1 := (comp(b.Max, i) - o) * inv
		if inv < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
	}
	tmax *= BoxSlabEps
	return tmin <= tmax
}

// OverlapBoxPoint reports whether pos lies within distMax of b.
func OverlapBoxPoint(pos r3.Vector, distMax float64, b Box) bool {
	dd := 0.0
	for i := 0; i < 3; i++ {
		p, lo, hi := comp(pos, i), comp(b.Min, i), comp(b.Max, i)
		if p < lo {
			dd += (lo - p) * (lo - p)
		}
		if p > hi {
			dd += (p - hi) * (p - hi)
		}
	}
	return dd <= distMax*distMax
}

// OverlapBoxes reports whether two boxes share at least one point.
func OverlapBoxes(a, b Box) bool {
	for i := 0; i < 3; i++ {
		if !a.Axis(i).Intersects(b.Axis(i)) {
			return false
		}
	}
	return true
}
