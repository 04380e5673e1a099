package raygeom

import "github.com/golang/geo/r3"

// IntersectQuad intersects ray with quad p0 p1 p2 p3, split along the p1-p3
// diagonal into (p0,p1,p3) and (p2,p3,p1). UV of the second half is flipped
// so the whole quad shares one bilinear-like parameterization. A quad with
// p2 == p3 is the triangle p0 p1 p3.
func IntersectQuad(ray Ray, p0, p1, p2, p3 r3.Vector) Result {
	if p2 == p3 {
		return IntersectTriangle(ray, p0, p1, p3)
	}
	return Closest(
		IntersectTriangle(ray, p0, p1, p3),
		flipped(IntersectTriangle(ray, p2, p3, p1)),
	)
}

// OverlapQuad checks whether quad p0 p1 p2 p3, with per-vertex radii
// rad0..rad3, lies within distMax of pos. Split as in IntersectQuad.
func OverlapQuad(pos r3.Vector, distMax float64, p0, p1, p2, p3 r3.Vector, rad0, rad1, rad2, rad3 float64) Result {
	if p2 == p3 {
		return OverlapTriangle(pos, distMax, p0, p1, p3, rad0, rad1, rad3)
	}
	return Closest(
		OverlapTriangle(pos, distMax, p0, p1, p3, rad0, rad1, rad3),
		flipped(OverlapTriangle(pos, distMax, p2, p3, p1, rad2, rad3, rad1)),
	)
}

func flipped(r Result) Result {
	h, ok := r.Get()
	if !ok {
		return r
	}
	h.UV = flipUV(h.UV)
	return Found(h)
}
