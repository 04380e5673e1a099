package raygeom

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// PatchNormals points a patch at caller-owned per-vertex normals. Quad holds
// the indices of the patch corners p0..p3 into Normals. Only read.
type PatchNormals struct {
	Normals []r3.Vector
	Quad    [4]int
}

// IntersectPatch intersects ray with the bilinear patch
//
//	p3 ------- p2
//	|           |
//	p0 ------- p1
//
// parameterized by u along p0->p1 and v along p0->p3 (Reshetov, "Cool
// Patches"). The patch need not be planar. With normals == nil the normal
// is the analytic cross product of the surface partials, otherwise the
// bilinear blend of the referenced vertex normals.
func IntersectPatch(ray Ray, p0, p1, p2, p3 r3.Vector, normals *PatchNormals) Result {
	q00, q10, q11, q01 := p0, p1, p2, p3
	e10 := q10.Sub(q00)
	e11 := q11.Sub(q10)
	e00 := q01.Sub(q00)
	qn := e10.Cross(q01.Sub(q11))

	o00 := q00.Sub(ray.Origin)
	o10 := q10.Sub(ray.Origin)

	// a + b u + c u^2 = 0; b is first computed as a+b+c
	a := o00.Cross(ray.Dir).Dot(e00)
	c := qn.Dot(ray.Dir)
	b := o10.Cross(ray.Dir).Dot(e11) - (a + c)

	det := b*b - 4*a*c
	if det < 0 {
		return Miss()
	}
	det = math.Sqrt(det)

	var u1, u2 float64
	if c == 0 {
		// planar trapezoid: the equation is linear
		if b == 0 {
			return Miss()
		}
		u1, u2 = -a/b, -1
	} else {
		// stable root, the other from Viete's u1*u2 = a/c
		u1 = (-b - math.Copysign(det, b)) / 2
		if u1 == 0 {
			u2 = 0
		} else {
			u2 = a / u1
		}
		u1 /= c
	}

	found := false
	t, u, v := ray.TMax, 0.0, 0.0
	for _, ur := range [2]float64{u1, u2} {
		if !unitInterval.Contains(ur) {
			continue
		}
		pa := lerpVec(o00, o10, ur)
		pb := lerpVec(e00, e11, ur) // pb - pa, actually
		n := ray.Dir.Cross(pb)
		nn := n.Norm2()
		if nn == 0 {
			continue
		}
		n = n.Cross(pa)
		tr := n.Dot(pb) / nn
		vr := n.Dot(ray.Dir)
		if vr < 0 || vr > nn || tr < ray.TMin || tr > t {
			continue
		}
		found, t, u, v = true, tr, ur, vr/nn
	}
	if !found {
		return Miss()
	}

	position := q00.Mul((1 - u) * (1 - v)).
		Add(q10.Mul(u * (1 - v))).
		Add(q01.Mul((1 - u) * v)).
		Add(q11.Mul(u * v))

	var normal r3.Vector
	if normals == nil || len(normals.Normals) == 0 {
		du := lerpVec(e10, q11.Sub(q01), v)
		dv := lerpVec(e00, e11, u)
		normal = du.Cross(dv)
	} else {
		ns, q := normals.Normals, normals.Quad
		normal = lerpVec(
			lerpVec(ns[q[0]], ns[q[1]], u),
			lerpVec(ns[q[3]], ns[q[2]], u),
			v,
		)
	}
	return Found(Hit{
		UV:       r2.Point{X: u, Y: v},
		Distance: t,
		Position: position,
		Normal:   normal.Normalize(),
	})
}
