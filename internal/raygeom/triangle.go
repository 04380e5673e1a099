package raygeom

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// IntersectTriangle intersects ray with triangle p0 p1 p2 (Möller–Trumbore).
// UV are the barycentric weights of p1 and p2; p0 gets 1-u-v.
func IntersectTriangle(ray Ray, p0, p1, p2 r3.Vector) Result {
	edge1 := p1.Sub(p0)
	edge2 := p2.Sub(p0)

	pvec := ray.Dir.Cross(edge2)
	det := edge1.Dot(pvec)
	// parallel to the plane, or a degenerate triangle
	if det == 0 {
		return Miss()
	}
	inv := 1 / det

	tvec := ray.Origin.Sub(p0)
	u := tvec.Dot(pvec) * inv
	if u < 0 || u > 1 {
		return Miss()
	}

	qvec := tvec.Cross(edge1)
	v := ray.Dir.Dot(qvec) * inv
	if v < 0 || u+v > 1 {
		return Miss()
	}

	t := edge2.Dot(qvec) * inv
	if !ray.Range().Contains(t) {
		return Miss()
	}
	return Found(Hit{
		UV:       r2.Point{X: u, Y: v},
		Distance: t,
		Position: ray.Point(t),
		Normal:   TriangleNormal(p0, p1, p2),
	})
}

// ClosestUVTriangle returns the barycentric uv of the point of triangle
// p0 p1 p2 closest to pos, classifying pos against the vertex and edge
// Voronoi regions with dot products only.
func ClosestUVTriangle(pos, p0, p1, p2 r3.Vector) r2.Point {
	ab := p1.Sub(p0)
	ac := p2.Sub(p0)
	ap := pos.Sub(p0)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	// vertex 0
	if d1 <= 0 && d2 <= 0 {
		return r2.Point{X: 0, Y: 0}
	}

	bp := pos.Sub(p1)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	// vertex 1
	if d3 >= 0 && d4 <= d3 {
		return r2.Point{X: 1, Y: 0}
	}

	// edge 0-1
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return r2.Point{X: d1 / (d1 - d3), Y: 0}
	}

	cp := pos.Sub(p2)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	// vertex 2
	if d6 >= 0 && d5 <= d6 {
		return r2.Point{X: 0, Y: 1}
	}

	// edge 0-2
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return r2.Point{X: 0, Y: d2 / (d2 - d6)}
	}

	// edge 1-2
	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return r2.Point{X: 1 - w, Y: w}
	}

	// face
	denom := va + vb + vc
	if denom == 0 {
		return r2.Point{}
	}
	return r2.Point{X: vb / denom, Y: vc / denom}
}

// OverlapTriangle checks whether triangle p0 p1 p2, with per-vertex radii
// rad0 rad1 rad2, lies within distMax of pos. Zero-area triangles never overlap.
func OverlapTriangle(pos r3.Vector, distMax float64, p0, p1, p2 r3.Vector, rad0, rad1, rad2 float64) Result {
	if p1.Sub(p0).Cross(p2.Sub(p0)).Norm2() == 0 {
		return Miss()
	}
	uv := ClosestUVTriangle(pos, p0, p1, p2)
	p := InterpolateTriangle(p0, p1, p2, uv)
	r := rad0*(1-uv.X-uv.Y) + rad1*uv.X + rad2*uv.Y
	dd := p.Sub(pos).Norm2()
	if dd > (distMax+r)*(distMax+r) {
		return Miss()
	}
	return Found(Hit{UV: uv, Distance: math.Sqrt(dd), Position: p})
}
