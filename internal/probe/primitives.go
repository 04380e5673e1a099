package probe

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/lukaszgryglicki/raygeom/internal/raygeom"
)

// primitive is one piece of geometry the scene can query.
type primitive interface {
	Bounds() raygeom.Box
	Intersect(ray raygeom.Ray) raygeom.Result
	Overlap(pos r3.Vector, distMax float64) raygeom.Result
}

type pointPrim struct {
	P r3.Vector
	R float64
}

func (p pointPrim) Bounds() raygeom.Box { return raygeom.PointBounds(p.P, p.R) }
func (p pointPrim) Intersect(ray raygeom.Ray) raygeom.Result {
	return raygeom.IntersectPoint(ray, p.P, p.R)
}
func (p pointPrim) Overlap(pos r3.Vector, distMax float64) raygeom.Result {
	return raygeom.OverlapPoint(pos, distMax, p.P, p.R)
}

type linePrim struct {
	P0, P1 r3.Vector
	R0, R1 float64
}

func (l linePrim) Bounds() raygeom.Box { return raygeom.LineBounds(l.P0, l.P1, l.R0, l.R1) }
func (l linePrim) Intersect(ray raygeom.Ray) raygeom.Result {
	return raygeom.IntersectLine(ray, l.P0, l.P1, l.R0, l.R1)
}
func (l linePrim) Overlap(pos r3.Vector, distMax float64) raygeom.Result {
	return raygeom.OverlapLine(pos, distMax, l.P0, l.P1, l.R0, l.R1)
}

type spherePrim struct {
	C r3.Vector
	R float64
}

func (s spherePrim) Bounds() raygeom.Box { return raygeom.SphereBounds(s.C, s.R) }
func (s spherePrim) Intersect(ray raygeom.Ray) raygeom.Result {
	return raygeom.IntersectSphere(ray, s.C, s.R)
}

// Overlap treats the sphere as a point with radius.
func (s spherePrim) Overlap(pos r3.Vector, distMax float64) raygeom.Result {
	return raygeom.OverlapPoint(pos, distMax, s.C, s.R)
}

type conePrim struct {
	P0, P1 r3.Vector
	R0, R1 float64
}

func (c conePrim) Bounds() raygeom.Box { return raygeom.CapsuleBounds(c.P0, c.P1, c.R0, c.R1) }
func (c conePrim) Intersect(ray raygeom.Ray) raygeom.Result {
	return raygeom.IntersectCone(ray, c.P0, c.P1, c.R0, c.R1)
}

// Overlap measures against the axis with interpolated radii; coincident
// ends collapse to the larger end sphere, as in Intersect.
func (c conePrim) Overlap(pos r3.Vector, distMax float64) raygeom.Result {
	if c.P0 == c.P1 {
		return raygeom.OverlapPoint(pos, distMax, c.P0, math.Max(c.R0, c.R1))
	}
	return raygeom.OverlapLine(pos, distMax, c.P0, c.P1, c.R0, c.R1)
}

type trianglePrim struct {
	P   [3]r3.Vector
	Rad [3]float64
}

func (t trianglePrim) Bounds() raygeom.Box {
	return raygeom.TriangleBounds(t.P[0], t.P[1], t.P[2]).Expand(maxOf(t.Rad[:]))
}
func (t trianglePrim) Intersect(ray raygeom.Ray) raygeom.Result {
	return raygeom.IntersectTriangle(ray, t.P[0], t.P[1], t.P[2])
}
func (t trianglePrim) Overlap(pos r3.Vector, distMax float64) raygeom.Result {
	return raygeom.OverlapTriangle(pos, distMax, t.P[0], t.P[1], t.P[2], t.Rad[0], t.Rad[1], t.Rad[2])
}

type quadPrim struct {
	P   [4]r3.Vector
	Rad [4]float64
}

func (q quadPrim) Bounds() raygeom.Box {
	return raygeom.QuadBounds(q.P[0], q.P[1], q.P[2], q.P[3]).Expand(maxOf(q.Rad[:]))
}
func (q quadPrim) Intersect(ray raygeom.Ray) raygeom.Result {
	return raygeom.IntersectQuad(ray, q.P[0], q.P[1], q.P[2], q.P[3])
}
func (q quadPrim) Overlap(pos r3.Vector, distMax float64) raygeom.Result {
	return raygeom.OverlapQuad(pos, distMax, q.P[0], q.P[1], q.P[2], q.P[3], q.Rad[0], q.Rad[1], q.Rad[2], q.Rad[3])
}

// patchPrim is a bilinear patch; Normals is nil for analytic normals.
type patchPrim struct {
	P       [4]r3.Vector
	Normals *raygeom.PatchNormals
}

func (p patchPrim) Bounds() raygeom.Box { return raygeom.QuadBounds(p.P[0], p.P[1], p.P[2], p.P[3]) }
func (p patchPrim) Intersect(ray raygeom.Ray) raygeom.Result {
	return raygeom.IntersectPatch(ray, p.P[0], p.P[1], p.P[2], p.P[3], p.Normals)
}

// Overlap approximates the patch by its split quad, with zero radii.
func (p patchPrim) Overlap(pos r3.Vector, distMax float64) raygeom.Result {
	return raygeom.OverlapQuad(pos, distMax, p.P[0], p.P[1], p.P[2], p.P[3], 0, 0, 0, 0)
}

func maxOf(xs []float64) float64 {
	m := 0.0
	for _, x := range xs {
		m = math.Max(m, x)
	}
	return m
}
