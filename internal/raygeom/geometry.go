package raygeom

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Primitive bounds.

func PointBounds(p r3.Vector, r float64) Box {
	return Box{Min: vadd(p, -r), Max: vadd(p, r)}
}

func LineBounds(p0, p1 r3.Vector, r0, r1 float64) Box {
	return Box{
		Min: vmin(vadd(p0, -r0), vadd(p1, -r1)),
		Max: vmax(vadd(p0, r0), vadd(p1, r1)),
	}
}

func SphereBounds(p r3.Vector, r float64) Box { return PointBounds(p, r) }

// CapsuleBounds bounds a rounded cone: the union of its two end spheres.
func CapsuleBounds(p0, p1 r3.Vector, r0, r1 float64) Box { return LineBounds(p0, p1, r0, r1) }

func TriangleBounds(p0, p1, p2 r3.Vector) Box {
	return Box{Min: vmin(p0, vmin(p1, p2)), Max: vmax(p0, vmax(p1, p2))}
}

func QuadBounds(p0, p1, p2, p3 r3.Vector) Box {
	return TriangleBounds(p0, p1, p2).Merge(p3)
}

// Interpolation over the primitives' parameterizations.

// InterpolateLine is lerp from p0 to p1.
func InterpolateLine(p0, p1 r3.Vector, u float64) r3.Vector { return lerpVec(p0, p1, u) }

// InterpolateTriangle is barycentric interpolation: uv weights p1 and p2.
func InterpolateTriangle(p0, p1, p2 r3.Vector, uv r2.Point) r3.Vector {
	return p0.Mul(1 - uv.X - uv.Y).Add(p1.Mul(uv.X)).Add(p2.Mul(uv.Y))
}

// InterpolateQuad follows the same p1-p3 split as IntersectQuad.
func InterpolateQuad(p0, p1, p2, p3 r3.Vector, uv r2.Point) r3.Vector {
	if uv.X+uv.Y <= 1 {
		return InterpolateTriangle(p0, p1, p3, uv)
	}
	return InterpolateTriangle(p2, p3, p1, flipUV(uv))
}

// TriangleNormal is the unit CCW normal.
func TriangleNormal(p0, p1, p2 r3.Vector) r3.Vector {
	return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
}
