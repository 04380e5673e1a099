package raygeom

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// r3 has no component-wise helpers, these fill the gap.

func vmin(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func vmax(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

func vadd(a r3.Vector, s float64) r3.Vector { return r3.Vector{X: a.X + s, Y: a.Y + s, Z: a.Z + s} }

// comp returns component i (0=X, 1=Y, 2=Z).
func comp(v r3.Vector, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func lerp(a, b, u float64) float64 { return a*(1-u) + b*u }

func lerpVec(a, b r3.Vector, u float64) r3.Vector { return a.Mul(1 - u).Add(b.Mul(u)) }

// flipUV maps the second triangle of a split quad back onto the quad's
// bilinear domain.
func flipUV(uv r2.Point) r2.Point { return r2.Point{X: 1 - uv.X, Y: 1 - uv.Y} }

// unitOr normalizes v, or returns fallback when v is the zero vector.
func unitOr(v, fallback r3.Vector) r3.Vector {
	if v.Norm2() == 0 {
		return fallback
	}
	return v.Normalize()
}
