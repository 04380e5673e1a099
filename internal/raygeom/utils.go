package raygeom

import (
	"math"

	"github.com/golang/geo/r1"
)

// unitInterval is the parametric domain of segments, triangles and patches.
var unitInterval = r1.Interval{Lo: 0, Hi: 1}

// sign treats zero as positive.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// wrap01 maps an atan2 angle to [0,1).
func wrap01(phi float64) float64 {
	u := phi / (2 * math.Pi)
	if u < 0 {
		u += 1
	}
	return u
}

func clamp(x, lo, hi float64) float64 { return r1.Interval{Lo: lo, Hi: hi}.ClampPoint(x) }
