package probe

import (
	"math"
	"math/rand"
	"time"

	"github.com/golang/geo/r3"

	"github.com/lukaszgryglicki/raygeom/internal/raygeom"
)

// estimateCoverage fires trials random rays from a sphere around the scene
// bounds towards random points inside them, and returns the fraction that
// hit something.
func (s *Scene) estimateCoverage(trials, workers int) float64 {
	if trials <= 0 || s.Bounds.IsEmpty() {
		return 0
	}
	if workers < 1 || workers > trials {
		workers = trials
	}
	center := s.Bounds.Center()
	radius := CoverageMargin * s.Bounds.Size().Norm() / 2
	if radius == 0 {
		radius = 1
	}

	// independent RNG and counter per worker
	rngs := make([]*rand.Rand, workers)
	hits := make([]int, workers)
	for w := range rngs {
		seed := time.Now().UnixNano() ^ int64(uint64(w)*0x9e3779b97f4a7c15)
		rngs[w] = rand.New(rand.NewSource(seed))
	}

	forEach(trials, workers, func(w, _ int) {
		rng := rngs[w]
		origin := center.Add(randomUnit(rng).Mul(radius))
		target := r3.Vector{
			X: s.Bounds.Min.X + rng.Float64()*(s.Bounds.Max.X-s.Bounds.Min.X),
			Y: s.Bounds.Min.Y + rng.Float64()*(s.Bounds.Max.Y-s.Bounds.Min.Y),
			Z: s.Bounds.Min.Z + rng.Float64()*(s.Bounds.Max.Z-s.Bounds.Min.Z),
		}
		dir := target.Sub(origin)
		if dir.Norm2() == 0 {
			return
		}
		if r, _ := s.Trace(raygeom.NewRay(origin, dir)); r.OK() {
			hits[w]++
		}
	})

	total := 0
	for _, h := range hits {
		total += h
	}
	return float64(total) / float64(trials)
}

// randomUnit is uniform on the unit sphere.
func randomUnit(rng *rand.Rand) r3.Vector {
	z := 2*rng.Float64() - 1
	phi := 2 * math.Pi * rng.Float64()
	s := math.Sqrt(1 - z*z)
	return r3.Vector{X: s * math.Cos(phi), Y: s * math.Sin(phi), Z: z}
}
