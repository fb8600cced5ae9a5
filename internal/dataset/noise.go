package dataset

import (
	"math"
	"math/rand"
)

// Source supplies uniform samples in [0, 1).
//
// *rand.Rand satisfies Source.
type Source interface {
	Float64() float64
}

// globalSource draws from the process-wide math/rand source.
type globalSource struct{}

func (globalSource) Float64() float64 {
	//nolint:gosec // Synthetic data, not security-critical.
	return rand.Float64()
}

// Gaussian draws a sample from N(mu, sigma²) with the Box-Muller transform.
//
// Both uniforms are redrawn while exactly zero so that log(u) stays finite.
func Gaussian(src Source, mu, sigma float64) float64 {
	var u, v float64
	for u == 0 {
		u = src.Float64()
	}
	for v == 0 {
		v = src.Float64()
	}
	z := math.Sqrt(-2.0*math.Log(u)) * math.Cos(2.0*math.Pi*v)
	return mu + z*sigma
}

// gaussian2D draws an isotropic 2D sample around (mx, my).
func gaussian2D(src Source, mx, my, sigma float64) (float64, float64) {
	return Gaussian(src, mx, sigma), Gaussian(src, my, sigma)
}
