package nn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Rand is the randomness used for weight initialization.
//
// *rand.Rand satisfies Rand. A nil Rand uses the process-wide source.
type Rand interface {
	Float64() float64
	NormFloat64() float64
}

type globalRand struct{}

//nolint:gosec // Using math/rand for weight initialization (not security-critical)
func (globalRand) Float64() float64 { return rand.Float64() }

//nolint:gosec // Using math/rand for weight initialization (not security-critical)
func (globalRand) NormFloat64() float64 { return rand.NormFloat64() }

func orGlobal(rng Rand) Rand {
	if rng == nil {
		return globalRand{}
	}
	return rng
}

// NewRand returns a seeded Rand.
func NewRand(seed int64) Rand {
	//nolint:gosec // Deterministic initialization for reproducible runs.
	return rand.New(rand.NewSource(seed))
}

// Xavier (Glorot) initialization for weights.
//
// Initializes a [fanOut, fanIn] matrix with values drawn from
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
func Xavier(fanIn, fanOut int, rng Rand) *mat.Dense {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return Uniform(fanOut, fanIn, -bound, bound, rng)
}

// Uniform creates a rows×cols matrix with values drawn from U(lo, hi).
func Uniform(rows, cols int, lo, hi float64, rng Rand) *mat.Dense {
	rng = orGlobal(rng)
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = lo + rng.Float64()*(hi-lo)
	}
	return mat.NewDense(rows, cols, data)
}

// Normal creates a rows×cols matrix with values drawn from N(mean, std²).
func Normal(rows, cols int, mean, std float64, rng Rand) *mat.Dense {
	rng = orGlobal(rng)
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = mean + std*rng.NormFloat64()
	}
	return mat.NewDense(rows, cols, data)
}

// Zeros creates a rows×cols matrix filled with zeros.
//
// This is commonly used for bias initialization.
func Zeros(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}
