// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradviz/internal/nn"
)

// Module is the interface implemented by every layer and activation.
type Module = nn.Module

// Parameter is a trainable matrix with its accumulated gradient.
type Parameter = nn.Parameter

// Rand is the random source used for weight initialization.
type Rand = nn.Rand

// Layers

// Linear is a fully connected layer computing x·Wᵀ + b.
type Linear = nn.Linear

// NewLinear creates a Linear layer with Xavier weights and zero bias.
func NewLinear(inFeatures, outFeatures int, rng Rand) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, rng)
}

// NewLinearFrom creates a Linear layer from existing weights [out, in] and
// bias [1, out]. It panics if the shapes disagree.
func NewLinearFrom(weight, bias *mat.Dense) *Linear {
	return nn.NewLinearFrom(weight, bias)
}

// Sequential chains modules.
type Sequential = nn.Sequential

// NewSequential creates a Sequential container.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 16, rng),
//	    nn.NewTanh(),
//	    nn.NewLinear(16, 1, rng),
//	    nn.NewSigmoid(),
//	)
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Activations

// ReLU applies max(0, x).
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation.
func NewReLU() *ReLU { return nn.NewReLU() }

// Sigmoid applies 1/(1+exp(-x)).
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() *Sigmoid { return nn.NewSigmoid() }

// Tanh applies the hyperbolic tangent.
type Tanh = nn.Tanh

// NewTanh creates a Tanh activation.
func NewTanh() *Tanh { return nn.NewTanh() }

// Losses

// MSELoss is the mean squared error.
type MSELoss = nn.MSELoss

// NewMSELoss creates a mean squared error loss.
func NewMSELoss() *MSELoss { return nn.NewMSELoss() }

// BCELoss is the binary cross entropy over probabilities.
type BCELoss = nn.BCELoss

// NewBCELoss creates a binary cross entropy loss.
func NewBCELoss() *BCELoss { return nn.NewBCELoss() }

// Initialization

// NewRand returns a seeded Rand.
func NewRand(seed int64) Rand { return nn.NewRand(seed) }

// Xavier returns a [fanOut, fanIn] matrix drawn from the Xavier uniform range.
func Xavier(fanIn, fanOut int, rng Rand) *mat.Dense { return nn.Xavier(fanIn, fanOut, rng) }

// Uniform returns a rows×cols matrix drawn from U[lo, hi).
func Uniform(rows, cols int, lo, hi float64, rng Rand) *mat.Dense {
	return nn.Uniform(rows, cols, lo, hi, rng)
}

// Normal returns a rows×cols matrix drawn from N(mean, std²).
func Normal(rows, cols int, mean, std float64, rng Rand) *mat.Dense {
	return nn.Normal(rows, cols, mean, std, rng)
}

// Zeros returns a rows×cols zero matrix.
func Zeros(rows, cols int) *mat.Dense { return nn.Zeros(rows, cols) }

// ZeroGrad clears the gradients of params.
func ZeroGrad(params []*Parameter) { nn.ZeroGrad(params) }
