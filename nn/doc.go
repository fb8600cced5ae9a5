// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the small dense networks trained by the gradviz demos.
//
// # Overview
//
// This package contains:
//   - Layers: Linear
//   - Activations: ReLU, Sigmoid, Tanh
//   - Loss functions: MSELoss, BCELoss
//   - Utilities: Sequential, Module interface, Parameter
//   - Initialization: Xavier, Uniform, Normal, Zeros
//
// Values are gonum matrices laid out as [batch, features]. Every module
// caches what it needs during Forward and computes gradients explicitly in
// Backward, so no graph is recorded.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/gradviz/nn"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    rng := nn.NewRand(1)
//
//	    model := nn.NewSequential(
//	        nn.NewLinear(2, 8, rng),
//	        nn.NewTanh(),
//	        nn.NewLinear(8, 1, rng),
//	        nn.NewSigmoid(),
//	    )
//	    criterion := nn.NewBCELoss()
//
//	    x := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
//	    y := mat.NewDense(4, 1, []float64{0, 1, 1, 0})
//
//	    nn.ZeroGrad(model.Parameters())
//	    loss := criterion.Forward(model.Forward(x), y)
//	    model.Backward(criterion.Backward())
//	    _ = loss
//	}
//
// # Gradients
//
// Backward accumulates into Parameter gradients. Call ZeroGrad (or the
// optimizer's ZeroGrad) before each forward/backward pair.
//
// # Evaluation
//
// Eval computes the same output as Forward without touching the cached
// activations, so it is safe to call from several goroutines on a model
// that is not being trained.
package nn
