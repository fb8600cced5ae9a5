// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the optimizers used by the gradviz demos.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	model := nn.NewSequential(nn.NewLinear(2, 1, rng), nn.NewSigmoid())
//	criterion := nn.NewBCELoss()
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.1})
//
//	for epoch := range 200 {
//	    // 1. Zero gradients
//	    optimizer.ZeroGrad()
//
//	    // 2. Forward pass
//	    loss := criterion.Forward(model.Forward(x), y)
//
//	    // 3. Backward pass
//	    model.Backward(criterion.Backward())
//
//	    // 4. Update parameters
//	    optimizer.Step()
//	}
//
// # Learning Rate
//
// SetLR changes the rate in place and keeps the optimizer state (momentum
// buffers, Adam moments). Build a new optimizer to start from scratch.
package optim
