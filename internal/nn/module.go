// Package nn implements the small neural network toolkit behind the demos.
//
// This package provides building blocks for fully connected networks:
//   - Module interface: Forward/Backward/Eval over row-major batches
//   - Parameter: Trainable matrix with an accumulated gradient
//   - Linear: Fully connected layer
//   - Activations: ReLU, Sigmoid, Tanh
//   - Loss functions: MSELoss, BCELoss
//   - Sequential: Container for stacking layers
//
// Batches are gonum matrices with one sample per row. Gradients are computed
// by an explicit backward pass through the cached forward activations.
package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute output from input and cache what Backward needs
//   - Backward: Propagate the output gradient, accumulating parameter gradients
//   - Eval: Compute output without touching any cached state
//   - Parameters: Return all trainable parameters
//   - Clone: Deep copy, parameters included
//
// Modules can be composed to build small architectures:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 8, rng),
//	    nn.NewTanh(),
//	    nn.NewLinear(8, 1, rng),
//	    nn.NewSigmoid(),
//	)
type Module interface {
	// Forward computes the output for a batch of shape [batch, in].
	Forward(input *mat.Dense) *mat.Dense

	// Backward takes dLoss/dOutput for the last Forward call and returns
	// dLoss/dInput. Parameter gradients are added to Parameter.Grad.
	Backward(gradOutput *mat.Dense) *mat.Dense

	// Eval computes the output like Forward but keeps no state, so it is
	// safe to call from several goroutines at once.
	Eval(input *mat.Dense) *mat.Dense

	// Parameters returns all trainable parameters of this module.
	//
	// Returns an empty slice for modules without trainable parameters
	// (e.g., activation functions).
	Parameters() []*Parameter

	// Clone returns an independent deep copy of the module.
	Clone() Module
}

// ZeroGrad clears the gradients of every parameter.
func ZeroGrad(params []*Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
