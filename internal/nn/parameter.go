package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters typically represent weights and biases of layers.
//
// Example:
//
//	weight := nn.NewParameter("weight", mat.NewDense(1, 2, []float64{0.1, -0.2}))
//	w := weight.Value()
//	grad := weight.Grad() // nil until a backward pass
type Parameter struct {
	name  string     // Parameter name (e.g., "weight", "bias")
	value *mat.Dense // The parameter values
	grad  *mat.Dense // Accumulated gradient, nil when cleared
}

// NewParameter creates a new trainable parameter.
//
// Gradient will be allocated during the first backward pass.
func NewParameter(name string, value *mat.Dense) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
//
// Optimizers update it in place.
func (p *Parameter) Value() *mat.Dense {
	return p.value
}

// Grad returns the gradient.
//
// Returns nil if no gradient has been computed since the last ZeroGrad.
func (p *Parameter) Grad() *mat.Dense {
	return p.grad
}

// SetGrad replaces the gradient.
func (p *Parameter) SetGrad(grad *mat.Dense) {
	p.grad = grad
}

// AccumulateGrad adds g to the gradient, allocating it on first use.
func (p *Parameter) AccumulateGrad(g mat.Matrix) {
	if p.grad == nil {
		p.grad = mat.DenseCopyOf(g)
		return
	}
	p.grad.Add(p.grad, g)
}

// ZeroGrad clears the gradient.
//
// This should be called before each training iteration to avoid
// accumulating gradients from previous iterations.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}

// Clone returns a copy with the same name and values and no gradient.
func (p *Parameter) Clone() *Parameter {
	return NewParameter(p.name, mat.DenseCopyOf(p.value))
}
