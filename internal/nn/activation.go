package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// apply returns f applied element-wise to m.
func apply(m *mat.Dense, f func(float64) float64) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return f(v)
	}, m)
	return &out
}

// sigmoid computes σ(x) = 1 / (1 + exp(-x)).
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
type ReLU struct {
	input *mat.Dense
}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU activation and caches the input.
func (r *ReLU) Forward(input *mat.Dense) *mat.Dense {
	r.input = input
	return r.Eval(input)
}

// Eval applies ReLU activation.
func (r *ReLU) Eval(input *mat.Dense) *mat.Dense {
	return apply(input, func(v float64) float64 { return math.Max(0, v) })
}

// Backward passes the gradient through where the input was positive.
func (r *ReLU) Backward(gradOutput *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(i, j int, g float64) float64 {
		if r.input.At(i, j) > 0 {
			return g
		}
		return 0
	}, gradOutput)
	return &out
}

// Parameters returns nil (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*Parameter { return nil }

// Clone returns a fresh ReLU.
func (r *ReLU) Clone() Module { return NewReLU() }

// Sigmoid is a sigmoid activation module.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values to the range (0, 1), making it the output layer
// of the binary classifiers.
type Sigmoid struct {
	output *mat.Dense
}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies sigmoid and caches the output.
func (s *Sigmoid) Forward(input *mat.Dense) *mat.Dense {
	s.output = s.Eval(input)
	return s.output
}

// Eval applies sigmoid.
func (s *Sigmoid) Eval(input *mat.Dense) *mat.Dense {
	return apply(input, sigmoid)
}

// Backward computes dY ⊙ σ(x)(1 - σ(x)).
func (s *Sigmoid) Backward(gradOutput *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(i, j int, g float64) float64 {
		y := s.output.At(i, j)
		return g * y * (1 - y)
	}, gradOutput)
	return &out
}

// Parameters returns nil (Sigmoid has no trainable parameters).
func (s *Sigmoid) Parameters() []*Parameter { return nil }

// Clone returns a fresh Sigmoid.
func (s *Sigmoid) Clone() Module { return NewSigmoid() }

// Tanh is a hyperbolic tangent activation module.
//
// Applies the element-wise function: tanh(x), with range (-1, 1).
type Tanh struct {
	output *mat.Dense
}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies tanh and caches the output.
func (t *Tanh) Forward(input *mat.Dense) *mat.Dense {
	t.output = t.Eval(input)
	return t.output
}

// Eval applies tanh.
func (t *Tanh) Eval(input *mat.Dense) *mat.Dense {
	return apply(input, math.Tanh)
}

// Backward computes dY ⊙ (1 - tanh²(x)).
func (t *Tanh) Backward(gradOutput *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(i, j int, g float64) float64 {
		y := t.output.At(i, j)
		return g * (1 - y*y)
	}, gradOutput)
	return &out
}

// Parameters returns nil (Tanh has no trainable parameters).
func (t *Tanh) Parameters() []*Parameter { return nil }

// Clone returns a fresh Tanh.
func (t *Tanh) Clone() Module { return NewTanh() }
