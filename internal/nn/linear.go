package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W.T + b
// where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias row with shape [1, out_features]
//   - y is the output with shape [batch_size, out_features]
//
// Example:
//
//	layer := nn.NewLinear(2, 16, rng)
//	output := layer.Forward(batch) // [batch, 16]
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [out_features, in_features]
	bias        *Parameter // [1, out_features]

	input *mat.Dense // Cached by Forward for Backward
}

// NewLinear creates a new Linear layer.
//
// Weights are initialized using Xavier/Glorot uniform distribution.
// Biases are initialized to zeros.
func NewLinear(inFeatures, outFeatures int, rng Rand) *Linear {
	return NewLinearFrom(Xavier(inFeatures, outFeatures, rng), Zeros(1, outFeatures))
}

// NewLinearFrom creates a Linear layer around explicit initial values.
//
// weight must be [out, in] and bias [1, out]; the layer takes ownership.
func NewLinearFrom(weight, bias *mat.Dense) *Linear {
	out, in := weight.Dims()
	br, bc := bias.Dims()
	if br != 1 || bc != out {
		panic(fmt.Sprintf("NewLinearFrom: bias shape [%d, %d] does not match %d outputs", br, bc, out))
	}
	return &Linear{
		inFeatures:  in,
		outFeatures: out,
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
	}
}

// Forward computes y = x @ W.T + b and caches x.
func (l *Linear) Forward(input *mat.Dense) *mat.Dense {
	l.input = input
	return l.Eval(input)
}

// Eval computes y = x @ W.T + b.
func (l *Linear) Eval(input *mat.Dense) *mat.Dense {
	_, cols := input.Dims()
	if cols != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected input with %d features, got %d", l.inFeatures, cols))
	}

	var out mat.Dense
	out.Mul(input, l.weight.Value().T())

	b := l.bias.Value().RawRowView(0)
	out.Apply(func(_, j int, v float64) float64 {
		return v + b[j]
	}, &out)
	return &out
}

// Backward accumulates dW = dY.T @ x and db = sum over rows of dY, and
// returns dX = dY @ W.
func (l *Linear) Backward(gradOutput *mat.Dense) *mat.Dense {
	if l.input == nil {
		panic("Linear.Backward: called before Forward")
	}

	var dW mat.Dense
	dW.Mul(gradOutput.T(), l.input)
	l.weight.AccumulateGrad(&dW)

	rows, _ := gradOutput.Dims()
	db := mat.NewDense(1, l.outFeatures, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < l.outFeatures; j++ {
			db.Set(0, j, db.At(0, j)+gradOutput.At(i, j))
		}
	}
	l.bias.AccumulateGrad(db)

	var dX mat.Dense
	dX.Mul(gradOutput, l.weight.Value())
	return &dX
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Clone returns a deep copy of the layer without cached state.
func (l *Linear) Clone() Module {
	return NewLinearFrom(mat.DenseCopyOf(l.weight.Value()), mat.DenseCopyOf(l.bias.Value()))
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// StateDict returns copies of the parameters keyed by name.
func (l *Linear) StateDict() map[string]*mat.Dense {
	return map[string]*mat.Dense{
		"weight": mat.DenseCopyOf(l.weight.Value()),
		"bias":   mat.DenseCopyOf(l.bias.Value()),
	}
}

// LoadStateDict copies parameters from a state dictionary.
func (l *Linear) LoadStateDict(stateDict map[string]*mat.Dense) error {
	for _, p := range l.Parameters() {
		src, ok := stateDict[p.Name()]
		if !ok {
			return fmt.Errorf("missing %s in state dict", p.Name())
		}
		wr, wc := p.Value().Dims()
		sr, sc := src.Dims()
		if wr != sr || wc != sc {
			return fmt.Errorf("%s shape mismatch: expected [%d, %d], got [%d, %d]",
				p.Name(), wr, wc, sr, sc)
		}
		p.Value().Copy(src)
	}
	return nil
}
