package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradviz/nn"
	"github.com/born-ml/gradviz/optim"
)

func TestPublicAPI_TrainsXOR(t *testing.T) {
	rng := nn.NewRand(7)
	model := nn.NewSequential(
		nn.NewLinear(2, 8, rng),
		nn.NewTanh(),
		nn.NewLinear(8, 1, rng),
		nn.NewSigmoid(),
	)
	criterion := nn.NewBCELoss()
	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.05})

	x := mat.NewDense(4, 2, []float64{-1, -1, -1, 1, 1, -1, 1, 1})
	y := mat.NewDense(4, 1, []float64{0, 1, 1, 0})

	var first, last float64
	for epoch := 0; epoch < 500; epoch++ {
		optimizer.ZeroGrad()
		loss := criterion.Forward(model.Forward(x), y)
		model.Backward(criterion.Backward())
		optimizer.Step()

		if epoch == 0 {
			first = loss
		}
		last = loss
	}
	assert.Less(t, last, first/4)

	out := model.Eval(x)
	for i, want := range []float64{0, 1, 1, 0} {
		assert.InDelta(t, want, out.At(i, 0), 0.3, "row %d", i)
	}
}

func TestPublicAPI_LinearFrom(t *testing.T) {
	w := mat.NewDense(1, 1, []float64{2})
	b := mat.NewDense(1, 1, []float64{-1})
	layer := nn.NewLinearFrom(w, b)

	out := layer.Eval(mat.NewDense(2, 1, []float64{0, 3}))
	assert.Equal(t, -1.0, out.At(0, 0))
	assert.Equal(t, 5.0, out.At(1, 0))

	require.Len(t, layer.Parameters(), 2)
	assert.Panics(t, func() { nn.NewLinearFrom(w, mat.NewDense(1, 2, nil)) })
}

func TestPublicAPI_SGD(t *testing.T) {
	layer := nn.NewLinearFrom(nn.Zeros(1, 1), nn.Zeros(1, 1))
	criterion := nn.NewMSELoss()
	opt := optim.NewSGD(layer.Parameters(), optim.SGDConfig{LR: 0.1})

	x := mat.NewDense(3, 1, []float64{-1, 0, 1})
	y := mat.NewDense(3, 1, []float64{-2, 0, 2})
	for i := 0; i < 300; i++ {
		opt.ZeroGrad()
		criterion.Forward(layer.Forward(x), y)
		layer.Backward(criterion.Backward())
		opt.Step()
	}
	assert.InDelta(t, 2.0, layer.Parameters()[0].Value().At(0, 0), 1e-3)
	assert.Equal(t, 0.1, opt.GetLR())
}
