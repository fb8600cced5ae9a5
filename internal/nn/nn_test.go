package nn_test

import (
	"testing"

	"github.com/born-ml/gradviz/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestParameter(t *testing.T) {
	value := mat.NewDense(1, 3, []float64{1, 2, 3})
	param := nn.NewParameter("test_param", value)

	assert.Equal(t, "test_param", param.Name())
	assert.Same(t, value, param.Value())
	assert.Nil(t, param.Grad())

	param.AccumulateGrad(mat.NewDense(1, 3, []float64{1, 1, 1}))
	param.AccumulateGrad(mat.NewDense(1, 3, []float64{0.5, 0, -1}))
	assert.Equal(t, []float64{1.5, 1, 0}, param.Grad().RawMatrix().Data)

	clone := param.Clone()
	assert.Nil(t, clone.Grad())
	clone.Value().Set(0, 0, 99)
	assert.Equal(t, 1.0, param.Value().At(0, 0))

	param.ZeroGrad()
	assert.Nil(t, param.Grad())
}

func TestLinear_Forward(t *testing.T) {
	// W = [[1, 2], [3, 4], [5, 6]], b = [0.1, 0.2, 0.3]
	w := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	b := mat.NewDense(1, 3, []float64{0.1, 0.2, 0.3})
	layer := nn.NewLinearFrom(w, b)

	assert.Equal(t, 2, layer.InFeatures())
	assert.Equal(t, 3, layer.OutFeatures())

	x := mat.NewDense(2, 2, []float64{1, 0, 1, 1})
	y := layer.Forward(x)

	expected := mat.NewDense(2, 3, []float64{
		1.1, 3.2, 5.3,
		3.1, 7.2, 11.3,
	})
	assert.True(t, mat.EqualApprox(expected, y, 1e-12))
}

func TestLinear_Backward(t *testing.T) {
	w := mat.NewDense(1, 2, []float64{2, -1})
	b := mat.NewDense(1, 1, []float64{0.5})
	layer := nn.NewLinearFrom(w, b)

	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	layer.Forward(x)
	dX := layer.Backward(mat.NewDense(2, 1, []float64{1, -1}))

	// dW = dY.T @ x = [1*1 - 1*3, 1*2 - 1*4]
	assert.Equal(t, []float64{-2, -2}, layer.Weight().Grad().RawMatrix().Data)
	assert.Equal(t, []float64{0}, layer.Bias().Grad().RawMatrix().Data)
	// dX = dY @ W
	assert.Equal(t, []float64{2, -1, -2, 1}, dX.RawMatrix().Data)
}

func TestLinear_ShapeMismatchPanics(t *testing.T) {
	layer := nn.NewLinear(2, 4, nn.NewRand(1))
	assert.Panics(t, func() {
		layer.Forward(mat.NewDense(1, 3, nil))
	})
	assert.Panics(t, func() {
		nn.NewLinearFrom(mat.NewDense(2, 2, nil), mat.NewDense(1, 3, nil))
	})
}

func TestXavierBounds(t *testing.T) {
	w := nn.Xavier(16, 16, nn.NewRand(3))
	r, c := w.Dims()
	require.Equal(t, 16, r)
	require.Equal(t, 16, c)

	bound := 0.4330127018922193 // sqrt(6/32)
	for _, v := range w.RawMatrix().Data {
		assert.LessOrEqual(t, v, bound)
		assert.GreaterOrEqual(t, v, -bound)
	}
}

func TestSequential_CloneIsIndependent(t *testing.T) {
	rng := nn.NewRand(4)
	model := nn.NewSequential(nn.NewLinear(2, 4, rng), nn.NewTanh(), nn.NewLinear(4, 1, rng), nn.NewSigmoid())
	clone := model.Clone()

	x := mat.NewDense(1, 2, []float64{0.3, -0.7})
	before := clone.Eval(x).At(0, 0)
	assert.InDelta(t, model.Eval(x).At(0, 0), before, 1e-15)

	for _, p := range model.Parameters() {
		p.Value().Scale(3, p.Value())
	}
	assert.Equal(t, before, clone.Eval(x).At(0, 0))
	assert.Len(t, model.Parameters(), 4)
}

func TestSequential_Modules(t *testing.T) {
	rng := nn.NewRand(5)
	first := nn.NewLinear(2, 3, rng)
	model := nn.NewSequential(first, nn.NewReLU(), nn.NewLinear(3, 1, rng))

	modules := model.Modules()
	require.Len(t, modules, model.Len())
	assert.Same(t, first, modules[0])
	assert.IsType(t, &nn.ReLU{}, modules[1])
	assert.Empty(t, modules[1].Parameters())
}

func TestSequential_StateDictRoundTrip(t *testing.T) {
	src := nn.NewSequential(nn.NewLinear(2, 3, nn.NewRand(1)), nn.NewReLU(), nn.NewLinear(3, 1, nn.NewRand(2)))
	dst := nn.NewSequential(nn.NewLinear(2, 3, nn.NewRand(5)), nn.NewReLU(), nn.NewLinear(3, 1, nn.NewRand(6)))

	state := src.StateDict()
	assert.Contains(t, state, "0.weight")
	assert.Contains(t, state, "2.bias")
	require.NoError(t, dst.LoadStateDict(state))

	x := mat.NewDense(1, 2, []float64{0.25, 0.5})
	assert.Equal(t, src.Eval(x).At(0, 0), dst.Eval(x).At(0, 0))

	delete(state, "2.bias")
	err := dst.LoadStateDict(state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module 2")
}

func TestMSELoss(t *testing.T) {
	mse := nn.NewMSELoss()
	pred := mat.NewDense(2, 1, []float64{1, 3})
	target := mat.NewDense(2, 1, []float64{0, 1})

	// ((1)² + (2)²) / 2
	assert.InDelta(t, 2.5, mse.Forward(pred, target), 1e-12)
	assert.Equal(t, []float64{1, 2}, mse.Backward().RawMatrix().Data)

	assert.Panics(t, func() { mse.Forward(pred, mat.NewDense(1, 1, nil)) })
}

func TestBCELoss(t *testing.T) {
	bce := nn.NewBCELoss()
	pred := mat.NewDense(2, 1, []float64{0.8, 0.4})
	target := mat.NewDense(2, 1, []float64{1, 0})

	expected := -(0.22314355131420976*-1 + 0.5108256237659907*-1) / 2
	assert.InDelta(t, expected, bce.Forward(pred, target), 1e-9)

	grad := bce.Backward()
	assert.InDelta(t, (0.8-1)/(0.8*0.2)/2, grad.At(0, 0), 1e-12)
	assert.InDelta(t, (0.4-0)/(0.4*0.6)/2, grad.At(1, 0), 1e-12)
}

func TestBCELoss_SaturatedIsFinite(t *testing.T) {
	bce := nn.NewBCELoss()
	loss := bce.Forward(mat.NewDense(2, 1, []float64{0, 1}), mat.NewDense(2, 1, []float64{1, 0}))
	assert.False(t, loss != loss, "loss is NaN")
	assert.Less(t, loss, 20.0)
}
