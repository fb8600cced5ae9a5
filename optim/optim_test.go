package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradviz/nn"
	"github.com/born-ml/gradviz/optim"
)

func param(v, g float64) *nn.Parameter {
	p := nn.NewLinearFrom(mat.NewDense(1, 1, []float64{v}), nn.Zeros(1, 1)).Weight()
	p.SetGrad(mat.NewDense(1, 1, []float64{g}))
	return p
}

func TestSGD_Momentum(t *testing.T) {
	p := param(1, 0.5)
	var opt optim.Optimizer = optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	opt.Step()
	assert.InDelta(t, 0.95, p.Value().At(0, 0), 1e-12)
	// v = 0.9*0.5 + 0.5
	opt.Step()
	assert.InDelta(t, 0.95-0.1*0.95, p.Value().At(0, 0), 1e-12)

	opt.SetLR(0.2)
	assert.Equal(t, 0.2, opt.GetLR())
	opt.ZeroGrad()
	assert.Nil(t, p.Grad())
}

func TestAdam_FirstStep(t *testing.T) {
	p := param(1, -3)
	opt := optim.NewAdam([]*nn.Parameter{p}, optim.AdamConfig{LR: 0.01})

	opt.Step()
	// Bias-corrected first step moves by lr * sign(grad).
	assert.InDelta(t, 1.01, p.Value().At(0, 0), 1e-6)
	assert.Equal(t, 1, opt.Timestep())
	assert.False(t, math.IsNaN(p.Value().At(0, 0)))
}
