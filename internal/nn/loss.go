package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// bceEps keeps log() finite for saturated probabilities.
const bceEps = 1e-7

func checkSameShape(name string, a, b *mat.Dense) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		panic(fmt.Sprintf("%s: predictions [%d, %d] and targets [%d, %d] must have the same shape",
			name, ar, ac, br, bc))
	}
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss := mse.Forward(model.Forward(x), y)
//	model.Backward(mse.Backward())
type MSELoss struct {
	diff *mat.Dense
}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes the MSE loss and caches the residuals.
func (m *MSELoss) Forward(predictions, targets *mat.Dense) float64 {
	checkSameShape("MSELoss", predictions, targets)

	var diff mat.Dense
	diff.Sub(predictions, targets)
	m.diff = &diff

	r, c := diff.Dims()
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := diff.At(i, j)
			sum += v * v
		}
	}
	return sum / float64(r*c)
}

// Backward returns dLoss/dPredictions = 2 * (predictions - targets) / N.
func (m *MSELoss) Backward() *mat.Dense {
	if m.diff == nil {
		panic("MSELoss.Backward: called before Forward")
	}
	r, c := m.diff.Dims()
	var grad mat.Dense
	grad.Scale(2/float64(r*c), m.diff)
	return &grad
}

// BCELoss computes binary cross-entropy on probabilities.
//
// Loss = -mean(t*log(p) + (1-t)*log(1-p))
//
// Probabilities are clamped to [1e-7, 1-1e-7] before taking logs.
type BCELoss struct {
	predictions *mat.Dense
	targets     *mat.Dense
}

// NewBCELoss creates a new binary cross-entropy loss function.
func NewBCELoss() *BCELoss {
	return &BCELoss{}
}

// Forward computes the loss and caches its inputs.
func (b *BCELoss) Forward(predictions, targets *mat.Dense) float64 {
	checkSameShape("BCELoss", predictions, targets)
	b.predictions, b.targets = predictions, targets

	r, c := predictions.Dims()
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			p := clampProb(predictions.At(i, j))
			t := targets.At(i, j)
			sum += t*math.Log(p) + (1-t)*math.Log(1-p)
		}
	}
	return -sum / float64(r*c)
}

// Backward returns dLoss/dPredictions = (p - t) / (p(1-p)) / N.
func (b *BCELoss) Backward() *mat.Dense {
	if b.predictions == nil {
		panic("BCELoss.Backward: called before Forward")
	}
	r, c := b.predictions.Dims()
	n := float64(r * c)
	var grad mat.Dense
	grad.Apply(func(i, j int, v float64) float64 {
		p := clampProb(v)
		t := b.targets.At(i, j)
		return (p - t) / (p * (1 - p)) / n
	}, b.predictions)
	return &grad
}

func clampProb(p float64) float64 {
	return math.Max(bceEps, math.Min(1-bceEps, p))
}
