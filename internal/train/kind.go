// Package train wires datasets, models, losses and optimizers into the four
// gradient descent demos.
//
// A Session owns one demo's mutable training state. Every Step returns a
// Snapshot: an immutable copy of the model and counters that can be
// rendered or queried while training continues.
package train

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradviz/internal/dataset"
	"github.com/born-ml/gradviz/internal/nn"
	"github.com/born-ml/gradviz/internal/optim"
)

var (
	// ErrUnknownKind is returned by ParseKind for names it does not recognize.
	ErrUnknownKind = errors.New("unknown demo")
	// ErrEmptyDataset is returned by Step when there are no points to fit.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrInvalidLR is returned for non-positive learning rates.
	ErrInvalidLR = errors.New("learning rate must be positive")
)

// Kind selects one of the demos.
type Kind int

const (
	// KindLinear fits y = m*x + b with SGD on mean squared error.
	KindLinear Kind = iota
	// KindLogistic fits p = σ(w·x + b) on two Gaussian blobs with Adam.
	KindLogistic
	// KindXOR fits a 2-8-1 tanh MLP on the XOR quadrants with Adam.
	KindXOR
	// KindSpiral fits a 2-16-16-1 tanh MLP on the two-arm spiral with Adam.
	KindSpiral
)

var kindNames = map[Kind]string{
	KindLinear:   "linear",
	KindLogistic: "logistic",
	KindXOR:      "xor",
	KindSpiral:   "spiral",
}

// String returns the canonical name of the demo.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns all demos in declaration order.
func Kinds() []Kind {
	return []Kind{KindLinear, KindLogistic, KindXOR, KindSpiral}
}

// ParseKind resolves a demo by name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, kn := range kindNames {
		if kn == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// lossFunc is satisfied by nn.MSELoss and nn.BCELoss.
type lossFunc interface {
	Forward(predictions, targets *mat.Dense) float64
	Backward() *mat.Dense
}

// blueprint describes how a demo builds its data, model and optimizer.
type blueprint struct {
	shape      dataset.Shape
	lr         float64 // Default learning rate
	batchSize  int     // 0 means full batch
	regression bool    // Inputs are x only, targets are y
	model      func(rng nn.Rand) *nn.Sequential
	loss       func() lossFunc
	optimizer  func(params []*nn.Parameter, lr float64) optim.Optimizer
}

func sgd(params []*nn.Parameter, lr float64) optim.Optimizer {
	return optim.NewSGD(params, optim.SGDConfig{LR: lr})
}

func adam(params []*nn.Parameter, lr float64) optim.Optimizer {
	return optim.NewAdam(params, optim.AdamConfig{LR: lr})
}

func mse() lossFunc { return nn.NewMSELoss() }
func bce() lossFunc { return nn.NewBCELoss() }

var blueprints = map[Kind]blueprint{
	KindLinear: {
		shape:      dataset.ShapeLinear,
		lr:         0.1,
		regression: true,
		model: func(rng nn.Rand) *nn.Sequential {
			// Slope and intercept both start uniform in [-1, 1].
			return nn.NewSequential(nn.NewLinearFrom(
				nn.Uniform(1, 1, -1, 1, rng),
				nn.Uniform(1, 1, -1, 1, rng),
			))
		},
		loss:      mse,
		optimizer: sgd,
	},
	KindLogistic: {
		shape: dataset.ShapeBlobs,
		lr:    0.1,
		model: func(rng nn.Rand) *nn.Sequential {
			return nn.NewSequential(
				nn.NewLinearFrom(nn.Normal(1, 2, 0, 0.5, rng), nn.Zeros(1, 1)),
				nn.NewSigmoid(),
			)
		},
		loss:      bce,
		optimizer: adam,
	},
	KindXOR: {
		shape: dataset.ShapeXOR,
		lr:    0.05,
		model: func(rng nn.Rand) *nn.Sequential {
			return nn.NewSequential(
				nn.NewLinear(2, 8, rng),
				nn.NewTanh(),
				nn.NewLinear(8, 1, rng),
				nn.NewSigmoid(),
			)
		},
		loss:      bce,
		optimizer: adam,
	},
	KindSpiral: {
		shape:     dataset.ShapeSpiral,
		lr:        0.01,
		batchSize: 64,
		model: func(rng nn.Rand) *nn.Sequential {
			return nn.NewSequential(
				nn.NewLinear(2, 16, rng),
				nn.NewTanh(),
				nn.NewLinear(16, 16, rng),
				nn.NewTanh(),
				nn.NewLinear(16, 1, rng),
				nn.NewSigmoid(),
			)
		},
		loss:      bce,
		optimizer: adam,
	},
}

// DefaultLR returns the learning rate a demo starts with.
func (k Kind) DefaultLR() float64 {
	return blueprints[k].lr
}

// Shape returns the dataset a demo trains on.
func (k Kind) Shape() dataset.Shape {
	return blueprints[k].shape
}
