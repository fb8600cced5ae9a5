package train

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradviz/internal/dataset"
	"github.com/born-ml/gradviz/internal/nn"
	"github.com/born-ml/gradviz/internal/render"
)

// Snapshot is an immutable copy of a session's state after a step.
//
// Predict only reads the copied model, so a Snapshot may be queried from
// several goroutines while the session keeps training.
type Snapshot struct {
	Kind   Kind
	Epoch  int
	Loss   float64
	LR     float64
	Params map[string]*mat.Dense // Copies keyed "{layer}.{weight|bias}"

	model nn.Module
}

// Predict evaluates the model at (x, y).
//
// Classifiers return P(class 1). The linear demo ignores y and returns the
// fitted value at x. A zero Snapshot returns NaN.
func (s Snapshot) Predict(x, y float64) float64 {
	if s.model == nil {
		return math.NaN()
	}
	var in *mat.Dense
	if s.Kind == KindLinear {
		in = mat.NewDense(1, 1, []float64{x})
	} else {
		in = mat.NewDense(1, 2, []float64{x, y})
	}
	return s.model.Eval(in).At(0, 0)
}

// Line returns the fitted line of the linear demo.
func (s Snapshot) Line() (render.LineParams, bool) {
	if s.Kind != KindLinear {
		return render.LineParams{}, false
	}
	w, okW := s.Params["0.weight"]
	b, okB := s.Params["0.bias"]
	if !okW || !okB {
		return render.LineParams{}, false
	}
	return render.LineParams{M: w.At(0, 0), B: b.At(0, 0)}, true
}

// WeightNorm returns the Euclidean norm of the first layer's weights.
func (s Snapshot) WeightNorm() float64 {
	w, ok := s.Params["0.weight"]
	if !ok {
		return 0
	}
	return mat.Norm(w, 2)
}

// Bias returns the first bias of the first layer.
func (s Snapshot) Bias() float64 {
	b, ok := s.Params["0.bias"]
	if !ok {
		return 0
	}
	return b.At(0, 0)
}

// Counters returns the demo-specific values shown next to the loss, as
// alternating key/value pairs for structured logging.
//
// The linear demo reports slope m and intercept b; the logistic demo
// reports the weight norm w_norm and bias b. Other demos report nothing.
func (s Snapshot) Counters() []any {
	switch s.Kind {
	case KindLinear:
		if line, ok := s.Line(); ok {
			return []any{"m", line.M, "b", line.B}
		}
	case KindLogistic:
		if _, ok := s.Params["0.weight"]; ok {
			return []any{"w_norm", s.WeightNorm(), "b", s.Bias()}
		}
	}
	return nil
}

// Accuracy returns the fraction of labeled points classified correctly at
// threshold 0.5. Returns NaN for the linear demo or when there are no
// labeled points.
func (s Snapshot) Accuracy(points dataset.PointSet) float64 {
	if s.Kind == KindLinear {
		return math.NaN()
	}
	total, correct := 0, 0
	for _, p := range points {
		if !p.Labeled() {
			continue
		}
		total++
		pred := dataset.Class0
		if s.Predict(p.X, p.Y) >= 0.5 {
			pred = dataset.Class1
		}
		if pred == p.Label {
			correct++
		}
	}
	if total == 0 {
		return math.NaN()
	}
	return float64(correct) / float64(total)
}
