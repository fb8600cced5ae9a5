package train

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/gradviz/internal/dataset"
	"github.com/born-ml/gradviz/internal/nn"
	"github.com/born-ml/gradviz/internal/optim"
	"github.com/born-ml/gradviz/internal/render"
)

// Config holds the tunable parameters of a Session.
//
// Zero values select the demo defaults.
type Config struct {
	LR        float64         // Learning rate (default: per demo)
	BatchSize int             // Minibatch size, 0 for the demo default
	Seed      int64           // Non-zero makes data, weights and shuffling reproducible
	Recipe    *dataset.Recipe // Dataset parameters (default: dataset.DefaultRecipe)
}

// Session is the training state of one demo.
//
// A Session is not safe for concurrent use; callers drive it from a single
// goroutine. Snapshots it returns are safe to share.
type Session struct {
	kind   Kind
	bp     blueprint
	recipe dataset.Recipe
	batch  int

	gen     *dataset.Generator
	initRng nn.Rand
	shuffle *rand.Rand

	points dataset.PointSet
	x, y   *mat.Dense

	model *nn.Sequential
	loss  lossFunc
	opt   optim.Optimizer
	lr    float64

	epoch    int
	lastLoss float64
}

// New creates a Session with a fresh dataset and freshly initialized model.
func New(kind Kind, cfg Config) (*Session, error) {
	bp, ok := blueprints[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}

	lr := cfg.LR
	if lr == 0 {
		lr = bp.lr
	}
	if lr < 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidLR, lr)
	}

	recipe := dataset.DefaultRecipe(bp.shape)
	if cfg.Recipe != nil {
		recipe = *cfg.Recipe
	}

	batch := bp.batchSize
	if cfg.BatchSize > 0 {
		batch = cfg.BatchSize
	}

	s := &Session{
		kind:   kind,
		bp:     bp,
		recipe: recipe,
		batch:  batch,
		loss:   bp.loss(),
		lr:     lr,
	}
	if cfg.Seed != 0 {
		s.gen = dataset.NewGenerator(cfg.Seed)
		s.initRng = nn.NewRand(cfg.Seed + 1)
		//nolint:gosec // Shuffling order, not security-critical.
		s.shuffle = rand.New(rand.NewSource(cfg.Seed + 2))
	} else {
		s.gen = dataset.NewGeneratorFrom(nil)
		//nolint:gosec // Shuffling order, not security-critical.
		s.shuffle = rand.New(rand.NewSource(rand.Int63()))
	}

	s.NewData()
	s.Reset()
	return s, nil
}

// Kind returns the demo this session runs.
func (s *Session) Kind() Kind {
	return s.kind
}

// Points returns the current dataset.
func (s *Session) Points() dataset.PointSet {
	return s.points
}

// Epoch returns the number of completed steps since the last Reset.
func (s *Session) Epoch() int {
	return s.epoch
}

// LR returns the current learning rate.
func (s *Session) LR() float64 {
	return s.lr
}

// NewData replaces the dataset with a freshly generated one.
//
// The model keeps its weights and the epoch counter is unchanged.
func (s *Session) NewData() {
	s.points = s.gen.Generate(s.bp.shape, s.recipe)
	if s.bp.regression {
		s.x = s.points.XColumn()
	} else {
		s.x = s.points.Features()
	}
	s.y = s.points.Targets()
}

// SetPoints replaces the dataset with caller-provided points.
func (s *Session) SetPoints(points dataset.PointSet) {
	s.points = points
	if s.bp.regression {
		s.x = points.XColumn()
	} else {
		s.x = points.Features()
	}
	s.y = points.Targets()
}

// Reset reinitializes the model weights and optimizer state and zeroes the
// epoch and loss counters. The dataset is kept.
func (s *Session) Reset() {
	s.model = s.bp.model(s.initRng)
	s.opt = s.bp.optimizer(s.model.Parameters(), s.lr)
	s.epoch = 0
	s.lastLoss = 0
}

// SetLR changes the learning rate.
//
// The optimizer is rebuilt, discarding momentum and moment estimates; the
// model weights are kept.
func (s *Session) SetLR(lr float64) error {
	if lr <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidLR, lr)
	}
	s.lr = lr
	s.opt = s.bp.optimizer(s.model.Parameters(), lr)
	return nil
}

// Step runs one epoch over the dataset and returns the resulting snapshot.
//
// Full-batch demos take a single optimizer step. Minibatch demos shuffle
// the data and take one step per batch; the reported loss is the mean of
// the batch losses weighted by batch size. Loss is measured before each
// update.
func (s *Session) Step() (Snapshot, error) {
	n := len(s.points)
	if n == 0 || s.x == nil {
		return Snapshot{}, ErrEmptyDataset
	}

	var loss float64
	if s.batch <= 0 || s.batch >= n {
		loss = s.update(s.x, s.y)
	} else {
		order := s.shuffle.Perm(n)
		total := 0.0
		for start := 0; start < n; start += s.batch {
			idx := order[start:min(start+s.batch, n)]
			bx, by := gatherRows(s.x, idx), gatherRows(s.y, idx)
			total += s.update(bx, by) * float64(len(idx))
		}
		loss = total / float64(n)
	}

	s.epoch++
	s.lastLoss = loss
	return s.Snapshot(), nil
}

// update performs forward, backward and one optimizer step on a batch.
func (s *Session) update(x, y *mat.Dense) float64 {
	s.opt.ZeroGrad()
	loss := s.loss.Forward(s.model.Forward(x), y)
	s.model.Backward(s.loss.Backward())
	s.opt.Step()
	return loss
}

// gatherRows copies the given rows of m into a new matrix.
func gatherRows(m *mat.Dense, idx []int) *mat.Dense {
	_, c := m.Dims()
	out := mat.NewDense(len(idx), c, nil)
	for i, r := range idx {
		out.SetRow(i, m.RawRowView(r))
	}
	return out
}

// Snapshot copies the current model and counters.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Kind:   s.kind,
		Epoch:  s.epoch,
		Loss:   s.lastLoss,
		LR:     s.lr,
		Params: s.model.StateDict(),
		model:  s.model.Clone(),
	}
}

// Scene builds the renderer input for a snapshot over the current points.
//
// The linear demo draws its fitted line; classifiers draw their decision
// boundary heatmap.
func (s *Session) Scene(snap Snapshot) render.Scene {
	scene := render.Scene{Points: s.points}
	if line, ok := snap.Line(); ok {
		scene.Line = &line
	} else if snap.model != nil {
		scene.Field = snap.Predict
	}
	return scene
}
