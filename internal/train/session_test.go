package train

import (
	"math"
	"testing"

	"github.com/born-ml/gradviz/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, kind Kind, seed int64) *Session {
	t.Helper()
	s, err := New(kind, Config{Seed: seed})
	require.NoError(t, err)
	return s
}

func run(t *testing.T, s *Session, steps int) (first, last Snapshot) {
	t.Helper()
	for i := 0; i < steps; i++ {
		snap, err := s.Step()
		require.NoError(t, err)
		if i == 0 {
			first = snap
		}
		last = snap
	}
	return first, last
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("moons")
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = New(Kind(42), Config{})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestNew_Defaults(t *testing.T) {
	sizes := map[Kind]int{
		KindLinear:   100,
		KindLogistic: 240,
		KindXOR:      120,
		KindSpiral:   300,
	}
	for kind, n := range sizes {
		s := newSession(t, kind, 1)
		assert.Len(t, s.Points(), n, kind.String())
		assert.Equal(t, kind.DefaultLR(), s.LR())
		assert.Equal(t, 0, s.Epoch())
	}

	_, err := New(KindXOR, Config{LR: -1})
	assert.ErrorIs(t, err, ErrInvalidLR)
}

func TestLinear_Converges(t *testing.T) {
	s := newSession(t, KindLinear, 3)
	first, last := run(t, s, 300)

	assert.Equal(t, 300, last.Epoch)
	assert.Less(t, last.Loss, first.Loss)
	assert.Less(t, last.Loss, 0.01)

	line, ok := last.Line()
	require.True(t, ok)
	// Normalizing y = 1.8x - 0.3 over x in [-1, 1] gives a slope near 1.
	assert.InDelta(t, 1.0, line.M, 0.15)
	assert.InDelta(t, line.At(0.3), last.Predict(0.3, 123), 1e-12)
}

func TestLogistic_Separates(t *testing.T) {
	s := newSession(t, KindLogistic, 4)
	first, last := run(t, s, 200)

	assert.Less(t, last.Loss, first.Loss)
	assert.GreaterOrEqual(t, last.Accuracy(s.Points()), 0.9)
	assert.Greater(t, last.WeightNorm(), 0.0)

	_, ok := last.Line()
	assert.False(t, ok)
}

func TestXOR_Learns(t *testing.T) {
	s := newSession(t, KindXOR, 5)
	first, last := run(t, s, 800)

	assert.Less(t, last.Loss, first.Loss)
	assert.GreaterOrEqual(t, last.Accuracy(s.Points()), 0.9)
}

func TestSpiral_LossDecreases(t *testing.T) {
	s := newSession(t, KindSpiral, 6)
	first, last := run(t, s, 300)

	assert.Less(t, last.Loss, first.Loss)
	p := last.Predict(0.1, -0.2)
	assert.True(t, p > 0 && p < 1)
}

func TestStep_EmptyDataset(t *testing.T) {
	s := newSession(t, KindXOR, 1)
	s.SetPoints(dataset.PointSet{})

	_, err := s.Step()
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestSetLR(t *testing.T) {
	s := newSession(t, KindLogistic, 1)
	run(t, s, 5)
	before := s.Snapshot().Params["0.weight"].At(0, 0)

	require.NoError(t, s.SetLR(0.02))
	assert.Equal(t, 0.02, s.LR())
	assert.Equal(t, 5, s.Epoch())
	assert.Equal(t, before, s.Snapshot().Params["0.weight"].At(0, 0))

	assert.ErrorIs(t, s.SetLR(0), ErrInvalidLR)
}

func TestReset(t *testing.T) {
	s := newSession(t, KindXOR, 1)
	points := s.Points()
	run(t, s, 10)

	s.Reset()
	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Epoch)
	assert.Equal(t, 0.0, snap.Loss)
	assert.Equal(t, points, s.Points())
}

func TestNewData_KeepsModel(t *testing.T) {
	s := newSession(t, KindSpiral, 2)
	run(t, s, 3)
	before := s.Snapshot()
	old := s.Points()

	s.NewData()
	assert.NotEqual(t, old, s.Points())
	assert.Len(t, s.Points(), len(old))
	assert.Equal(t, 3, s.Epoch())
	assert.Equal(t, before.Predict(0.2, 0.2), s.Snapshot().Predict(0.2, 0.2))
}

func TestSnapshot_IsImmutable(t *testing.T) {
	s := newSession(t, KindXOR, 7)
	_, snap := run(t, s, 5)
	p := snap.Predict(0.4, -0.4)
	w := snap.Params["0.weight"].At(0, 0)

	run(t, s, 50)
	assert.Equal(t, p, snap.Predict(0.4, -0.4))
	assert.Equal(t, w, snap.Params["0.weight"].At(0, 0))
}

func TestSnapshot_Zero(t *testing.T) {
	var snap Snapshot
	assert.True(t, math.IsNaN(snap.Predict(0, 0)))
	assert.Equal(t, 0.0, snap.WeightNorm())
	_, ok := snap.Line()
	assert.False(t, ok)
}

func TestSeedIsDeterministic(t *testing.T) {
	a := newSession(t, KindSpiral, 99)
	b := newSession(t, KindSpiral, 99)
	assert.Equal(t, a.Points(), b.Points())

	for i := 0; i < 5; i++ {
		sa, err := a.Step()
		require.NoError(t, err)
		sb, err := b.Step()
		require.NoError(t, err)
		assert.Equal(t, sa.Loss, sb.Loss)
	}
}

func TestScene(t *testing.T) {
	lin := newSession(t, KindLinear, 1)
	scene := lin.Scene(lin.Snapshot())
	require.NotNil(t, scene.Line)
	assert.Nil(t, scene.Field)
	assert.Len(t, scene.Points, 100)

	xor := newSession(t, KindXOR, 1)
	snap := xor.Snapshot()
	scene = xor.Scene(snap)
	assert.Nil(t, scene.Line)
	require.NotNil(t, scene.Field)
	assert.Equal(t, snap.Predict(0.5, 0.5), scene.Field(0.5, 0.5))
}

func TestBatchSizeOverride(t *testing.T) {
	s, err := New(KindXOR, Config{Seed: 3, BatchSize: 16})
	require.NoError(t, err)
	snap, err := s.Step()
	require.NoError(t, err)
	assert.False(t, math.IsNaN(snap.Loss))
	assert.Greater(t, snap.Loss, 0.0)
}

func TestRecipeOverride(t *testing.T) {
	s, err := New(KindSpiral, Config{Seed: 3, Recipe: &dataset.Recipe{N: 10, Turns: 1}})
	require.NoError(t, err)
	assert.Len(t, s.Points(), 20)
}

func TestSnapshot_Counters(t *testing.T) {
	linear := newSession(t, KindLinear, 4).Snapshot()
	line, ok := linear.Line()
	require.True(t, ok)
	assert.Equal(t, []any{"m", line.M, "b", line.B}, linear.Counters())

	logistic := newSession(t, KindLogistic, 4).Snapshot()
	w := logistic.Params["0.weight"]
	wantNorm := math.Hypot(w.At(0, 0), w.At(0, 1))
	assert.InDelta(t, wantNorm, logistic.WeightNorm(), 1e-12)
	// Bias starts at zero.
	assert.Equal(t, 0.0, logistic.Bias())
	assert.Equal(t, []any{"w_norm", logistic.WeightNorm(), "b", 0.0}, logistic.Counters())

	_, last := run(t, newSession(t, KindLogistic, 4), 20)
	assert.Equal(t, last.Params["0.bias"].At(0, 0), last.Bias())

	assert.Nil(t, newSession(t, KindSpiral, 4).Snapshot().Counters())

	var zero Snapshot
	assert.Equal(t, 0.0, zero.Bias())
	assert.Nil(t, zero.Counters())
}
