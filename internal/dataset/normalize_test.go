package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Range(t *testing.T) {
	gen := NewGenerator(2)
	sets := map[string]PointSet{
		"linear": gen.Linear(100, 1.8, -0.3, 0.05),
		"blobs":  gen.GaussianBlobs(60),
		"xor":    gen.XORQuadrants(25),
		"spiral": gen.Spiral(80, 3),
	}
	for name, points := range sets {
		t.Run(name, func(t *testing.T) {
			out := Normalize(points)
			require.Len(t, out, len(points))

			minX, maxX, minY, maxY := out.Bounds()
			assert.Equal(t, -1.0, minX)
			assert.Equal(t, 1.0, maxX)
			assert.Equal(t, -1.0, minY)
			assert.Equal(t, 1.0, maxY)

			for i := range out {
				assert.Equal(t, points[i].Label, out[i].Label)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize(NewGenerator(4).GaussianBlobs(40))
	twice := Normalize(once)
	require.Len(t, twice, len(once))
	for i := range once {
		assert.InDelta(t, once[i].X, twice[i].X, 1e-12)
		assert.InDelta(t, once[i].Y, twice[i].Y, 1e-12)
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := PointSet{{X: 2, Y: 4, Label: Class0}, {X: 6, Y: 8, Label: Class1}}
	saved := append(PointSet(nil), in...)
	_ = Normalize(in)
	assert.Equal(t, saved, in)
}

func TestNormalize_DegenerateAxis(t *testing.T) {
	in := PointSet{
		{X: 3, Y: -1, Label: NoLabel},
		{X: 3, Y: 0, Label: NoLabel},
		{X: 3, Y: 1, Label: NoLabel},
	}
	out := Normalize(in)
	for _, p := range out {
		assert.Equal(t, 0.0, p.X)
	}
	assert.Equal(t, -1.0, out[0].Y)
	assert.Equal(t, 0.0, out[1].Y)
	assert.Equal(t, 1.0, out[2].Y)
}

func TestNormalize_Empty(t *testing.T) {
	out := Normalize(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestPointSet_Matrices(t *testing.T) {
	ps := PointSet{
		{X: 0.1, Y: 0.2, Label: Class0},
		{X: -0.3, Y: 0.4, Label: Class1},
	}
	f := ps.Features()
	r, c := f.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, -0.3, f.At(1, 0))
	assert.Equal(t, 0.4, f.At(1, 1))

	y := ps.Targets()
	assert.Equal(t, 0.0, y.At(0, 0))
	assert.Equal(t, 1.0, y.At(1, 0))

	reg := PointSet{{X: 0.5, Y: 0.7, Label: NoLabel}}
	assert.Equal(t, 0.7, reg.Targets().At(0, 0))
	assert.Equal(t, 0.5, reg.XColumn().At(0, 0))

	assert.Nil(t, PointSet{}.Features())
}
