package dataset

import (
	"math"
	"math/rand"
)

// Fixed distribution parameters of the canonical datasets.
const (
	blobStd0     = 0.2
	blobStd1     = 0.25
	xorCenter    = 0.5
	xorJitter    = 0.15
	spiralJitter = 0.05
)

var (
	blobMean0 = [2]float64{-0.5, -0.2}
	blobMean1 = [2]float64{0.6, 0.3}
)

// quadrant is one XOR cluster: a center sign pair and its class.
type quadrant struct {
	sx, sy float64
	label  Label
}

// xorQuadrants lists the clusters in emission order.
//
// Same-sign quadrants are class 0, opposite-sign quadrants class 1.
var xorQuadrants = []quadrant{
	{sx: -1, sy: -1, label: Class0},
	{sx: -1, sy: 1, label: Class1},
	{sx: 1, sy: -1, label: Class1},
	{sx: 1, sy: 1, label: Class0},
}

// Generator produces synthetic point sets from a uniform Source.
//
// A Generator is not safe for concurrent use when built on a *rand.Rand.
//
// Example:
//
//	gen := dataset.NewGenerator(42)
//	points := dataset.Normalize(gen.Spiral(150, 2))
type Generator struct {
	src Source
}

// NewGenerator creates a Generator with a deterministic seed.
func NewGenerator(seed int64) *Generator {
	//nolint:gosec // Synthetic data, not security-critical.
	return &Generator{src: rand.New(rand.NewSource(seed))}
}

// NewGeneratorFrom creates a Generator over an arbitrary Source.
//
// A nil source falls back to the process-wide unseeded source.
func NewGeneratorFrom(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// Source returns the uniform source backing the generator.
func (g *Generator) Source() Source {
	return g.src
}

// Linear draws n unlabeled points around the line y = a*x + b.
//
// x is uniform in [-1, 1]; y carries Gaussian noise with standard deviation
// noiseStd. A zero noiseStd yields points exactly on the line.
//
// Returns an empty set when n <= 0.
func (g *Generator) Linear(n int, a, b, noiseStd float64) PointSet {
	if n <= 0 {
		return PointSet{}
	}
	data := make(PointSet, 0, n)
	for i := 0; i < n; i++ {
		x := g.src.Float64()*2 - 1
		y := a*x + b
		if noiseStd != 0 {
			y += Gaussian(g.src, 0, noiseStd)
		}
		data = append(data, Point2D{X: x, Y: y, Label: NoLabel})
	}
	return data
}

// GaussianBlobs draws two isotropic Gaussian classes of nPerClass points each.
//
// Class 0 is centered at (-0.5, -0.2) with std 0.2, class 1 at (0.6, 0.3)
// with std 0.25. All class 0 points precede all class 1 points.
//
// Returns an empty set when nPerClass <= 0.
func (g *Generator) GaussianBlobs(nPerClass int) PointSet {
	if nPerClass <= 0 {
		return PointSet{}
	}
	data := make(PointSet, 0, 2*nPerClass)
	for i := 0; i < nPerClass; i++ {
		x, y := gaussian2D(g.src, blobMean0[0], blobMean0[1], blobStd0)
		data = append(data, Point2D{X: x, Y: y, Label: Class0})
	}
	for i := 0; i < nPerClass; i++ {
		x, y := gaussian2D(g.src, blobMean1[0], blobMean1[1], blobStd1)
		data = append(data, Point2D{X: x, Y: y, Label: Class1})
	}
	return data
}

// XORQuadrants draws nPerQuadrant points around each of the four centers
// (±0.5, ±0.5), labeled with XOR of the center signs.
//
// Quadrants are emitted in the order (-,-), (-,+), (+,-), (+,+), each one
// complete before the next.
//
// Returns an empty set when nPerQuadrant <= 0.
func (g *Generator) XORQuadrants(nPerQuadrant int) PointSet {
	if nPerQuadrant <= 0 {
		return PointSet{}
	}
	data := make(PointSet, 0, len(xorQuadrants)*nPerQuadrant)
	for _, q := range xorQuadrants {
		cx, cy := q.sx*xorCenter, q.sy*xorCenter
		for i := 0; i < nPerQuadrant; i++ {
			x, y := gaussian2D(g.src, cx, cy, xorJitter)
			data = append(data, Point2D{X: x, Y: y, Label: q.label})
		}
	}
	return data
}

// Spiral draws two interleaved spiral arms of nPerClass points each.
//
// For arm label L and index i:
//
//	r = i / nPerClass
//	t = turns*π*r + L*π
//	(x, y) = (r*cos(t), r*sin(t)) + N(0, 0.05²) per axis
//
// The whole class 0 arm is emitted before class 1.
//
// Returns an empty set when nPerClass <= 0.
func (g *Generator) Spiral(nPerClass int, turns float64) PointSet {
	if nPerClass <= 0 {
		return PointSet{}
	}
	data := make(PointSet, 0, 2*nPerClass)
	for _, label := range []Label{Class0, Class1} {
		phase := 0.0
		if label == Class1 {
			phase = math.Pi
		}
		for i := 0; i < nPerClass; i++ {
			r := float64(i) / float64(nPerClass)
			t := turns*math.Pi*r + phase
			x := r*math.Cos(t) + Gaussian(g.src, 0, spiralJitter)
			y := r*math.Sin(t) + Gaussian(g.src, 0, spiralJitter)
			data = append(data, Point2D{X: x, Y: y, Label: label})
		}
	}
	return data
}

var defaultGenerator = NewGeneratorFrom(nil)

// Linear draws from the unseeded default generator. See Generator.Linear.
func Linear(n int, a, b, noiseStd float64) PointSet {
	return defaultGenerator.Linear(n, a, b, noiseStd)
}

// GaussianBlobs draws from the unseeded default generator. See Generator.GaussianBlobs.
func GaussianBlobs(nPerClass int) PointSet {
	return defaultGenerator.GaussianBlobs(nPerClass)
}

// XORQuadrants draws from the unseeded default generator. See Generator.XORQuadrants.
func XORQuadrants(nPerQuadrant int) PointSet {
	return defaultGenerator.XORQuadrants(nPerQuadrant)
}

// Spiral draws from the unseeded default generator. See Generator.Spiral.
func Spiral(nPerClass int, turns float64) PointSet {
	return defaultGenerator.Spiral(nPerClass, turns)
}
