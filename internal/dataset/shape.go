package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownShape is returned by ParseShape for names it does not recognize.
var ErrUnknownShape = errors.New("unknown dataset shape")

// Shape names one of the four canonical problems.
type Shape int

const (
	// ShapeLinear is noisy points around a line (regression).
	ShapeLinear Shape = iota
	// ShapeBlobs is two Gaussian clusters (logistic classification).
	ShapeBlobs
	// ShapeXOR is four XOR-labeled quadrant clusters.
	ShapeXOR
	// ShapeSpiral is two interleaved spiral arms.
	ShapeSpiral
)

var shapeNames = map[Shape]string{
	ShapeLinear: "linear",
	ShapeBlobs:  "blobs",
	ShapeXOR:    "xor",
	ShapeSpiral: "spiral",
}

// String returns the canonical name of the shape.
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Shapes returns all shapes in declaration order.
func Shapes() []Shape {
	return []Shape{ShapeLinear, ShapeBlobs, ShapeXOR, ShapeSpiral}
}

// ParseShape resolves a shape by name, case-insensitively.
//
// "logistic" is accepted as an alias of "blobs".
func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "logistic" {
		return ShapeBlobs, nil
	}
	for s, sn := range shapeNames {
		if sn == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Recipe holds the generation parameters of a shape.
//
// Fields not used by a shape are ignored.
type Recipe struct {
	N        int     // Points total (linear) or per class / per quadrant
	Slope    float64 // Linear only
	Offset   float64 // Linear only
	NoiseStd float64 // Linear only
	Turns    float64 // Spiral only
}

// DefaultRecipe returns the parameters used by the demos for a shape.
func DefaultRecipe(s Shape) Recipe {
	switch s {
	case ShapeLinear:
		return Recipe{N: 100, Slope: 1.8, Offset: -0.3, NoiseStd: 0.05}
	case ShapeBlobs:
		return Recipe{N: 120}
	case ShapeXOR:
		return Recipe{N: 30}
	case ShapeSpiral:
		return Recipe{N: 150, Turns: 2}
	default:
		return Recipe{}
	}
}

// Generate draws the shape with the given recipe and normalizes it.
func (g *Generator) Generate(s Shape, r Recipe) PointSet {
	var raw PointSet
	switch s {
	case ShapeLinear:
		raw = g.Linear(r.N, r.Slope, r.Offset, r.NoiseStd)
	case ShapeBlobs:
		raw = g.GaussianBlobs(r.N)
	case ShapeXOR:
		raw = g.XORQuadrants(r.N)
	case ShapeSpiral:
		raw = g.Spiral(r.N, r.Turns)
	default:
		raw = PointSet{}
	}
	return Normalize(raw)
}
