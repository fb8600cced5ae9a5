// Package dataset implements synthetic 2D datasets for the gradient descent demos.
//
// This package provides:
//   - Point2D / PointSet: labeled or unlabeled points in the plane
//   - Generators: Linear, GaussianBlobs, XORQuadrants, Spiral
//   - Normalize: per-axis min-max rescaling to [-1, 1]
//   - Shape: named recipes matching the four demos
//
// Generators draw from an unseeded process-wide source unless a seeded
// Generator is used. Every call returns a fresh PointSet; nothing is shared
// between calls.
package dataset

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Label is the class of a point. Regression points carry NoLabel.
type Label int

const (
	// NoLabel marks a point without a class (regression data).
	NoLabel Label = -1
	// Class0 is the first class of a binary classification dataset.
	Class0 Label = 0
	// Class1 is the second class of a binary classification dataset.
	Class1 Label = 1
)

// Point2D is a single sample in the plane.
type Point2D struct {
	X     float64
	Y     float64
	Label Label
}

// Labeled reports whether the point belongs to a class.
func (p Point2D) Labeled() bool {
	return p.Label != NoLabel
}

// PointSet is an ordered sequence of points.
//
// Order is insertion order. It matters for reproducibility in tests only.
type PointSet []Point2D

// Bounds returns the per-axis extent of the set.
//
// An empty set yields all zeros.
func (ps PointSet) Bounds() (minX, maxX, minY, maxY float64) {
	if len(ps) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = math.Inf(1), math.Inf(-1)
	minY, maxY = math.Inf(1), math.Inf(-1)
	for _, p := range ps {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, maxX, minY, maxY
}

// Labels returns the label of every point in order.
func (ps PointSet) Labels() []Label {
	out := make([]Label, len(ps))
	for i, p := range ps {
		out[i] = p.Label
	}
	return out
}

// Features returns the points as an [n, 2] matrix of (x, y) rows.
//
// Returns nil for an empty set, since gonum matrices cannot have zero rows.
func (ps PointSet) Features() *mat.Dense {
	if len(ps) == 0 {
		return nil
	}
	data := make([]float64, 0, 2*len(ps))
	for _, p := range ps {
		data = append(data, p.X, p.Y)
	}
	return mat.NewDense(len(ps), 2, data)
}

// XColumn returns the x coordinates as an [n, 1] matrix.
//
// Used as the input of the regression demo, where y is the target.
func (ps PointSet) XColumn() *mat.Dense {
	if len(ps) == 0 {
		return nil
	}
	data := make([]float64, len(ps))
	for i, p := range ps {
		data[i] = p.X
	}
	return mat.NewDense(len(ps), 1, data)
}

// Targets returns an [n, 1] matrix of training targets.
//
// Labeled points contribute their class as 0 or 1. Unlabeled points
// contribute their y coordinate.
func (ps PointSet) Targets() *mat.Dense {
	if len(ps) == 0 {
		return nil
	}
	data := make([]float64, len(ps))
	for i, p := range ps {
		if p.Labeled() {
			data[i] = float64(p.Label)
		} else {
			data[i] = p.Y
		}
	}
	return mat.NewDense(len(ps), 1, data)
}
