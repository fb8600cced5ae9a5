// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset

import "github.com/born-ml/gradviz/internal/dataset"

// ErrUnknownShape is returned by ParseShape for unrecognized names.
var ErrUnknownShape = dataset.ErrUnknownShape

// Label is the class of a point.
type Label = dataset.Label

// Labels.
const (
	NoLabel = dataset.NoLabel
	Class0  = dataset.Class0
	Class1  = dataset.Class1
)

// Point2D is a single sample in the plane.
type Point2D = dataset.Point2D

// PointSet is an ordered sequence of points.
type PointSet = dataset.PointSet

// Source is a uniform [0, 1) random source.
type Source = dataset.Source

// Generator produces point sets from a Source.
type Generator = dataset.Generator

// NewGenerator creates a Generator with a deterministic seed.
func NewGenerator(seed int64) *Generator { return dataset.NewGenerator(seed) }

// NewGeneratorFrom creates a Generator over src. A nil src uses the
// process-wide source.
func NewGeneratorFrom(src Source) *Generator { return dataset.NewGeneratorFrom(src) }

// Linear samples n points of y = a*x + b + N(0, noiseStd²) with x in [-1, 1].
func Linear(n int, a, b, noiseStd float64) PointSet { return dataset.Linear(n, a, b, noiseStd) }

// GaussianBlobs samples nPerClass points around each of two class centers.
func GaussianBlobs(nPerClass int) PointSet { return dataset.GaussianBlobs(nPerClass) }

// XORQuadrants samples nPerQuadrant points around each quadrant center.
func XORQuadrants(nPerQuadrant int) PointSet { return dataset.XORQuadrants(nPerQuadrant) }

// Spiral samples nPerClass points along each of two spiral arms.
func Spiral(nPerClass int, turns float64) PointSet { return dataset.Spiral(nPerClass, turns) }

// Normalize rescales each axis of points to [-1, 1].
func Normalize(points PointSet) PointSet { return dataset.Normalize(points) }

// Gaussian draws one sample from N(mu, sigma²) using src.
func Gaussian(src Source, mu, sigma float64) float64 { return dataset.Gaussian(src, mu, sigma) }

// Shape names one of the demo datasets.
type Shape = dataset.Shape

// Shapes.
const (
	ShapeLinear = dataset.ShapeLinear
	ShapeBlobs  = dataset.ShapeBlobs
	ShapeXOR    = dataset.ShapeXOR
	ShapeSpiral = dataset.ShapeSpiral
)

// Recipe holds generation parameters of a Shape.
type Recipe = dataset.Recipe

// Shapes lists every Shape.
func Shapes() []Shape { return dataset.Shapes() }

// ParseShape maps a name to a Shape.
func ParseShape(name string) (Shape, error) { return dataset.ParseShape(name) }

// DefaultRecipe returns the demo parameters of s.
func DefaultRecipe(s Shape) Recipe { return dataset.DefaultRecipe(s) }
