// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset generates the synthetic 2D point sets used by the demos.
//
// # Overview
//
// This package contains:
//   - Point2D / PointSet: points with an optional binary Label
//   - Linear: noisy samples of y = a*x + b (unlabeled)
//   - GaussianBlobs: two Gaussian clusters
//   - XORQuadrants: four quadrant clusters with XOR labels
//   - Spiral: two interleaved spiral arms
//   - Normalize: per-axis min-max rescaling to [-1, 1]
//
// # Basic Usage
//
//	gen := dataset.NewGenerator(42)
//	points := dataset.Normalize(gen.Spiral(150, 2))
//
//	x := points.Features() // [n, 2]
//	y := points.Targets()  // [n, 1]
//
// The package-level functions draw from the process-wide random source:
//
//	blobs := dataset.GaussianBlobs(120)
//
// # Shapes
//
// Each demo uses a named Shape with a default Recipe:
//
//	shape, err := dataset.ParseShape("xor")
//	if err != nil {
//	    return err
//	}
//	points := gen.Generate(shape, dataset.DefaultRecipe(shape))
//
// Counts that are zero or negative produce an empty PointSet.
package dataset
