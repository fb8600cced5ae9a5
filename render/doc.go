// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package render draws demo frames into RGBA images.
//
// # Overview
//
// The plane [-1, 1] × [-1, 1] is mapped onto a Width × Height surface with
// y pointing up. Each frame is drawn in a fixed order:
//
//  1. Background
//  2. Scalar field heatmap (optional), one sample per Stride-sized block
//  3. Axes at x = 0 and y = 0
//  4. Fitted line from x = -1 to x = 1 (optional)
//  5. Points, colored by label
//
// # Basic Usage
//
//	canvas := render.NewCanvas(render.Options{Width: 480, Height: 360})
//	img := canvas.Draw(render.Scene{
//	    Points: points,
//	    Field:  snapshot.Predict,
//	})
//	if err := render.EncodePNG(w, img); err != nil {
//	    return err
//	}
//
// A Canvas reuses its surface between frames of the same size. Draw is
// not safe for concurrent use.
package render
