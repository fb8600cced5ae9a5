// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"io"

	"github.com/born-ml/gradviz/internal/render"
)

// Frame defaults.
const (
	DefaultWidth  = render.DefaultWidth
	DefaultHeight = render.DefaultHeight
	DefaultStride = render.DefaultStride
)

// ScalarField maps a plane coordinate to a value in [0, 1].
type ScalarField = render.ScalarField

// LineParams is the line y = M*x + B.
type LineParams = render.LineParams

// Viewport maps plane coordinates to pixels.
type Viewport = render.Viewport

// Palette is the set of colors used for a frame.
type Palette = render.Palette

// Options configures a Canvas.
type Options = render.Options

// Scene is everything drawn in one frame.
type Scene = render.Scene

// Canvas owns a raster surface.
type Canvas = render.Canvas

// NewCanvas creates a Canvas. Zero-valued options take the defaults.
func NewCanvas(opts Options) *Canvas { return render.NewCanvas(opts) }

// DefaultPalette returns the light theme used by the demos.
func DefaultPalette() Palette { return render.DefaultPalette() }

// Lerp interpolates between a and b with t clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA { return render.Lerp(a, b, t) }

// LineSegment returns the pixel endpoints of line between x = -1 and x = 1.
func LineSegment(line LineParams, v Viewport) (x1, y1, x2, y2 float64) {
	return render.LineSegment(line, v)
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error { return render.EncodePNG(w, img) }
