package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/born-ml/gradviz/internal/dataset"
	"github.com/born-ml/gradviz/internal/parallel"
)

// ScalarField is a point-wise decision probability over the logical domain.
//
// Values outside [0, 1] are clamped when painted.
type ScalarField func(x, y float64) float64

// Default drawing parameters.
const (
	DefaultWidth  = 480
	DefaultHeight = 360
	DefaultStride = 4
	PointRadius   = 3.0
	LineWidth     = 2.0
	AxisWidth     = 1.0
)

// Options configures a Canvas.
//
// Zero values select the defaults: 480×360 logical pixels, scale 1,
// heatmap stride 4, axes shown, sequential heatmap sampling.
type Options struct {
	Width    int     // Logical width in pixels
	Height   int     // Logical height in pixels
	Scale    float64 // Device pixels per logical pixel
	Stride   int     // Heatmap block size in logical pixels
	HideAxis bool    // Skip the x=0 and y=0 grid lines
	Workers  int     // Heatmap sampling goroutines; <= 1 is sequential
	Palette  *Palette
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Scale <= 0 || math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) {
		o.Scale = 1
	}
	if o.Stride <= 0 {
		o.Stride = DefaultStride
	}
	if o.Palette == nil {
		p := DefaultPalette()
		o.Palette = &p
	}
	return o
}

// Scene is everything drawn in one frame.
//
// Line and Field are optional overlays.
type Scene struct {
	Points dataset.PointSet
	Line   *LineParams
	Field  ScalarField
}

// Canvas owns a raster surface and redraws it from a Scene on every call.
//
// A Canvas is not safe for concurrent use.
//
// Example:
//
//	c := render.NewCanvas(render.Options{Width: 480, Height: 360})
//	img := c.Draw(render.Scene{Points: points, Field: model.Predict})
//	_ = render.EncodePNG(w, img)
type Canvas struct {
	opts Options
	img  *image.RGBA
}

// NewCanvas creates a Canvas. The surface is allocated on the first Draw.
func NewCanvas(opts Options) *Canvas {
	return &Canvas{opts: opts.withDefaults()}
}

// Options returns the effective options, defaults applied.
func (c *Canvas) Options() Options {
	return c.opts
}

// Viewport returns the logical size of the surface.
func (c *Canvas) Viewport() Viewport {
	return Viewport{Width: float64(c.opts.Width), Height: float64(c.opts.Height)}
}

// Resize changes the logical size and scale. The surface is reallocated on
// the next Draw.
func (c *Canvas) Resize(width, height int, scale float64) {
	o := c.opts
	o.Width, o.Height, o.Scale = width, height, scale
	c.opts = o.withDefaults()
}

// Draw paints the scene and returns the surface.
//
// Draw order, later layers over earlier ones:
//  1. background fill
//  2. heatmap of Field, sampled once per Stride×Stride block
//  3. grid lines at x=0 and y=0 unless HideAxis
//  4. Line from x=-1 to x=1
//  5. points as filled discs colored by class
//
// The returned image is reused by the next Draw call.
func (c *Canvas) Draw(scene Scene) *image.RGBA {
	c.reset()
	vp := c.Viewport()
	pal := c.opts.Palette

	if scene.Field != nil {
		c.paintField(scene.Field, vp)
	}

	if !c.opts.HideAxis {
		c.strokeSegment(vp.PxX(0), 0, vp.PxX(0), vp.Height, AxisWidth, pal.Axis)
		c.strokeSegment(0, vp.PxY(0), vp.Width, vp.PxY(0), AxisWidth, pal.Axis)
	}

	if scene.Line != nil {
		x1, y1, x2, y2 := LineSegment(*scene.Line, vp)
		c.strokeSegment(x1, y1, x2, y2, LineWidth, pal.Line)
	}

	for _, p := range scene.Points {
		col := pal.Class0
		if p.Label == dataset.Class1 {
			col = pal.Class1
		}
		c.fillDisc(vp.PxX(p.X), vp.PxY(p.Y), PointRadius, col)
	}

	return c.img
}

// reset sizes the surface for the current options and fills the background.
func (c *Canvas) reset() {
	w := int(math.Round(float64(c.opts.Width) * c.opts.Scale))
	h := int(math.Round(float64(c.opts.Height) * c.opts.Scale))
	if c.img == nil || c.img.Rect.Dx() != w || c.img.Rect.Dy() != h {
		c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.opts.Palette.Background), image.Point{}, draw.Src)
}

// paintField samples the field at the top-left corner of each stride block
// and fills the block with the interpolated color.
func (c *Canvas) paintField(field ScalarField, vp Viewport) {
	stride := c.opts.Stride
	cols := (c.opts.Width + stride - 1) / stride
	rows := (c.opts.Height + stride - 1) / stride
	values := make([]float64, rows*cols)

	parallel.ForGrid(rows, cols, func(r, col int) {
		x := vp.CoordX(float64(col * stride))
		y := vp.CoordY(float64(r * stride))
		values[r*cols+col] = field(x, y)
	}, parallel.WithWorkers(max(c.opts.Workers, 1)))

	pal := c.opts.Palette
	s := c.opts.Scale
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			block := image.Rect(
				int(math.Round(float64(col*stride)*s)),
				int(math.Round(float64(r*stride)*s)),
				int(math.Round(float64((col+1)*stride)*s)),
				int(math.Round(float64((r+1)*stride)*s)),
			).Intersect(c.img.Rect)
			fill := Lerp(pal.FieldLow, pal.FieldHigh, values[r*cols+col])
			draw.Draw(c.img, block, image.NewUniform(fill), image.Point{}, draw.Src)
		}
	}
}
