// Package render draws point sets, fitted lines and decision-boundary
// heatmaps onto a raster surface.
//
// The logical domain is the square [-1, 1]×[-1, 1], mapped linearly onto
// the surface with the Y axis flipped so that logical +1 is the top row.
package render

// Viewport is the logical pixel size of a drawing surface.
type Viewport struct {
	Width  float64
	Height float64
}

// PxX maps a logical x in [-1, 1] to a pixel column in [0, Width].
func (v Viewport) PxX(x float64) float64 {
	return (x + 1) / 2 * v.Width
}

// PxY maps a logical y in [-1, 1] to a pixel row in [0, Height].
//
// y = +1 maps to row 0 and y = -1 to row Height.
func (v Viewport) PxY(y float64) float64 {
	return v.Height - (y+1)/2*v.Height
}

// CoordX is the inverse of PxX.
func (v Viewport) CoordX(px float64) float64 {
	return px/v.Width*2 - 1
}

// CoordY is the inverse of PxY.
func (v Viewport) CoordY(py float64) float64 {
	return (v.Height-py)/v.Height*2 - 1
}

// LineParams is the slope and intercept of y = M*x + B.
type LineParams struct {
	M float64
	B float64
}

// At evaluates the line at x.
func (l LineParams) At(x float64) float64 {
	return l.M*x + l.B
}

// LineSegment returns the pixel endpoints of the line across the domain,
// from logical x = -1 to x = 1.
//
// Endpoints may fall outside the surface when |M*x + B| > 1.
func LineSegment(line LineParams, v Viewport) (x1, y1, x2, y2 float64) {
	return v.PxX(-1), v.PxY(line.At(-1)), v.PxX(1), v.PxY(line.At(1))
}
