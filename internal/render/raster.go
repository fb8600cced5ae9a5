package render

import (
	"image"
	"image/color"
	"math"
)

// fillDisc paints every device pixel whose center lies within radius of
// (cx, cy). Coordinates and radius are logical.
func (c *Canvas) fillDisc(cx, cy, radius float64, col color.RGBA) {
	s := c.opts.Scale
	cx, cy, radius = cx*s, cy*s, radius*s
	box := image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius))+1, int(math.Ceil(cy+radius))+1,
	).Intersect(c.img.Rect)

	r2 := radius * radius
	for py := box.Min.Y; py < box.Max.Y; py++ {
		for px := box.Min.X; px < box.Max.X; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				c.img.SetRGBA(px, py, col)
			}
		}
	}
}

// strokeSegment paints every device pixel whose center lies within width/2
// of the segment (x1, y1)-(x2, y2). Coordinates and width are logical.
func (c *Canvas) strokeSegment(x1, y1, x2, y2, width float64, col color.RGBA) {
	s := c.opts.Scale
	x1, y1, x2, y2 = x1*s, y1*s, x2*s, y2*s
	half := width * s / 2

	box := image.Rect(
		int(math.Floor(math.Min(x1, x2)-half)), int(math.Floor(math.Min(y1, y2)-half)),
		int(math.Ceil(math.Max(x1, x2)+half))+1, int(math.Ceil(math.Max(y1, y2)+half))+1,
	).Intersect(c.img.Rect)

	for py := box.Min.Y; py < box.Max.Y; py++ {
		for px := box.Min.X; px < box.Max.X; px++ {
			if segmentDistance(float64(px)+0.5, float64(py)+0.5, x1, y1, x2, y2) <= half {
				c.img.SetRGBA(px, py, col)
			}
		}
	}
}

// segmentDistance returns the distance from (px, py) to the closest point
// of the segment (x1, y1)-(x2, y2).
func segmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(px-x1, py-y1)
	}
	t := ((px-x1)*dx + (py-y1)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}
