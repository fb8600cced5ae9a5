package render

import (
	"image/color"
	"math"
)

// Palette is the fixed set of colors used for a frame.
type Palette struct {
	Background color.RGBA
	FieldLow   color.RGBA // Field value 0
	FieldHigh  color.RGBA // Field value 1
	Axis       color.RGBA
	Line       color.RGBA
	Class0     color.RGBA // Also used for unlabeled points
	Class1     color.RGBA
}

// DefaultPalette returns the light theme used by the demos.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		FieldLow:   color.RGBA{R: 230, G: 240, B: 255, A: 0xff},
		FieldHigh:  color.RGBA{R: 255, G: 230, B: 230, A: 0xff},
		Axis:       color.RGBA{R: 0xe4, G: 0xe4, B: 0xe7, A: 0xff},
		Line:       color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff},
		Class0:     color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
		Class1:     color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff},
	}
}

// Lerp interpolates linearly between a and b.
//
// t is clamped to [0, 1]; NaN is treated as 0. Channels are rounded to
// the nearest integer.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

func clamp01(t float64) float64 {
	switch {
	case math.IsNaN(t), t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
