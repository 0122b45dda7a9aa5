// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor multiplies the RGB channels by f, keeping alpha.
func ScaleColor(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: clampChannel(float64(c.R) * f),
		G: clampChannel(float64(c.G) * f),
		B: clampChannel(float64(c.B) * f),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
