// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade returns c with its alpha scaled by f in [0, 1]. Color channels are
// premultiplied, so they scale too.
func Fade(c color.RGBA, f float64) color.RGBA {
	if f <= 0 {
		return color.RGBA{}
	}
	if f >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
