package render

import (
	"image/color"

	"github.com/phanxgames/motion"
)

// toRGBA converts a straight-alpha color in [0, 1] to premultiplied RGBA.
func toRGBA(c motion.Color) color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}
