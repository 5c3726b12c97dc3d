package ui

import "image/color"

// RGB is an opaque fill color with 0-255 channels.
type RGB struct {
	R, G, B uint8
}

var _ color.Color = RGB{}

// White is the default button color.
var White = RGB{255, 255, 255}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Scale multiplies every channel by s, clamping each to [0, 255].
func (c RGB) Scale(s float64) RGB {
	return RGB{
		R: scaleChannel(c.R, s),
		G: scaleChannel(c.G, s),
		B: scaleChannel(c.B, s),
	}
}

func scaleChannel(c uint8, s float64) uint8 {
	v := float64(c) * s
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
