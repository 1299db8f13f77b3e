package colorconv

import colorful "github.com/lucasb-eyer/go-colorful"

// Colorful returns the color as a go-colorful value for perceptual math
// (Lab, Luv, blending) that this package does not implement itself.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts a go-colorful value back to 8-bit RGB. Colors outside
// the sRGB gamut are clamped first.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Distance returns the CIEDE2000 perceptual difference between two colors.
// Identical colors give 0 and black versus white is about 1.0.
func Distance(a, b RGB) float64 {
	return a.Colorful().DistanceCIEDE2000(b.Colorful())
}
