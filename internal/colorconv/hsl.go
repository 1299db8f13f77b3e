package colorconv

import "math"

// HSLToRGB converts an HSL color to RGB.
//
// The hue is folded into [0, 360) first. Chroma is (1 - |2L - 1|) * S and the
// offset is L - chroma/2. Each channel is rounded up and clamped to 0-255.
func HSLToRGB(c HSL) RGB {
	h := normalizeHue(c.H)
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	m := c.L - chroma/2
	return sectorRGB(h, chroma, m)
}

// RGBToHSL converts an RGB color to HSL.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to the 0-1 range
//  2. Find the max and min components and their difference (delta)
//  3. Lightness is (max + min) / 2
//  4. Saturation is delta / (1 - |2L - 1|)
//  5. Hue depends on which component is the max
//
// Achromatic colors (delta == 0) have hue and saturation 0. The returned hue
// lies in [0, 360) and saturation in [0, 1].
func RGBToHSL(c RGB) HSL {
	r, g, b, cmax, cmin, delta := normalized(c)
	l := (cmax + cmin) / 2

	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	return HSL{
		H: hueOf(r, g, b, cmax, delta),
		S: clampUnit(delta / (1 - math.Abs(2*l-1))),
		L: l,
	}
}
