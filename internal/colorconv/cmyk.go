package colorconv

import "math"

// CMYKToRGB converts a CMYK color to RGB.
//
// Each channel is 255 * (1 - ink) * (1 - K), rounded toward positive infinity
// and clamped to 0-255. The conversion is not an exact inverse of RGBToCMYK.
func CMYKToRGB(c CMYK) RGB {
	return RGB{
		R: ceilChannel(255 * (1 - c.C) * (1 - c.K)),
		G: ceilChannel(255 * (1 - c.M) * (1 - c.K)),
		B: ceilChannel(255 * (1 - c.Y) * (1 - c.K)),
	}
}

// RGBToCMYK converts an RGB color to CMYK.
//
// K is 1 - max(R, G, B) on normalized channels. Pure black returns
// C = M = Y = 0 and K = 1.
func RGBToCMYK(c RGB) CMYK {
	r, g, b, cmax, _, _ := normalized(c)
	k := 1 - cmax

	if cmax == 0 {
		return CMYK{K: 1}
	}

	return CMYK{
		C: clampUnit((1 - r - k) / (1 - k)),
		M: clampUnit((1 - g - k) / (1 - k)),
		Y: clampUnit((1 - b - k) / (1 - k)),
		K: k,
	}
}

// clampUnit drops float noise just outside [0,1], e.g. -1e-17.
func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
