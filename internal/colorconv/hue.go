package colorconv

import "math"

// sectorOrder maps each 60-degree hue sector to the (red, green, blue)
// channel layout as indices into [chroma, x, 0].
var sectorOrder = [6][3]int{
	{0, 1, 2}, // [0,60):    c, x, 0
	{1, 0, 2}, // [60,120):  x, c, 0
	{2, 0, 1}, // [120,180): 0, c, x
	{2, 1, 0}, // [180,240): 0, x, c
	{1, 2, 0}, // [240,300): x, 0, c
	{0, 2, 1}, // [300,360): c, 0, x
}

// normalizeHue folds any hue into [0, 360). Non-finite hues become 0.
func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// sectorRGB assembles an RGB from chroma c and offset m for a normalized hue.
// Exactly one sector matches because the index is floor(h/60) mod 6.
func sectorRGB(h, c, m float64) RGB {
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	vals := [3]float64{c, x, 0}
	order := sectorOrder[int(h/60)%6]
	return RGB{
		R: ceilChannel((vals[order[0]] + m) * 255),
		G: ceilChannel((vals[order[1]] + m) * 255),
		B: ceilChannel((vals[order[2]] + m) * 255),
	}
}

// ceilChannel rounds toward positive infinity and clamps into [0, 255].
func ceilChannel(v float64) uint8 {
	v = math.Ceil(v)
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// normalized returns the channels scaled into [0,1] along with their max,
// min and the chroma delta.
func normalized(c RGB) (r, g, b, cmax, cmin, delta float64) {
	r = float64(c.R) / 255.0
	g = float64(c.G) / 255.0
	b = float64(c.B) / 255.0
	cmax = math.Max(r, math.Max(g, b))
	cmin = math.Min(r, math.Min(g, b))
	return r, g, b, cmax, cmin, cmax - cmin
}

// hueOf computes the hue in degrees from normalized channels. It must only be
// called with delta > 0.
func hueOf(r, g, b, cmax, delta float64) float64 {
	var h float64
	switch cmax {
	case r:
		h = math.Mod((g-b)/delta, 6)
		if h < 0 {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h >= 360 {
		h -= 360
	}
	return h
}
