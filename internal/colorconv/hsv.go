package colorconv

// HSVToRGB converts an HSV color to RGB.
//
// Chroma is V * S and the offset is V - chroma. Channels are rounded up and
// clamped to 0-255.
func HSVToRGB(c HSV) RGB {
	h := normalizeHue(c.H)
	chroma := c.V * c.S
	m := c.V - chroma
	return sectorRGB(h, chroma, m)
}

// RGBToHSV converts an RGB color to HSV.
//
// Value is the largest normalized channel. Saturation is 0 for black and
// delta/value otherwise. Hue is 0 for grays.
func RGBToHSV(c RGB) HSV {
	r, g, b, cmax, _, delta := normalized(c)

	var s float64
	if cmax != 0 {
		s = delta / cmax
	}

	var h float64
	if delta != 0 {
		h = hueOf(r, g, b, cmax, delta)
	}

	return HSV{H: h, S: s, V: cmax}
}
