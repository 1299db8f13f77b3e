package colorconv

// Description holds one color in every supported representation.
type Description struct {
	Hex  string `json:"hex"`  // Six lowercase hex digits
	RGB  RGB    `json:"rgb"`  // RGB channels
	Int  uint32 `json:"int"`  // Packed r<<16 | g<<8 | b
	HSL  HSL    `json:"hsl"`  // HSL representation
	HSV  HSV    `json:"hsv"`  // HSV representation
	CMYK CMYK   `json:"cmyk"` // CMYK representation
}

// Describe converts an RGB color into all other representations at once.
func Describe(c RGB) Description {
	return Description{
		Hex:  RGBToHex(c),
		RGB:  c,
		Int:  RGBToInt(c),
		HSL:  RGBToHSL(c),
		HSV:  RGBToHSV(c),
		CMYK: RGBToCMYK(c),
	}
}
