package colorconv

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupPrinter = message.NewPrinter(language.English)

// IntToRGB unpacks a 24-bit integer: red from bits 16-23, green from 8-15 and
// blue from 0-7. Bits above 23 are ignored.
func IntToRGB(v uint32) RGB {
	return RGB{
		R: uint8((v & 0xff0000) >> 16),
		G: uint8((v & 0x00ff00) >> 8),
		B: uint8(v & 0x0000ff),
	}
}

// RGBToInt packs an RGB color as r<<16 | g<<8 | b.
func RGBToInt(c RGB) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FormatInt renders a packed value with comma thousands separators,
// e.g. 11163050 as "11,163,050".
func FormatInt(v uint32) string {
	return groupPrinter.Sprintf("%d", v)
}
