// Package colorconv converts colors between RGB, CMYK, HEX, HSL, HSV and a
// packed 24-bit integer form.
//
// Every conversion is a pure function of its arguments. Nothing is cached and
// nothing is shared, so all functions are safe for concurrent use.
//
// # Color Models
//
//   - RGB: 8-bit channels (0-255)
//   - CMYK: four components in 0.0-1.0
//   - HSL: hue in degrees, saturation and lightness in 0.0-1.0
//   - HSV: hue in degrees, saturation and value in 0.0-1.0
//   - HEX: 3 or 6 hex digits without a leading '#', lowercase on output
//   - Packed: bits 16-23 red, 8-15 green, 0-7 blue
//
// Hue inputs may be any finite number; they are folded into [0, 360) before
// use. Hue outputs always lie in [0, 360).
//
// # Rounding
//
// Conversions that produce RGB from real-valued models (CMYK, HSL, HSV) round
// every channel toward positive infinity, then clamp into [0, 255]. Results
// can therefore differ by one from libraries that round to nearest.
//
// # Validation
//
// The NewRGB, NewCMYK, NewHSL and NewHSV constructors reject values outside
// the documented domains with ErrOutOfRange. Conversion functions accept any
// struct value and never fail; out-of-range components produce defined but
// meaningless results, clamped into the RGB range where RGB is the output.
//
// # Error Handling
//
// HexToRGB and ExpandShortHex return ErrInvalidFormat for strings that are not
// 3 or 6 hex digits. Errors are wrapped with context, so use errors.Is.
package colorconv
