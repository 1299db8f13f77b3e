package colorconv

import (
	"fmt"
	"strconv"
	"strings"
)

// HexToRGB parses a 3 or 6 digit hex string into an RGB color.
//
// The string is split into three equal parts and each part is parsed as a
// base-16 channel value. Digits may be upper or lower case; no '#' prefix is
// accepted.
//
// A 3-digit string yields one digit per channel taken literally, so "f80"
// becomes (15, 8, 0), not (255, 136, 0). Use ExpandShortHex first for the
// CSS shorthand meaning.
//
// # Errors
//
//   - ErrInvalidFormat if the length is not 3 or 6
//   - ErrInvalidFormat if any character is not a hex digit
func HexToRGB(hex string) (RGB, error) {
	if len(hex) != 3 && len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: hex %q must be 3 or 6 digits, got %d", ErrInvalidFormat, hex, len(hex))
	}

	d := len(hex) / 3
	var ch [3]uint8
	for i := range ch {
		part := hex[i*d : i*d+d]
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: hex %q has invalid digits %q", ErrInvalidFormat, hex, part)
		}
		ch[i] = uint8(v)
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGBToHex formats an RGB color as six lowercase hex digits, red first.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// ExpandShortHex turns a 3-digit shorthand into 6 digits by doubling each
// digit ("f80" -> "ff8800"). A 6-digit string is returned lowercased.
func ExpandShortHex(hex string) (string, error) {
	if _, err := HexToRGB(hex); err != nil {
		return "", err
	}
	hex = strings.ToLower(hex)
	if len(hex) == 6 {
		return hex, nil
	}
	return string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}), nil
}
