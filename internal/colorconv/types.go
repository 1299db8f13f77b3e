package colorconv

import (
	"fmt"
	"math"
)

// RGB represents a color with 8-bit red, green and blue channels.
//
// Each channel ranges from 0 (no intensity) to 255 (full intensity). The
// uint8 fields make every RGB value valid by construction.
type RGB struct {
	R uint8 `json:"r"` // Red channel (0-255)
	G uint8 `json:"g"` // Green channel (0-255)
	B uint8 `json:"b"` // Blue channel (0-255)
}

// CMYK represents a color in the subtractive cyan, magenta, yellow, key model.
//
// All components range from 0.0 (no ink) to 1.0 (full ink). K is the black
// (key) component.
type CMYK struct {
	C float64 `json:"c"` // Cyan (0.0-1.0)
	M float64 `json:"m"` // Magenta (0.0-1.0)
	Y float64 `json:"y"` // Yellow (0.0-1.0)
	K float64 `json:"k"` // Key/black (0.0-1.0)
}

// HSL represents a color as hue, saturation and lightness.
//
// Unlike the percentage form used for display, S and L are fractions:
//   - H: hue in degrees (0=red, 120=green, 240=blue)
//   - S: saturation 0.0 (gray) to 1.0 (vivid)
//   - L: lightness 0.0 (black) to 1.0 (white), 0.5 is the pure hue
type HSL struct {
	H float64 `json:"h"` // Hue in degrees, [0, 360)
	S float64 `json:"s"` // Saturation (0.0-1.0)
	L float64 `json:"l"` // Lightness (0.0-1.0)
}

// HSV represents a color as hue, saturation and value.
type HSV struct {
	H float64 `json:"h"` // Hue in degrees, [0, 360)
	S float64 `json:"s"` // Saturation (0.0-1.0)
	V float64 `json:"v"` // Value (0.0-1.0)
}

// NewRGB builds an RGB from integer channels, rejecting anything outside 0-255.
func NewRGB(r, g, b int) (RGB, error) {
	for _, ch := range []struct {
		name string
		v    int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if ch.v < 0 || ch.v > 255 {
			return RGB{}, fmt.Errorf("%w: %s channel %d not in [0,255]", ErrOutOfRange, ch.name, ch.v)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// NewCMYK builds a CMYK value, rejecting components outside [0,1].
func NewCMYK(c, m, y, k float64) (CMYK, error) {
	v := CMYK{C: c, M: m, Y: y, K: k}
	if err := v.Validate(); err != nil {
		return CMYK{}, err
	}
	return v, nil
}

// NewHSL builds an HSL value. The hue must be finite and is folded into
// [0, 360); saturation and lightness must lie in [0,1].
func NewHSL(h, s, l float64) (HSL, error) {
	v := HSL{H: h, S: s, L: l}
	if err := v.Validate(); err != nil {
		return HSL{}, err
	}
	v.H = normalizeHue(h)
	return v, nil
}

// NewHSV builds an HSV value. The hue must be finite and is folded into
// [0, 360); saturation and value must lie in [0,1].
func NewHSV(h, s, v float64) (HSV, error) {
	c := HSV{H: h, S: s, V: v}
	if err := c.Validate(); err != nil {
		return HSV{}, err
	}
	c.H = normalizeHue(h)
	return c, nil
}

// Validate reports whether every component lies in [0,1].
func (c CMYK) Validate() error {
	if err := checkUnit("cyan", c.C); err != nil {
		return err
	}
	if err := checkUnit("magenta", c.M); err != nil {
		return err
	}
	if err := checkUnit("yellow", c.Y); err != nil {
		return err
	}
	return checkUnit("key", c.K)
}

// Validate reports whether the hue is finite and saturation and lightness lie
// in [0,1]. Hues outside [0, 360) are accepted.
func (c HSL) Validate() error {
	if err := checkHue(c.H); err != nil {
		return err
	}
	if err := checkUnit("saturation", c.S); err != nil {
		return err
	}
	return checkUnit("lightness", c.L)
}

// Validate reports whether the hue is finite and saturation and value lie in
// [0,1]. Hues outside [0, 360) are accepted.
func (c HSV) Validate() error {
	if err := checkHue(c.H); err != nil {
		return err
	}
	if err := checkUnit("saturation", c.S); err != nil {
		return err
	}
	return checkUnit("value", c.V)
}

func checkUnit(name string, v float64) error {
	// NaN fails both comparisons, so test for the valid range instead.
	if !(v >= 0 && v <= 1) {
		return fmt.Errorf("%w: %s %v not in [0,1]", ErrOutOfRange, name, v)
	}
	return nil
}

func checkHue(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: hue %v is not finite", ErrOutOfRange, h)
	}
	return nil
}
