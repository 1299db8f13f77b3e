// Package swatch renders a single color as a small PNG image.
package swatch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
)

const (
	// DefaultSize is the width and height used when Options leaves them zero.
	DefaultSize = 64

	// MaxSize bounds either dimension of a swatch.
	MaxSize = 1024
)

// Options controls swatch rendering.
type Options struct {
	Width  int  // Pixels, 0 means DefaultSize
	Height int  // Pixels, 0 means DefaultSize
	Label  bool // Draw the hex code in the center
}

// Result contains the encoded swatch.
type Result struct {
	Hex         string `json:"hex"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render fills a Width x Height image with c and returns it as base64 PNG.
//
// With Label set, the lowercase hex code is drawn centered using a 7x13
// bitmap font. The ink is black on light colors and white on dark ones,
// chosen by HSL lightness. A label wider than the swatch is clipped.
//
// # Errors
//
//   - Either dimension outside 1..MaxSize after defaults are applied
//   - PNG encoding failure
func Render(c colorconv.RGB, opts Options) (*Result, error) {
	if opts.Width == 0 {
		opts.Width = DefaultSize
	}
	if opts.Height == 0 {
		opts.Height = DefaultSize
	}
	if opts.Width < 1 || opts.Width > MaxSize || opts.Height < 1 || opts.Height > MaxSize {
		return nil, fmt.Errorf("swatch size %dx%d outside 1..%d", opts.Width, opts.Height, MaxSize)
	}

	hex := colorconv.RGBToHex(c)
	img := imaging.New(opts.Width, opts.Height, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})

	if opts.Label {
		drawLabel(img, hex, labelInk(c))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &Result{
		Hex:         hex,
		Width:       opts.Width,
		Height:      opts.Height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// labelInk picks black or white text for legibility on c.
func labelInk(c colorconv.RGB) color.Color {
	if colorconv.RGBToHSL(c).L > 0.5 {
		return color.Black
	}
	return color.White
}

func drawLabel(dst draw.Image, text string, ink color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: face,
	}

	b := dst.Bounds()
	width := d.MeasureString(text).Round()
	x := (b.Dx() - width) / 2
	// Baseline sits Ascent below the top of the glyph box.
	y := (b.Dy()-face.Height)/2 + face.Ascent
	d.Dot = fixed.P(b.Min.X+x, b.Min.Y+y)
	d.DrawString(text)
}
