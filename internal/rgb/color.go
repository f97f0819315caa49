// Package rgb holds the 24-bit color model used by the renderer: opaque
// colors, terminal paints, alpha compositing and the similarity metrics that
// decide when a color escape code can be skipped.
package rgb

import (
	"fmt"
	"image/color"
)

// Color is an opaque 24-bit color.
type Color struct {
	R, G, B uint8
}

// FromUint splits a 0xRRGGBB value into its channels.
// Bits above the low 24 are ignored.
func FromUint(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// FromColor converts any color.Color to an opaque Color, dropping alpha.
// The result is the straight (non-premultiplied) color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// Uint packs the color back into 0xRRGGBB.
func (c Color) Uint() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Paint is what a terminal cell is painted with: either a truecolor value or
// the terminal's own default color.
type Paint struct {
	Color   Color
	Default bool
}

// DefaultPaint leaves the cell to the terminal's default color.
var DefaultPaint = Paint{Default: true}

// Solid returns a truecolor paint.
func Solid(c Color) Paint {
	return Paint{Color: c}
}

// String returns "none" for the default paint and the hex color otherwise.
func (p Paint) String() string {
	if p.Default {
		return "none"
	}
	return p.Color.Hex()
}
