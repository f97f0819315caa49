package rgb

import "image/color"

// Composite blends a straight-alpha foreground over an opaque background.
//
// Each channel is fg*a + bg*(1-a) with a = alpha/255, truncated toward zero.
func Composite(fg color.NRGBA, bg Color) Color {
	switch fg.A {
	case 0xff:
		return Color{R: fg.R, G: fg.G, B: fg.B}
	case 0:
		return bg
	}
	alpha := float64(fg.A) / 255.0
	blend := func(f, b uint8) uint8 {
		return uint8(float64(f)*alpha + float64(b)*(1.0-alpha))
	}
	return Color{
		R: blend(fg.R, bg.R),
		G: blend(fg.G, bg.G),
		B: blend(fg.B, bg.B),
	}
}
