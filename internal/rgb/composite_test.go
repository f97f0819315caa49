package rgb

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposite_OpaqueKeepsForeground(t *testing.T) {
	backgrounds := []Color{{0, 0, 0}, {255, 255, 255}, {12, 200, 7}}
	fg := color.NRGBA{R: 100, G: 149, B: 237, A: 255}
	for _, bg := range backgrounds {
		assert.Equal(t, Color{100, 149, 237}, Composite(fg, bg), "bg %v", bg)
	}
}

func TestComposite_TransparentKeepsBackground(t *testing.T) {
	foregrounds := []color.NRGBA{{R: 255, G: 0, B: 0}, {R: 1, G: 2, B: 3}, {}}
	bg := Color{40, 50, 60}
	for _, fg := range foregrounds {
		assert.Equal(t, bg, Composite(fg, bg), "fg %v", fg)
	}
}

func TestComposite_Truncates(t *testing.T) {
	// 100*200/255 + 255*55/255 = 133.43 -> 133 (not 134 via rounding)
	got := Composite(color.NRGBA{R: 100, G: 149, B: 237, A: 200}, Color{255, 255, 255})
	assert.Equal(t, Color{133, 171, 240}, got)
}

func TestComposite_HalfAlpha(t *testing.T) {
	got := Composite(color.NRGBA{R: 200, G: 0, B: 90, A: 128}, Color{10, 250, 100})
	// a = 128/255: 105.37, 124.51, 94.98
	assert.Equal(t, Color{105, 124, 94}, got)
}
