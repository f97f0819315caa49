// Package frame assembles a pixel grid into the text of one terminal frame.
package frame

import (
	"image"
	"image/color"
	"strings"

	"github.com/llehouerou/timg/internal/cell"
	"github.com/llehouerou/timg/internal/rgb"
)

const resetStyle = "\x1b[0m"

// Assembler renders frames. It keeps no state between frames.
type Assembler struct {
	Encoder   cell.Encoder
	Mode      Mode
	SplitEdge bool
	LineBreak string
}

// Rows returns the number of text rows needed for pixelRows pixel rows.
func (a *Assembler) Rows(pixelRows int) int {
	step := a.Mode.RowPixels()
	return (pixelRows + step - 1) / step
}

// Render draws the cols x pixelRows pixel area of img, anchored at the
// image's top-left corner. Pixels the image does not cover, including the
// missing lower half of a final odd row, are painted with background.
// The output has no trailing line break and ends with a style reset.
func (a *Assembler) Render(img image.Image, background rgb.Paint, cols, pixelRows int) string {
	if cols <= 0 || pixelRows <= 0 {
		return ""
	}

	src := newSampler(img, background)
	step := a.Mode.RowPixels()
	rows := a.Rows(pixelRows)

	var b strings.Builder
	b.Grow(rows * cols * 4)

	var cache cell.Cache
	for row := range rows {
		if row > 0 {
			a.Encoder.Break(&b, &cache, background, a.SplitEdge, a.LineBreak)
		}
		y := row * step
		for x := range cols {
			var c cell.Cell
			if a.Mode == ModeSingle {
				c = cell.Cell{Fg: src.at(x, y), Bg: background}
			} else {
				lower := background
				if y+1 < pixelRows {
					lower = src.at(x, y+1)
				}
				c = cell.Cell{Fg: lower, Bg: src.at(x, y)}
			}
			a.Encoder.Encode(&b, c, &cache)
		}
	}
	b.WriteString(resetStyle)
	return b.String()
}

// sampler reads opaque paints out of an image, compositing alpha against
// the background.
type sampler struct {
	img        image.Image
	nrgba      *image.NRGBA
	bounds     image.Rectangle
	background rgb.Paint
}

func newSampler(img image.Image, background rgb.Paint) sampler {
	s := sampler{background: background}
	if img == nil {
		return s
	}
	s.img = img
	s.bounds = img.Bounds()
	s.nrgba, _ = img.(*image.NRGBA)
	return s
}

func (s sampler) at(x, y int) rgb.Paint {
	p := s.bounds.Min.Add(image.Pt(x, y))
	if s.img == nil || !p.In(s.bounds) {
		return s.background
	}

	var c color.NRGBA
	if s.nrgba != nil {
		c = s.nrgba.NRGBAAt(p.X, p.Y)
	} else {
		c = color.NRGBAModel.Convert(s.img.At(p.X, p.Y)).(color.NRGBA)
	}

	if s.background.Default {
		if c.A == 0 {
			return rgb.DefaultPaint
		}
		return rgb.Solid(rgb.Color{R: c.R, G: c.G, B: c.B})
	}
	return rgb.Solid(rgb.Composite(c, s.background.Color))
}
