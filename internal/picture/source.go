// Package picture loads source images and prepares the visible window of one
// for the frame assembler.
package picture

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	// Formats beyond the png/jpeg/gif set imaging registers.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/llehouerou/timg/internal/viewport"
)

// Source is a decoded image plus what the viewer reports about its file.
type Source struct {
	Path  string
	Bytes int64 // file size
	img   *image.NRGBA
}

// Open decodes the file at path, honoring EXIF orientation.
func Open(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", path)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return &Source{Path: path, Bytes: info.Size(), img: imaging.Clone(img)}, nil
}

// FromImage wraps an already decoded image.
func FromImage(img image.Image) *Source {
	return &Source{img: imaging.Clone(img)}
}

// Size returns the current width and height.
func (s *Source) Size() viewport.Position {
	b := s.img.Bounds()
	return viewport.Pt(b.Dx(), b.Dy())
}

// HasAlpha reports whether any pixel is not fully opaque.
func (s *Source) HasAlpha() bool {
	return !s.img.Opaque()
}

// Image returns the current image. Callers must not modify it.
func (s *Source) Image() *image.NRGBA {
	return s.img
}

// Apply flips or rotates the source in place. Rotations are clockwise.
func (s *Source) Apply(op viewport.TransformOp) {
	switch op {
	case viewport.OpFlipH:
		s.img = imaging.FlipH(s.img)
	case viewport.OpFlipV:
		s.img = imaging.FlipV(s.img)
	case viewport.OpRotate90:
		// imaging rotates counter-clockwise.
		s.img = imaging.Rotate270(s.img)
	case viewport.OpRotate270:
		s.img = imaging.Rotate90(s.img)
	}
}

// Options controls how a window is prepared.
type Options struct {
	Filter    int
	Invert    bool
	Grayscale bool
}

// Render crops window out of the source, fits it into maxW x maxH keeping
// the aspect ratio, then applies the color options. The window is clamped
// to the image; nil is returned when nothing of it is left.
func (s *Source) Render(window image.Rectangle, maxW, maxH int, opts Options) *image.NRGBA {
	window = window.Intersect(s.img.Bounds())
	if window.Empty() || maxW <= 0 || maxH <= 0 {
		return nil
	}

	var img image.Image = imaging.Crop(s.img, window)
	w, h := FitDimensions(window.Dx(), window.Dy(), maxW, maxH)

	interp := resize.Lanczos3
	if opts.Filter >= 0 && opts.Filter < len(Filters) {
		interp = Filters[opts.Filter].Interp
	}
	img = resize.Resize(uint(w), uint(h), img, interp)

	if opts.Invert {
		img = imaging.Invert(img)
	}
	if opts.Grayscale {
		img = imaging.Grayscale(img)
	}
	if out, ok := img.(*image.NRGBA); ok {
		return out
	}
	return imaging.Clone(img)
}

// FitDimensions returns the largest size with the aspect ratio of w x h that
// fits in maxW x maxH. The constrained side matches exactly; the other is
// truncated and never below 1.
func FitDimensions(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return maxW, maxH
	}
	// Compare maxW/w with maxH/h without floats.
	if uint64(maxW)*uint64(h) <= uint64(maxH)*uint64(w) {
		return maxW, max(int(uint64(h)*uint64(maxW)/uint64(w)), 1)
	}
	return max(int(uint64(w)*uint64(maxH)/uint64(h)), 1), maxH
}
