package main

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/timg/internal/rgb"
	"github.com/llehouerou/timg/internal/viewport"
)

func TestOutputBox(t *testing.T) {
	tests := []struct {
		name          string
		img           viewport.Position
		width, height int
		termCols      int
		wantW, wantH  int
	}{
		{"terminal width", viewport.Pt(200, 100), 0, 0, 60, 60, 30},
		{"fallback width", viewport.Pt(200, 100), 0, 0, 0, 80, 40},
		{"width only", viewport.Pt(100, 300), 10, 0, 60, 10, 30},
		{"height only", viewport.Pt(100, 50), 0, 5, 60, 20, 10},
		{"both", viewport.Pt(100, 50), 30, 4, 60, 30, 8},
		{"thin image keeps a pixel", viewport.Pt(1000, 1), 10, 0, 0, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := outputBox(tt.img, tt.width, tt.height, tt.termCols, 2)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestParseBackground(t *testing.T) {
	p, err := parseBackground("None")
	require.NoError(t, err)
	assert.True(t, p.Default)

	p, err = parseBackground("0a0b0c")
	require.NoError(t, err)
	assert.Equal(t, rgb.Solid(rgb.Color{R: 10, G: 11, B: 12}), p)

	_, err = parseBackground("fff")
	assert.ErrorIs(t, err, rgb.ErrHexLength)
}

func writeImage(t *testing.T, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "img.png")
	require.NoError(t, imaging.Save(img, path))
	return path
}

func TestRun_Renders(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeImage(t, 4, 4, color.NRGBA{R: 10, G: 200, B: 30, A: 255})

	var stdout, stderr bytes.Buffer
	code := run([]string{"-width", "4", "-filter", "nearest", "-disable-default-colors", path}, &stdout, &stderr, 0)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "48;2;10;200;30")
	assert.True(t, strings.HasSuffix(out, "\x1b[0m\n"))
	assert.Equal(t, 2, strings.Count(out, "\n"), "4 pixel rows make 2 text rows")
}

func TestRun_OutputColors(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	code := run([]string{"-disable-default-colors", "-colors", "48;2;0;0;0:40", "-output-colors"}, &stdout, &stderr, 0)
	require.Equal(t, 0, code)
	assert.Equal(t, "48;2;0;0;0:40\n", stdout.String())
}

func TestRun_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"missing path", nil, 1},
		{"unreadable image", []string{"nope.png"}, 2},
		{"bad background", []string{"-background", "12", "x.png"}, 3},
		{"negative opt level", []string{"-opt-level", "-1", "x.png"}, 3},
		{"unknown filter", []string{"-filter", "box", "x.png"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tt.want, run(tt.args, &stdout, &stderr, 0))
			assert.Empty(t, stdout.String())
			assert.NotEmpty(t, stderr.String())
		})
	}
}
