package help

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/timg/internal/rgb"
	"github.com/llehouerou/timg/internal/ui/styles"
	"github.com/llehouerou/timg/internal/viewport"
)

func testParams() Params {
	return Params{
		Path:           "photos/cat.png",
		Bytes:          1536,
		ImageSize:      viewport.Pt(640, 480),
		Transforms:     viewport.Transforms{Rotation: 1},
		ZoomRatio:      0.8,
		ShortMoveRatio: 0.25,
		LongMoveRatio:  0.75,
		OptLevel:       60,
		Palette:        []rgb.Paint{rgb.DefaultPaint, rgb.Solid(rgb.Color{R: 0x88, G: 0x88, B: 0x88})},
		Background:     1,
		Filter:         4,
	}
}

func newTestModel(width, height int) *Model {
	s := styles.T().For(lipgloss.NewRenderer(&bytes.Buffer{}))
	m := New(s, width, height)
	m.SetParams(testParams())
	return m
}

func plain(lines []string) string {
	return ansi.Strip(strings.Join(lines, "\n"))
}

func TestView_ShowsBindingsAndParams(t *testing.T) {
	m := newTestModel(100, 200)

	view := plain(m.View())

	for _, want := range []string{
		"Help", "Move", "Zoom", "Render", "View", "Session",
		"h ", "Move left one pixel step",
		"Q, ctrl+c", "Quit",
		"photos/cat.png (1.5 KiB, 640x480, rot90)",
		"in 0.8000, out 1.2500",
		"short 0.25, long 0.75",
		"nearest bilinear bicubic mitchell lanczos3",
		"none  ██ #888888",
		"any key to close",
	} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "scroll")
}

func TestView_TitleSpansWidth(t *testing.T) {
	m := newTestModel(40, 200)

	title := m.View()[0]
	assert.Equal(t, 40, ansi.StringWidth(title))
	assert.True(t, strings.HasPrefix(ansi.Strip(title), "---"))
}

func TestView_LinesFitWidth(t *testing.T) {
	m := newTestModel(20, 200)

	for _, line := range m.View() {
		assert.LessOrEqual(t, ansi.StringWidth(line), 20, "%q", ansi.Strip(line))
	}
}

func TestScroll(t *testing.T) {
	m := newTestModel(100, 10)
	require.Positive(t, m.maxScroll())

	first := plain(m.View())
	assert.Contains(t, first, "j/k scroll")
	assert.Len(t, m.View(), 10)

	assert.False(t, m.HandleKey("k"), "k at the top stays open")
	assert.Equal(t, 0, m.scrollOffset)

	assert.False(t, m.HandleKey("j"))
	assert.Equal(t, 1, m.scrollOffset)
	assert.NotEqual(t, first, plain(m.View()))

	for range m.maxScroll() + 5 {
		m.HandleKey("j")
	}
	assert.Equal(t, m.maxScroll(), m.scrollOffset)

	assert.True(t, m.HandleKey("q"))
	assert.True(t, m.HandleKey("0x1b"))
}

func TestHandleKey_ClosesOnAnyKeyWhenContentFits(t *testing.T) {
	m := newTestModel(100, 200)
	require.Zero(t, m.maxScroll())

	for _, key := range []string{"j", "k", "q"} {
		assert.True(t, m.HandleKey(key), "key %q", key)
	}
}

func TestSetParamsResetsScroll(t *testing.T) {
	m := newTestModel(100, 10)
	m.HandleKey("j")
	m.SetParams(testParams())
	assert.Equal(t, 0, m.scrollOffset)
}

func TestParams_SanitizesPath(t *testing.T) {
	m := newTestModel(200, 200)
	p := testParams()
	p.Path = "evil\x1b[2J.png"
	m.SetParams(p)

	assert.NotContains(t, strings.Join(m.View(), "\n"), "\x1b[2J")
}
