// Package cell turns terminal cells into text: one glyph per cell plus the
// fewest SGR color codes needed, tracked against a per-frame cache of the
// last emitted colors.
package cell

import (
	"strconv"
	"strings"

	"github.com/llehouerou/timg/internal/rgb"
)

// Default glyphs.
const (
	GlyphLowerHalf = "▄"
	GlyphFull      = "█"
	GlyphBlank     = " "
)

const (
	csi        = "\x1b["
	resetStyle = "\x1b[0m"
)

// Cell is one terminal character cell.
type Cell struct {
	Fg    rgb.Paint
	Bg    rgb.Paint
	Blank bool // draw the blank glyph regardless of colors
}

// Cache holds the colors last emitted to the terminal within one frame.
// The zero value is an empty cache: the next cell emits both colors.
type Cache struct {
	Fg    rgb.Paint
	Bg    rgb.Paint
	valid bool
}

// Reset empties the cache.
func (c *Cache) Reset() {
	*c = Cache{}
}

// Set records p as both the emitted foreground and background.
func (c *Cache) Set(p rgb.Paint) {
	c.Fg, c.Bg, c.valid = p, p, true
}

// Valid reports whether the cache reflects the terminal state.
func (c *Cache) Valid() bool {
	return c.valid
}

// Encoder renders cells. It holds no per-frame state; the Cache passed to
// Encode does.
type Encoder struct {
	Glyph      string
	BlankGlyph string
	// EmptyChar draws BlankGlyph when the foreground is indistinguishable
	// from the background.
	EmptyChar bool
	Metric    rgb.Metric
	Level     int
	Table     Table
}

// Encode appends the codes and glyph for c to w and updates cache.
func (e *Encoder) Encode(w *strings.Builder, c Cell, cache *Cache) {
	bgSame := cache.valid && e.similar(c.Bg, cache.Bg)
	fgSame := cache.valid && e.similar(c.Fg, cache.Fg)

	switch {
	case bgSame && fgSame:
	case fgSame:
		e.writeSGR(w, e.param(c.Bg, false))
		cache.Bg = c.Bg
	case bgSame:
		e.writeSGR(w, e.param(c.Fg, true))
		cache.Fg = c.Fg
	default:
		e.writeSGR(w, e.param(c.Fg, true), e.param(c.Bg, false))
		cache.Fg, cache.Bg = c.Fg, c.Bg
	}
	cache.valid = true

	if c.Blank || (e.EmptyChar && e.similar(c.Fg, c.Bg)) {
		w.WriteString(e.BlankGlyph)
		return
	}
	w.WriteString(e.Glyph)
}

// Break ends a text row. In split-edge mode the style is reset before the
// line break and the background re-asserted for both layers afterwards, so a
// wrapped or cleared line never inherits a stray color; otherwise only the
// line break is written and the cache carries over.
func (e *Encoder) Break(w *strings.Builder, cache *Cache, background rgb.Paint, split bool, lineBreak string) {
	if !split {
		w.WriteString(lineBreak)
		return
	}
	w.WriteString(resetStyle)
	w.WriteString(lineBreak)
	if !background.Default {
		e.writeSGR(w, e.param(background, true), e.param(background, false))
	}
	cache.Set(background)
}

func (e *Encoder) similar(a, b rgb.Paint) bool {
	return e.Metric.SimilarPaint(a, b, e.Level)
}

// param returns the SGR parameter string for p, after table lookup.
func (e *Encoder) param(p rgb.Paint, fg bool) string {
	s := Param(p, fg)
	if mapped, ok := e.Table[s]; ok {
		return mapped
	}
	return s
}

func (e *Encoder) writeSGR(w *strings.Builder, params ...string) {
	w.WriteString(csi)
	for i, p := range params {
		if i > 0 {
			w.WriteByte(';')
		}
		w.WriteString(p)
	}
	w.WriteByte('m')
}

// Param returns the literal SGR parameter string selecting p as the
// foreground (38;2;R;G;B / 39) or background (48;2;R;G;B / 49).
func Param(p rgb.Paint, fg bool) string {
	if p.Default {
		if fg {
			return "39"
		}
		return "49"
	}
	var b strings.Builder
	if fg {
		b.WriteString("38;2;")
	} else {
		b.WriteString("48;2;")
	}
	b.WriteString(strconv.Itoa(int(p.Color.R)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(p.Color.G)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(p.Color.B)))
	return b.String()
}
