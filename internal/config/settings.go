package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/timg/internal/cell"
	"github.com/llehouerou/timg/internal/errmsg"
	"github.com/llehouerou/timg/internal/frame"
	"github.com/llehouerou/timg/internal/picture"
	"github.com/llehouerou/timg/internal/rgb"
	"github.com/llehouerou/timg/internal/viewport"
)

// Validation errors.
var (
	ErrRatio    = errors.New("ratio out of range")
	ErrOptLevel = errors.New("optimization level must not be negative")
	ErrTermSize = errors.New("term_size must be \"cols,rows\" with positive values")
	ErrGlyph    = errors.New("glyph must be a single character one cell wide")
)

// Settings is a validated Config, ready to drive a session.
type Settings struct {
	// Palette is the background cycle. Index 0 is the terminal default.
	Palette  []rgb.Paint
	Viewport viewport.Config
	TermSize viewport.Position // in cells; zero means detect

	Mode      frame.Mode
	Glyph     string
	Blank     string
	EmptyChar bool
	SplitEdge bool
	Metric    rgb.Metric
	Table     cell.Table

	LogFile string
}

// Resolve validates c. Errors carry the exit code main should use.
func (c *Config) Resolve() (*Settings, error) {
	s := &Settings{
		EmptyChar: c.EmptyChar,
		SplitEdge: c.SplitEdge,
		LogFile:   c.LogFile,
	}

	colors, err := rgb.ParsePalette(c.Backgrounds)
	if err != nil {
		return nil, errmsg.WrapWith(errmsg.ExitConfig, errmsg.OpConfig, "backgrounds", err)
	}
	s.Palette = make([]rgb.Paint, 0, len(colors)+1)
	s.Palette = append(s.Palette, rgb.DefaultPaint)
	for _, col := range colors {
		s.Palette = append(s.Palette, rgb.Solid(col))
	}

	if err := c.validateRatios(); err != nil {
		return nil, errmsg.Wrap(errmsg.ExitConfig, errmsg.OpConfig, err)
	}
	if c.OptLevel < 0 {
		return nil, errmsg.Wrap(errmsg.ExitConfig, errmsg.OpConfig, ErrOptLevel)
	}

	if c.TermSize != "" {
		s.TermSize, err = ParseTermSize(c.TermSize)
		if err != nil {
			return nil, errmsg.Wrap(errmsg.ExitConfig, errmsg.OpConfig, err)
		}
	}

	filter, err := picture.LookupFilter(c.Filter)
	if err != nil {
		return nil, errmsg.Wrap(errmsg.ExitLookup, errmsg.OpFilterLookup, err)
	}
	s.Mode, err = frame.ParseMode(c.Mode)
	if err != nil {
		return nil, errmsg.Wrap(errmsg.ExitLookup, errmsg.OpModeLookup, err)
	}
	s.Metric, err = rgb.ParseMetric(c.Metric)
	if err != nil {
		return nil, errmsg.Wrap(errmsg.ExitLookup, errmsg.OpMetricLookup, err)
	}

	s.Glyph = c.Foreground
	if s.Glyph == "" {
		s.Glyph = s.Mode.DefaultGlyph()
	}
	s.Blank = c.Blank
	if s.Blank == "" {
		s.Blank = cell.GlyphBlank
	}
	for _, g := range []string{s.Glyph, s.Blank} {
		if err := ValidateGlyph(g); err != nil {
			return nil, errmsg.Wrap(errmsg.ExitConfig, errmsg.OpConfig, err)
		}
	}

	s.Table, err = c.table()
	if err != nil {
		return nil, errmsg.WrapWith(errmsg.ExitConfig, errmsg.OpConfig, "colors", err)
	}

	s.Viewport = viewport.Config{
		ZoomRatio:      c.ZoomRatio,
		ShortMoveRatio: c.ShortMoveRatio,
		LongMoveRatio:  c.LongMoveRatio,
		OptLevel:       c.OptLevel,
		Backgrounds:    len(s.Palette),
		Filters:        len(picture.Filters),
		Filter:         filter,
	}

	return s, nil
}

func (c *Config) validateRatios() error {
	if c.ZoomRatio <= 0 || c.ZoomRatio >= 1 {
		return fmt.Errorf("%w: zoom_ratio %v must be in (0,1)", ErrRatio, c.ZoomRatio)
	}
	if c.ShortMoveRatio <= 0 {
		return fmt.Errorf("%w: short_move_ratio %v must be positive", ErrRatio, c.ShortMoveRatio)
	}
	if c.LongMoveRatio <= 0 {
		return fmt.Errorf("%w: long_move_ratio %v must be positive", ErrRatio, c.LongMoveRatio)
	}
	return nil
}

// Table builds the color table: the xterm defaults when enabled, overridden
// by the configured entries.
func (c *Config) table() (cell.Table, error) {
	custom, err := cell.ParseTable(c.Colors)
	if err != nil {
		return nil, err
	}
	if !c.DefaultColors {
		return custom, nil
	}
	return cell.DefaultTable().Merge(custom), nil
}

// ParseTermSize parses "cols,rows".
func ParseTermSize(s string) (viewport.Position, error) {
	cols, rows, ok := strings.Cut(s, ",")
	if !ok {
		return viewport.Position{}, fmt.Errorf("%w: %q", ErrTermSize, s)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(cols))
	h, errH := strconv.Atoi(strings.TrimSpace(rows))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return viewport.Position{}, fmt.Errorf("%w: %q", ErrTermSize, s)
	}
	return viewport.Pt(w, h), nil
}

// ValidateGlyph checks that g is one grapheme cluster of display width 1.
func ValidateGlyph(g string) error {
	if uniseg.GraphemeClusterCount(g) != 1 || runewidth.StringWidth(g) != 1 {
		return fmt.Errorf("%w: %q", ErrGlyph, g)
	}
	return nil
}

// Encoder builds the cell encoder for these settings at an optimization
// level.
func (s *Settings) Encoder(level int) cell.Encoder {
	return cell.Encoder{
		Glyph:      s.Glyph,
		BlankGlyph: s.Blank,
		EmptyChar:  s.EmptyChar,
		Metric:     s.Metric,
		Level:      level,
		Table:      s.Table,
	}
}

// Assembler builds a frame assembler at an optimization level.
func (s *Settings) Assembler(level int, lineBreak string) frame.Assembler {
	return frame.Assembler{
		Encoder:   s.Encoder(level),
		Mode:      s.Mode,
		SplitEdge: s.SplitEdge,
		LineBreak: lineBreak,
	}
}
