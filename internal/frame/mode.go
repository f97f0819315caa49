package frame

import (
	"fmt"

	"github.com/llehouerou/timg/internal/cell"
)

// Mode selects how source pixel rows map onto text rows.
type Mode uint8

const (
	// ModeHalfBlock packs two pixel rows into one text row: the upper pixel
	// is the cell background, the lower one the foreground of a half block.
	ModeHalfBlock Mode = iota
	// ModeSingle draws one pixel per cell as a foreground-colored glyph.
	ModeSingle
)

// ParseMode resolves a mode by name ("half" or "single").
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", "half", "halfblock":
		return ModeHalfBlock, nil
	case "single":
		return ModeSingle, nil
	}
	return 0, fmt.Errorf("unknown render mode %q", name)
}

// String returns the mode name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeHalfBlock:
		return "half"
	case ModeSingle:
		return "single"
	default:
		return "unknown"
	}
}

// RowPixels is the number of pixel rows drawn by one text row.
func (m Mode) RowPixels() int {
	if m == ModeSingle {
		return 1
	}
	return 2
}

// DefaultGlyph is the foreground glyph used when none is configured.
func (m Mode) DefaultGlyph() string {
	if m == ModeSingle {
		return cell.GlyphFull
	}
	return cell.GlyphLowerHalf
}
