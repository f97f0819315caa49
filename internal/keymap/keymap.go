package keymap

import "fmt"

// Binding describes a single key binding for documentation.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "move", "zoom", "render", "view", "session"
}

// Contexts lists the binding groups in display order.
var Contexts = []string{"move", "zoom", "render", "view", "session"}

// All contains all key bindings for help generation.
var All = []Binding{
	// Move
	{ActionPanLeft, []string{"h"}, "Move left one pixel step", "move"},
	{ActionPanDown, []string{"j"}, "Move down one pixel step", "move"},
	{ActionPanUp, []string{"k"}, "Move up one pixel step", "move"},
	{ActionPanRight, []string{"l"}, "Move right one pixel step", "move"},
	{ActionPanLeftShort, []string{"a"}, "Move left (short)", "move"},
	{ActionPanDownShort, []string{"s"}, "Move down (short)", "move"},
	{ActionPanUpShort, []string{"w"}, "Move up (short)", "move"},
	{ActionPanRightShort, []string{"d"}, "Move right (short)", "move"},
	{ActionPanLeftLong, []string{"A"}, "Move left (long)", "move"},
	{ActionPanDownLong, []string{"S"}, "Move down (long)", "move"},
	{ActionPanUpLong, []string{"W"}, "Move up (long)", "move"},
	{ActionPanRightLong, []string{"D"}, "Move right (long)", "move"},
	{ActionResetPosition, []string{"0"}, "Back to top-left", "move"},

	// Zoom
	{ActionZoomIn, []string{"+", "c"}, "Zoom in", "zoom"},
	{ActionZoomOut, []string{"-", "x"}, "Zoom out", "zoom"},
	{ActionResetView, []string{"X"}, "Fit whole image", "zoom"},
	{ActionResetScale, []string{"e"}, "Fit scale, keep position", "zoom"},
	{ActionUnitRatio, []string{"C"}, "One source pixel per pixel", "zoom"},

	// Render
	{ActionOptUp, []string{"o"}, "Optimization +1", "render"},
	{ActionOptUpLong, []string{"O"}, "Optimization +10", "render"},
	{ActionOptDown, []string{"i"}, "Optimization -1", "render"},
	{ActionOptDownLong, []string{"I"}, "Optimization -10", "render"},
	{ActionCycleBg, []string{"z"}, "Next background", "render"},
	{ActionResetBg, []string{"Z"}, "First background", "render"},
	{ActionCycleFilter, []string{"f"}, "Next resampling filter", "render"},

	// View
	{ActionFlipH, []string{"g"}, "Flip horizontally", "view"},
	{ActionFlipV, []string{"G"}, "Flip vertically", "view"},
	{ActionRotate, []string{"y"}, "Rotate clockwise", "view"},
	{ActionRotateCCW, []string{"Y"}, "Rotate counter-clockwise", "view"},
	{ActionInvert, []string{"m"}, "Invert colors", "view"},
	{ActionGrayscale, []string{"M"}, "Grayscale", "view"},

	// Session
	{ActionRedraw, []string{"r"}, "Redraw", "session"},
	{ActionReinit, []string{"R"}, "Re-measure terminal", "session"},
	{ActionHelp, []string{"H", "?"}, "Show help", "session"},
	{ActionQuit, []string{"Q", "ctrl+c"}, "Quit", "session"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// KeyName returns the binding name of a raw input byte.
func KeyName(b byte) string {
	switch {
	case b == 0x03:
		return "ctrl+c"
	case b >= 0x20 && b < 0x7f:
		return string(rune(b))
	default:
		return fmt.Sprintf("0x%02x", b)
	}
}
