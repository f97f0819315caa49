// Package keymap defines key bindings and maps them to viewport commands.
package keymap

import "github.com/llehouerou/timg/internal/viewport"

// Action represents a user-triggerable action.
type Action string

const (
	// Pixel pans
	ActionPanLeft  Action = "pan_left"
	ActionPanRight Action = "pan_right"
	ActionPanUp    Action = "pan_up"
	ActionPanDown  Action = "pan_down"

	// Short pans (a quarter of the window by default)
	ActionPanLeftShort  Action = "pan_left_short"
	ActionPanRightShort Action = "pan_right_short"
	ActionPanUpShort    Action = "pan_up_short"
	ActionPanDownShort  Action = "pan_down_short"

	// Long pans (three quarters of the window by default)
	ActionPanLeftLong  Action = "pan_left_long"
	ActionPanRightLong Action = "pan_right_long"
	ActionPanUpLong    Action = "pan_up_long"
	ActionPanDownLong  Action = "pan_down_long"

	// Zoom
	ActionZoomIn        Action = "zoom_in"
	ActionZoomOut       Action = "zoom_out"
	ActionResetView     Action = "reset_view"
	ActionResetScale    Action = "reset_scale"
	ActionResetPosition Action = "reset_position"
	ActionUnitRatio     Action = "unit_ratio"

	// Render
	ActionOptUp       Action = "opt_up"
	ActionOptUpLong   Action = "opt_up_long"
	ActionOptDown     Action = "opt_down"
	ActionOptDownLong Action = "opt_down_long"
	ActionCycleBg     Action = "cycle_background"
	ActionResetBg     Action = "reset_background"
	ActionCycleFilter Action = "cycle_filter"

	// View
	ActionFlipH     Action = "flip_horizontal"
	ActionFlipV     Action = "flip_vertical"
	ActionRotate    Action = "rotate"
	ActionRotateCCW Action = "rotate_ccw"
	ActionInvert    Action = "invert"
	ActionGrayscale Action = "grayscale"

	// Session
	ActionRedraw Action = "redraw"
	ActionReinit Action = "reinit"
	ActionHelp   Action = "help"
	ActionQuit   Action = "quit"
)

var commands = map[Action]viewport.Command{
	ActionPanLeft:  viewport.Pan{Axis: viewport.AxisX, Step: viewport.StepPixel},
	ActionPanRight: viewport.Pan{Axis: viewport.AxisX, Forward: true, Step: viewport.StepPixel},
	ActionPanUp:    viewport.Pan{Axis: viewport.AxisY, Step: viewport.StepPixel},
	ActionPanDown:  viewport.Pan{Axis: viewport.AxisY, Forward: true, Step: viewport.StepPixel},

	ActionPanLeftShort:  viewport.Pan{Axis: viewport.AxisX, Step: viewport.StepShort},
	ActionPanRightShort: viewport.Pan{Axis: viewport.AxisX, Forward: true, Step: viewport.StepShort},
	ActionPanUpShort:    viewport.Pan{Axis: viewport.AxisY, Step: viewport.StepShort},
	ActionPanDownShort:  viewport.Pan{Axis: viewport.AxisY, Forward: true, Step: viewport.StepShort},

	ActionPanLeftLong:  viewport.Pan{Axis: viewport.AxisX, Step: viewport.StepLong},
	ActionPanRightLong: viewport.Pan{Axis: viewport.AxisX, Forward: true, Step: viewport.StepLong},
	ActionPanUpLong:    viewport.Pan{Axis: viewport.AxisY, Step: viewport.StepLong},
	ActionPanDownLong:  viewport.Pan{Axis: viewport.AxisY, Forward: true, Step: viewport.StepLong},

	ActionZoomIn:        viewport.Zoom{In: true},
	ActionZoomOut:       viewport.Zoom{In: false},
	ActionResetView:     viewport.ResetView{},
	ActionResetScale:    viewport.ResetScale{},
	ActionResetPosition: viewport.ResetPosition{},
	ActionUnitRatio:     viewport.UnitRatio{},

	ActionOptUp:       viewport.AdjustOpt{Delta: 1},
	ActionOptUpLong:   viewport.AdjustOpt{Delta: 10},
	ActionOptDown:     viewport.AdjustOpt{Delta: -1},
	ActionOptDownLong: viewport.AdjustOpt{Delta: -10},
	ActionCycleBg:     viewport.CycleBackground{},
	ActionResetBg:     viewport.ResetBackground{},
	ActionCycleFilter: viewport.CycleFilter{},

	ActionFlipH:     viewport.Transform{Op: viewport.OpFlipH},
	ActionFlipV:     viewport.Transform{Op: viewport.OpFlipV},
	ActionRotate:    viewport.Transform{Op: viewport.OpRotate90},
	ActionRotateCCW: viewport.Transform{Op: viewport.OpRotate270},
	ActionInvert:    viewport.ToggleInvert{},
	ActionGrayscale: viewport.ToggleGrayscale{},

	ActionRedraw: viewport.Redraw{},
	ActionReinit: viewport.Reinit{},
	ActionHelp:   viewport.Help{},
	ActionQuit:   viewport.Quit{},
}

// Command returns the viewport command for an action.
func Command(a Action) (viewport.Command, bool) {
	c, ok := commands[a]
	return c, ok
}
