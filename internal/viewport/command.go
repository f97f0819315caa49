package viewport

import "fmt"

// Command is one user command. The concrete types below are the variants.
type Command interface {
	command()
}

// Axis is a pan direction axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Step is a pan magnitude.
type Step uint8

const (
	// StepPixel moves by one terminal pixel worth of source pixels.
	StepPixel Step = iota
	// StepShort moves by the short ratio of the visible window.
	StepShort
	// StepLong moves by the long ratio of the visible window.
	StepLong
)

// TransformOp is an in-place change to the source image.
type TransformOp uint8

const (
	OpNone TransformOp = iota
	OpFlipH
	OpFlipV
	OpRotate90
	OpRotate270
)

func (op TransformOp) String() string {
	switch op {
	case OpFlipH:
		return "flip horizontal"
	case OpFlipV:
		return "flip vertical"
	case OpRotate90:
		return "rotate 90"
	case OpRotate270:
		return "rotate 270"
	default:
		return "none"
	}
}

type (
	// Pan moves the window. Forward is right or down.
	Pan struct {
		Axis    Axis
		Forward bool
		Step    Step
	}
	// Zoom scales the window around its center.
	Zoom struct {
		In bool
	}
	// ResetView restores full scale and the origin position.
	ResetView struct{}
	// ResetScale restores full scale only.
	ResetScale struct{}
	// ResetPosition moves the window back to the origin only.
	ResetPosition struct{}
	// UnitRatio shows one source pixel per terminal pixel.
	UnitRatio struct{}
	// CycleBackground selects the next palette entry.
	CycleBackground struct{}
	// ResetBackground selects the first palette entry.
	ResetBackground struct{}
	// CycleFilter selects the next resampling filter.
	CycleFilter struct{}
	// Transform flips or rotates the source image.
	Transform struct {
		Op TransformOp
	}
	ToggleInvert    struct{}
	ToggleGrayscale struct{}
	// AdjustOpt changes the optimization level by Delta.
	AdjustOpt struct {
		Delta int
	}
	Redraw struct{}
	Reinit struct{}
	Quit   struct{}
	Help   struct{}
	// Invalid is an unbound key.
	Invalid struct {
		Key byte
	}
)

func (Pan) command()             {}
func (Zoom) command()            {}
func (ResetView) command()       {}
func (ResetScale) command()      {}
func (ResetPosition) command()   {}
func (UnitRatio) command()       {}
func (CycleBackground) command() {}
func (ResetBackground) command() {}
func (CycleFilter) command()     {}
func (Transform) command()       {}
func (ToggleInvert) command()    {}
func (ToggleGrayscale) command() {}
func (AdjustOpt) command()       {}
func (Redraw) command()          {}
func (Reinit) command()          {}
func (Quit) command()            {}
func (Help) command()            {}
func (Invalid) command()         {}

// AnnotationKind classifies a transient, non-fatal interaction error.
type AnnotationKind uint8

const (
	AnnotNone AnnotationKind = iota
	// AnnotBoundary: a pan tried to move past the top or left edge.
	AnnotBoundary
	// AnnotClamped: a zoom out tried to go beyond full scale.
	AnnotClamped
	// AnnotFloor: the optimization level tried to go below zero.
	AnnotFloor
	// AnnotInvalid: the key is not bound.
	AnnotInvalid
)

// Annotation is shown once on the status line after the command.
type Annotation struct {
	Kind   AnnotationKind
	Detail string
}

// IsZero reports whether there is nothing to show.
func (a Annotation) IsZero() bool {
	return a.Kind == AnnotNone
}

// String returns the short status-line code.
func (a Annotation) String() string {
	switch a.Kind {
	case AnnotBoundary:
		return "RB"
	case AnnotClamped:
		return "RC"
	case AnnotFloor:
		return "FV"
	case AnnotInvalid:
		return "EI:" + a.Detail
	default:
		return ""
	}
}

// Description is the long form, for logs.
func (a Annotation) Description() string {
	switch a.Kind {
	case AnnotBoundary:
		return "reached boundary"
	case AnnotClamped:
		return "clamped to full scale"
	case AnnotFloor:
		return "optimization level floor"
	case AnnotInvalid:
		return "invalid input " + a.Detail
	default:
		return ""
	}
}

func invalidKey(b byte) Annotation {
	return Annotation{Kind: AnnotInvalid, Detail: fmt.Sprintf("%q", rune(b))}
}

// Effect is work the caller must do outside the viewport state.
type Effect uint8

const (
	EffectNone Effect = iota
	// EffectRedraw repaints the whole screen.
	EffectRedraw
	// EffectReinit re-measures the terminal and starts over.
	EffectReinit
	// EffectQuit ends the session.
	EffectQuit
	// EffectHelp shows the help overlay.
	EffectHelp
	// EffectTransform applies Outcome.Op to the source image.
	EffectTransform
)

// Outcome is what a command produced besides the new state.
type Outcome struct {
	Annotation Annotation
	Effect     Effect
	Op         TransformOp
}
