package viewport

import (
	"fmt"
	"math"
	"strings"
)

// Default configuration values.
const (
	DefaultZoomRatio      = 0.8
	DefaultShortMoveRatio = 0.25
	DefaultLongMoveRatio  = 0.75
)

// Config holds the fixed parameters of the state machine.
type Config struct {
	// ZoomRatio multiplies the scale on zoom in; its inverse on zoom out.
	// Must be in (0,1).
	ZoomRatio      float64
	ShortMoveRatio float64
	LongMoveRatio  float64
	OptLevel       int // initial optimization level
	Backgrounds    int // palette length
	Filters        int // number of resampling filters
	Filter         int // initial filter index
}

// Transforms records the flips and rotations applied to the source.
type Transforms struct {
	FlipH    bool
	FlipV    bool
	Rotation int // quarter turns clockwise, 0..3
}

func (t Transforms) String() string {
	var parts []string
	if t.Rotation != 0 {
		parts = append(parts, fmt.Sprintf("rot%d", t.Rotation*90))
	}
	if t.FlipH {
		parts = append(parts, "flipH")
	}
	if t.FlipV {
		parts = append(parts, "flipV")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// State is the viewport state for one frame.
type State struct {
	Scale      float64  // source pixels per terminal pixel
	Pos        Position // top-left of the window in source pixels
	Background int
	Filter     int
	OptLevel   int
	Inverted   bool
	Grayscale  bool
	Transforms Transforms
}

// Machine applies commands to states for a given terminal and image size.
type Machine struct {
	cfg   Config
	term  Position
	image Position
	full  float64
}

// NewMachine builds a machine for a terminal pixel area and image size.
func NewMachine(cfg Config, term, image Position) *Machine {
	m := &Machine{cfg: cfg, term: term}
	m.SetImage(image)
	return m
}

// SetImage updates the image size, e.g. after a rotation, and recomputes
// the full scale.
func (m *Machine) SetImage(size Position) {
	m.image = size
	m.full = FullScale(m.term, size)
}

// Config returns the machine configuration.
func (m *Machine) Config() Config { return m.cfg }

// Term returns the terminal pixel area.
func (m *Machine) Term() Position { return m.term }

// Image returns the image size.
func (m *Machine) Image() Position { return m.image }

// FullScale returns the zoom floor for the current sizes.
func (m *Machine) FullScale() float64 { return m.full }

// Init returns the initial state. Transforms already applied to the source
// are carried over since they are not undone by a re-init.
func (m *Machine) Init(kept Transforms) State {
	return State{
		Scale:      m.full,
		Filter:     m.cfg.Filter,
		OptLevel:   m.cfg.OptLevel,
		Transforms: kept,
	}
}

// Window returns the size of the source area visible at s.
func (m *Machine) Window(s State) Position {
	return m.term.MulScale(s.Scale)
}

// Apply advances s by one command. It never fails: out-of-range results are
// corrected and reported through the outcome annotation.
func (m *Machine) Apply(s State, cmd Command) (State, Outcome) {
	var out Outcome

	switch c := cmd.(type) {
	case Pan:
		delta := m.moveLen(s, c)
		if c.Forward {
			s.Pos = s.Pos.Add(delta)
			break
		}
		var clamped bool
		s.Pos, clamped = s.Pos.Sub(delta)
		if clamped {
			out.Annotation = Annotation{Kind: AnnotBoundary}
		}

	case Zoom:
		old := m.Window(s)
		if c.In {
			s.Scale *= m.cfg.ZoomRatio
		} else {
			s.Scale *= 1.0 / m.cfg.ZoomRatio
			if s.Scale > m.full {
				s.Scale = m.full
				out.Annotation = Annotation{Kind: AnnotClamped}
			}
		}
		s.Pos = m.recenter(s.Pos, old, m.Window(s))

	case ResetView:
		s.Scale = m.full
		s.Pos = Position{}

	case ResetScale:
		s.Scale = m.full

	case ResetPosition:
		s.Pos = Position{}

	case UnitRatio:
		old := m.Window(s)
		s.Scale = 1.0
		s.Pos = m.recenter(s.Pos, old, m.Window(s))

	case CycleBackground:
		s.Background = cycle(s.Background, m.cfg.Backgrounds)

	case ResetBackground:
		s.Background = 0

	case CycleFilter:
		s.Filter = cycle(s.Filter, m.cfg.Filters)

	case Transform:
		s.Transforms = s.Transforms.apply(c.Op)
		out.Effect = EffectTransform
		out.Op = c.Op

	case ToggleInvert:
		s.Inverted = !s.Inverted

	case ToggleGrayscale:
		s.Grayscale = !s.Grayscale

	case AdjustOpt:
		s.OptLevel += c.Delta
		if s.OptLevel < 0 {
			s.OptLevel = 0
			out.Annotation = Annotation{Kind: AnnotFloor}
		}

	case Redraw:
		out.Effect = EffectRedraw

	case Reinit:
		out.Effect = EffectReinit

	case Quit:
		out.Effect = EffectQuit

	case Help:
		out.Effect = EffectHelp

	case Invalid:
		out.Annotation = invalidKey(c.Key)
	}

	return s, out
}

// moveLen returns the pan distance for c at s along c.Axis.
func (m *Machine) moveLen(s State, c Pan) Position {
	var n int
	switch c.Step {
	case StepPixel:
		n = max(int(math.Ceil(s.Scale)), 1)
	case StepShort, StepLong:
		ratio := m.cfg.ShortMoveRatio
		if c.Step == StepLong {
			ratio = m.cfg.LongMoveRatio
		}
		win := m.Window(s)
		size := win.X
		if c.Axis == AxisY {
			size = win.Y
		}
		n = int(math.Ceil(float64(size) * ratio))
	}
	if c.Axis == AxisY {
		return Position{Y: n}
	}
	return Position{X: n}
}

// recenter keeps the window center in place when the window size changes
// from old to cur. A growing window is floored at the origin per axis.
func (m *Machine) recenter(pos, old, cur Position) Position {
	shrink, _ := old.Sub(cur)
	pos = pos.Add(shrink.Half())
	grow, _ := cur.Sub(old)
	pos, _ = pos.Sub(grow.Half())
	return pos
}

func (t Transforms) apply(op TransformOp) Transforms {
	switch op {
	case OpFlipH:
		t.FlipH = !t.FlipH
	case OpFlipV:
		t.FlipV = !t.FlipV
	case OpRotate90:
		t.Rotation = (t.Rotation + 1) % 4
	case OpRotate270:
		t.Rotation = (t.Rotation + 3) % 4
	}
	return t
}

func cycle(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}
