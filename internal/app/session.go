// internal/app/session.go
package app

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/timg/internal/config"
	"github.com/llehouerou/timg/internal/errmsg"
	"github.com/llehouerou/timg/internal/keymap"
	"github.com/llehouerou/timg/internal/picture"
	"github.com/llehouerou/timg/internal/rgb"
	"github.com/llehouerou/timg/internal/ui/help"
	"github.com/llehouerou/timg/internal/ui/styles"
	"github.com/llehouerou/timg/internal/viewport"
)

// DefaultTermSize is used, with a warning, when the terminal size cannot be
// read. It is in cells: 80 columns by 40 rows, i.e. 80x80 pixels.
var DefaultTermSize = viewport.Pt(80, 40)

// SizeFunc reports the terminal size in cells.
type SizeFunc func() (cols, rows int, err error)

// Options wires a session to its terminal.
type Options struct {
	In        io.Reader // one byte per key, raw mode
	Out       io.Writer // frames, status line, help
	Size      SizeFunc
	Styles    *styles.Styles
	LineBreak string // "\r\n" in raw mode
}

// Session is one interactive viewing of an image. It runs on the calling
// goroutine and blocks on single-byte reads.
type Session struct {
	src      *picture.Source
	settings *config.Settings
	opts     Options

	in       io.Reader
	out      *bufio.Writer
	resolver *keymap.Resolver

	machine    *viewport.Machine
	cells      viewport.Position // terminal size in cells
	term       viewport.Position // pixel area of the frame
	started    bool
	annotation viewport.Annotation
}

// New creates a session for src.
func New(src *picture.Source, settings *config.Settings, opts Options) *Session {
	if opts.LineBreak == "" {
		opts.LineBreak = "\r\n"
	}
	return &Session{
		src:      src,
		settings: settings,
		opts:     opts,
		in:       opts.In,
		out:      bufio.NewWriter(opts.Out),
		resolver: keymap.NewResolver(keymap.All),
	}
}

// errReinit restarts the outer loop.
var errReinit = errors.New("reinit")

// Run shows the image until the user quits or input ends. End of input is
// a normal exit.
func (s *Session) Run() error {
	log.Info("session start", "path", s.src.Path, "size", s.src.Size(), "bytes", s.src.Bytes)

	var kept viewport.Transforms
	for {
		state := s.init(kept)
		err := s.loop(&state)
		switch {
		case errors.Is(err, errReinit):
			kept = state.Transforms
			continue
		case errors.Is(err, io.EOF):
			err = nil
		}
		if ferr := s.finish(); err == nil {
			err = ferr
		}
		return err
	}
}

// init measures the terminal and resets the viewport, keeping the
// transforms already applied to the source.
func (s *Session) init(kept viewport.Transforms) viewport.State {
	s.cells = s.measure()
	if !s.started {
		// Make room so the first frame does not overwrite the scrollback.
		s.out.WriteString(ansi.ScrollUp(s.cells.Y))
	}

	// One text row is kept for the status line.
	s.term = viewport.Pt(s.cells.X, (s.cells.Y-1)*s.settings.Mode.RowPixels())
	s.machine = viewport.NewMachine(s.settings.Viewport, s.term, s.src.Size())

	s.out.WriteString(ansi.EraseEntireScreen)
	log.Debug("init", "cells", s.cells, "pixels", s.term, "full_scale", s.machine.FullScale())
	return s.machine.Init(kept)
}

func (s *Session) measure() viewport.Position {
	if s.settings.TermSize != (viewport.Position{}) {
		return clampCells(s.settings.TermSize)
	}
	if s.opts.Size != nil {
		cols, rows, err := s.opts.Size()
		if err == nil && cols > 0 && rows > 0 {
			return clampCells(viewport.Pt(cols, rows))
		}
		log.Warn("cannot read terminal size, using default", "err", err, "size", DefaultTermSize)
	}
	return DefaultTermSize
}

// clampCells keeps at least one frame row above the status line.
func clampCells(p viewport.Position) viewport.Position {
	return viewport.Pt(max(p.X, 1), max(p.Y, 2))
}

// loop draws frames and applies commands until the session ends or needs
// a re-init.
func (s *Session) loop(state *viewport.State) error {
	for {
		if err := s.draw(*state); err != nil {
			return err
		}
		s.started = true

		b, err := s.readByte()
		if err != nil {
			return err
		}

		cmd := s.resolver.Command(b)
		next, out := s.machine.Apply(*state, cmd)
		*state = next
		s.annotation = out.Annotation
		log.Debug("command", "key", keymap.KeyName(b), "cmd", fmt.Sprintf("%T", cmd), "annotation", out.Annotation.Description())

		switch out.Effect {
		case viewport.EffectRedraw:
			s.out.WriteString(ansi.EraseEntireScreen)
		case viewport.EffectReinit:
			return errReinit
		case viewport.EffectQuit:
			return nil
		case viewport.EffectHelp:
			if err := s.showHelp(*state); err != nil {
				return err
			}
		case viewport.EffectTransform:
			s.src.Apply(out.Op)
			s.machine.SetImage(s.src.Size())
			state.Scale = min(state.Scale, s.machine.FullScale())
		}
	}
}

func (s *Session) readByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(s.in, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, errmsg.Wrap(errmsg.ExitIO, errmsg.OpTermRead, err)
	}
	return buf[0], nil
}

// draw writes one full frame and the status line.
func (s *Session) draw(state viewport.State) error {
	start := time.Now()
	frame := s.Frame(state)

	s.out.WriteString(ansi.CursorHomePosition)
	s.out.WriteString(frame)
	s.out.WriteString(s.opts.LineBreak)
	s.out.WriteString(s.statusLine(state))
	s.annotation = viewport.Annotation{}

	if err := s.out.Flush(); err != nil {
		return errmsg.Wrap(errmsg.ExitIO, errmsg.OpTermWrite, err)
	}
	log.Debug("frame", "bytes", len(frame), "took", time.Since(start))
	return nil
}

// Frame renders the visible window of the source for state.
func (s *Session) Frame(state viewport.State) string {
	win := s.machine.Window(state)
	rect := image.Rect(state.Pos.X, state.Pos.Y, state.Pos.X+win.X, state.Pos.Y+win.Y)
	img := s.src.Render(rect, s.term.X, s.term.Y, picture.Options{
		Filter:    state.Filter,
		Invert:    state.Inverted,
		Grayscale: state.Grayscale,
	})

	asm := s.settings.Assembler(state.OptLevel, s.opts.LineBreak)
	return asm.Render(img, s.background(state), s.term.X, s.term.Y)
}

func (s *Session) background(state viewport.State) rgb.Paint {
	palette := s.settings.Palette
	if state.Background < 0 || state.Background >= len(palette) {
		return palette[0]
	}
	return palette[state.Background]
}

func (s *Session) showHelp(state viewport.State) error {
	st := s.opts.Styles
	if st == nil {
		return nil
	}

	h := help.New(st, s.cells.X, s.cells.Y)
	h.SetParams(help.Params{
		Path:           s.src.Path,
		Bytes:          s.src.Bytes,
		ImageSize:      s.src.Size(),
		Transforms:     state.Transforms,
		ZoomRatio:      s.settings.Viewport.ZoomRatio,
		ShortMoveRatio: s.settings.Viewport.ShortMoveRatio,
		LongMoveRatio:  s.settings.Viewport.LongMoveRatio,
		OptLevel:       state.OptLevel,
		Palette:        s.settings.Palette,
		Background:     state.Background,
		Filter:         state.Filter,
	})

	for {
		s.out.WriteString(ansi.EraseEntireScreen)
		s.out.WriteString(ansi.CursorHomePosition)
		s.out.WriteString(strings.Join(h.View(), s.opts.LineBreak))
		if err := s.out.Flush(); err != nil {
			return errmsg.Wrap(errmsg.ExitIO, errmsg.OpTermWrite, err)
		}

		b, err := s.readByte()
		if err != nil {
			return err
		}
		if h.HandleKey(keymap.KeyName(b)) {
			break
		}
	}

	s.out.WriteString(ansi.EraseEntireScreen)
	return nil
}

// finish leaves the cursor at the start of a fresh line.
func (s *Session) finish() error {
	s.out.WriteString(ansi.CursorHorizontalAbsolute(1))
	s.out.WriteString(s.opts.LineBreak)
	if err := s.out.Flush(); err != nil {
		return errmsg.Wrap(errmsg.ExitIO, errmsg.OpTermWrite, err)
	}
	return nil
}
