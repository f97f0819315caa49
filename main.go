package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/llehouerou/timg/internal/app"
	"github.com/llehouerou/timg/internal/config"
	"github.com/llehouerou/timg/internal/errmsg"
	"github.com/llehouerou/timg/internal/logging"
	"github.com/llehouerou/timg/internal/picture"
	"github.com/llehouerou/timg/internal/ui/styles"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	st := styles.T().For(lipgloss.NewRenderer(os.Stderr))

	err := view(args)
	if errors.Is(err, flag.ErrHelp) {
		return errmsg.ExitOK
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, st.Error.Render(err.Error()))
	}
	return errmsg.CodeOf(err)
}

func view(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errmsg.Wrap(errmsg.ExitConfig, errmsg.OpConfigLoad, err)
	}

	fs, logLevel := newFlagSet(cfg, os.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errmsg.Wrap(errmsg.ExitConfig, errmsg.OpArgs, err)
	}
	path := fs.Arg(0)
	if path == "" {
		return errmsg.Wrap(errmsg.ExitMissingPath, errmsg.OpArgs, errors.New("no image given, see -help"))
	}

	settings, err := cfg.Resolve()
	if err != nil {
		return err
	}

	closer, err := logging.Setup(settings.LogFile, *logLevel, os.Stderr)
	if err != nil {
		return errmsg.Wrap(errmsg.ExitConfig, errmsg.OpLogSetup, err)
	}
	defer closer.Close()

	src, err := picture.Open(path)
	if err != nil {
		return errmsg.WrapWith(errmsg.ExitIO, errmsg.OpImageOpen, path, err)
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return errmsg.Wrap(errmsg.ExitIO, errmsg.OpTermRaw, err)
		}
		defer func() {
			if err := term.Restore(fd, old); err != nil {
				log.Error("restore terminal", "err", err)
			}
		}()
	} else {
		log.Warn("stdin is not a terminal, keys are read as they arrive")
	}

	sess := app.New(src, settings, app.Options{
		In:        os.Stdin,
		Out:       os.Stderr,
		Size:      terminalSize,
		Styles:    styles.T().For(lipgloss.NewRenderer(os.Stderr)),
		LineBreak: "\r\n",
	})
	return sess.Run()
}

// terminalSize asks stderr first since that is where frames go, then the
// other standard streams.
func terminalSize() (int, int, error) {
	var err error
	for _, f := range []*os.File{os.Stderr, os.Stdout, os.Stdin} {
		var cols, rows int
		cols, rows, err = term.GetSize(int(f.Fd()))
		if err == nil {
			return cols, rows, nil
		}
	}
	return 0, 0, err
}

// newFlagSet binds flags to cfg so that command-line values override the
// config files.
func newFlagSet(cfg *config.Config, output io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet("timg", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: timg [flags] FILE\n\nInteractive truecolor image viewer. Press H inside for keys.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.Backgrounds, "bgs", cfg.Backgrounds, "background colors cycled with z, comma-separated hex")
	fs.Float64Var(&cfg.ZoomRatio, "zoom-ratio", cfg.ZoomRatio, "zoom step, in (0,1)")
	fs.Float64Var(&cfg.ShortMoveRatio, "short-move-ratio", cfg.ShortMoveRatio, "short pan as a fraction of the window")
	fs.Float64Var(&cfg.LongMoveRatio, "long-move-ratio", cfg.LongMoveRatio, "long pan as a fraction of the window")
	fs.IntVar(&cfg.OptLevel, "opt-level", cfg.OptLevel, "color similarity tolerance; higher means fewer codes")
	fs.StringVar(&cfg.TermSize, "term-size", cfg.TermSize, "terminal size as cols,rows instead of detecting it")
	fs.StringVar(&cfg.Foreground, "foreground", cfg.Foreground, "foreground glyph (default depends on -mode)")
	fs.StringVar(&cfg.Blank, "blank", cfg.Blank, "glyph for cells whose colors match")
	fs.BoolVar(&cfg.EmptyChar, "empty-char", cfg.EmptyChar, "draw the blank glyph when foreground matches background")
	fs.BoolVar(&cfg.SplitEdge, "split-edge", cfg.SplitEdge, "reset colors at the end of each row")
	fs.StringVar(&cfg.Filter, "filter", cfg.Filter, "resampling filter: nearest, bilinear, bicubic, mitchell, lanczos3 or 0-4")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "half (two pixels per cell) or single")
	fs.StringVar(&cfg.Metric, "metric", cfg.Metric, "color distance: rgb or lab")
	fs.StringVar(&cfg.Colors, "colors", cfg.Colors, "SGR remaps, e.g. 38;2;0;0;0:30,48;2;0;0;0:40")
	fs.BoolVar(&cfg.DefaultColors, "default-colors", cfg.DefaultColors, "map the 16 xterm colors to short codes")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "append debug logs to this file (or set "+logging.EnvFile+")")
	level := fs.String("log-level", "", "log level for -log (debug, info, warn, error)")

	return fs, level
}
