// Command timgcat prints an image to the terminal once and exits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/llehouerou/timg/internal/config"
	"github.com/llehouerou/timg/internal/errmsg"
	"github.com/llehouerou/timg/internal/logging"
	"github.com/llehouerou/timg/internal/picture"
	"github.com/llehouerou/timg/internal/rgb"
	"github.com/llehouerou/timg/internal/ui/styles"
	"github.com/llehouerou/timg/internal/viewport"
)

const defaultCols = 80

type options struct {
	width, height  int
	optLevel       int
	background     string
	noSplitEdge    bool
	outputColors   bool
	disableDefault bool
	logLevel       string
}

func main() {
	cols := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols = w
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, cols))
}

func run(args []string, stdout, stderr io.Writer, termCols int) int {
	err := cat(args, stdout, stderr, termCols)
	if errors.Is(err, flag.ErrHelp) {
		return errmsg.ExitOK
	}
	if err != nil {
		st := styles.T().For(lipgloss.NewRenderer(stderr))
		fmt.Fprintln(stderr, st.Error.Render(err.Error()))
	}
	return errmsg.CodeOf(err)
}

func cat(args []string, stdout, stderr io.Writer, termCols int) error {
	cfg, err := config.Load()
	if err != nil {
		return errmsg.Wrap(errmsg.ExitConfig, errmsg.OpConfigLoad, err)
	}

	fs, opts := newFlagSet(cfg, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errmsg.Wrap(errmsg.ExitConfig, errmsg.OpArgs, err)
	}
	if opts.noSplitEdge {
		cfg.SplitEdge = false
	}
	if opts.disableDefault {
		cfg.DefaultColors = false
	}

	settings, err := cfg.Resolve()
	if err != nil {
		return err
	}
	if opts.outputColors {
		fmt.Fprintln(stdout, settings.Table.String())
		return nil
	}
	if opts.optLevel < 0 {
		return errmsg.Wrap(errmsg.ExitConfig, errmsg.OpArgs, config.ErrOptLevel)
	}

	closer, err := logging.Setup(settings.LogFile, opts.logLevel, stderr)
	if err != nil {
		return errmsg.Wrap(errmsg.ExitConfig, errmsg.OpLogSetup, err)
	}
	defer closer.Close()

	background, err := parseBackground(opts.background)
	if err != nil {
		return errmsg.WrapWith(errmsg.ExitConfig, errmsg.OpArgs, "background", err)
	}

	path := fs.Arg(0)
	if path == "" {
		return errmsg.Wrap(errmsg.ExitMissingPath, errmsg.OpArgs, errors.New("no image given, see -help"))
	}
	src, err := picture.Open(path)
	if err != nil {
		return errmsg.WrapWith(errmsg.ExitIO, errmsg.OpImageOpen, path, err)
	}

	size := src.Size()
	maxW, maxH := outputBox(size, opts.width, opts.height, termCols, settings.Mode.RowPixels())
	log.Debug("render", "path", path, "image", size, "box", viewport.Pt(maxW, maxH))

	img := src.Render(image.Rect(0, 0, size.X, size.Y), maxW, maxH, picture.Options{Filter: settings.Viewport.Filter})
	if img == nil {
		return errmsg.WrapWith(errmsg.ExitIO, errmsg.OpImageRender, path, errors.New("empty image"))
	}

	asm := settings.Assembler(opts.optLevel, "\n")
	b := img.Bounds()
	if _, err := fmt.Fprintln(stdout, asm.Render(img, background, b.Dx(), b.Dy())); err != nil {
		return errmsg.Wrap(errmsg.ExitIO, errmsg.OpTermWrite, err)
	}
	return nil
}

func newFlagSet(cfg *config.Config, output io.Writer) (*flag.FlagSet, *options) {
	opts := &options{}
	fs := flag.NewFlagSet("timgcat", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: timgcat [flags] FILE\n\nPrint an image with truecolor escape codes.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.IntVar(&opts.width, "width", 0, "width in columns (default: terminal width)")
	fs.IntVar(&opts.height, "height", 0, "height in text rows (default: from the aspect ratio)")
	fs.IntVar(&opts.optLevel, "opt-level", 1, "color similarity tolerance")
	fs.StringVar(&opts.background, "background", "000000", "background hex color, or none")
	fs.BoolVar(&opts.noSplitEdge, "no-split-edge", false, "keep colors across row ends")
	fs.BoolVar(&opts.outputColors, "output-colors", false, "print the effective color table and exit")
	fs.BoolVar(&opts.disableDefault, "disable-default-colors", false, "do not map the 16 xterm colors to short codes")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level for -log")

	fs.StringVar(&cfg.Foreground, "foreground", cfg.Foreground, "foreground glyph (default depends on -mode)")
	fs.StringVar(&cfg.Filter, "filter", cfg.Filter, "resampling filter name or index")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "half or single")
	fs.StringVar(&cfg.Metric, "metric", cfg.Metric, "color distance: rgb or lab")
	fs.StringVar(&cfg.Colors, "colors", cfg.Colors, "SGR remaps, e.g. 38;2;0;0;0:30")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "append debug logs to this file")

	return fs, opts
}

func parseBackground(s string) (rgb.Paint, error) {
	if strings.EqualFold(s, "none") {
		return rgb.DefaultPaint, nil
	}
	c, err := rgb.ParseHex(s)
	if err != nil {
		return rgb.Paint{}, err
	}
	return rgb.Solid(c), nil
}

// outputBox returns the pixel box the image is fitted into. width is in
// columns and height in text rows; a missing side follows the image's
// aspect ratio, and with neither the terminal width is used.
func outputBox(img viewport.Position, width, height, termCols, rowPixels int) (int, int) {
	if width <= 0 && height <= 0 {
		width = termCols
		if width <= 0 {
			width = defaultCols
		}
	}
	if img.X <= 0 || img.Y <= 0 {
		return max(width, 1), max(height*rowPixels, 1)
	}
	switch {
	case height <= 0:
		return width, max(img.Y*width/img.X, 1)
	case width <= 0:
		h := height * rowPixels
		return max(img.X*h/img.Y, 1), h
	default:
		return width, height * rowPixels
	}
}
