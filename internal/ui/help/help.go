// Package help renders the key binding overlay together with the current
// viewer parameters.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/timg/internal/keymap"
	"github.com/llehouerou/timg/internal/picture"
	"github.com/llehouerou/timg/internal/rgb"
	"github.com/llehouerou/timg/internal/ui/render"
	"github.com/llehouerou/timg/internal/ui/styles"
	"github.com/llehouerou/timg/internal/viewport"
)

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"move":    "Move",
	"zoom":    "Zoom",
	"render":  "Render",
	"view":    "View",
	"session": "Session",
}

// Params are the dynamic values listed below the bindings.
type Params struct {
	Path       string
	Bytes      int64
	ImageSize  viewport.Position
	Transforms viewport.Transforms

	ZoomRatio      float64
	ShortMoveRatio float64
	LongMoveRatio  float64
	OptLevel       int

	Palette    []rgb.Paint
	Background int
	Filter     int
}

// Model holds the overlay size and scroll position.
type Model struct {
	styles       *styles.Styles
	width        int
	height       int
	scrollOffset int
	lines        []string
}

// New creates a help overlay for a width x height cell area.
func New(s *styles.Styles, width, height int) *Model {
	return &Model{styles: s, width: width, height: height}
}

// SetParams rebuilds the content and scrolls back to the top.
func (m *Model) SetParams(p Params) {
	m.lines = strings.Split(m.buildContent(p), "\n")
	m.scrollOffset = 0
}

// HandleKey scrolls on j/k when the content overflows and reports whether
// the key closed the overlay. With nothing to scroll every key closes it.
func (m *Model) HandleKey(key string) bool {
	if m.maxScroll() == 0 {
		return true
	}
	switch key {
	case "j":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
		return false
	case "k":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
		return false
	}
	return true
}

// View returns the visible lines, each cut to the overlay width.
func (m *Model) View() []string {
	title := render.Center(" "+m.styles.Gradient("Help")+" ", m.width, "-")

	start := min(m.scrollOffset, len(m.lines))
	end := min(start+m.visibleHeight(), len(m.lines))

	out := make([]string, 0, end-start+4)
	out = append(out, title, "")
	for _, line := range m.lines[start:end] {
		out = append(out, render.TruncateANSI(line, m.width))
	}
	out = append(out, "", m.styles.Muted.Render(render.Truncate(m.footer(), m.width)))
	return out
}

func (m *Model) buildContent(p Params) string {
	var sb strings.Builder

	bindings := make([]keymap.Binding, 0, len(keymap.All))
	for _, ctx := range keymap.Contexts {
		bindings = append(bindings, keymap.ByContext(ctx)...)
	}

	maxKeyWidth := 0
	for _, b := range bindings {
		maxKeyWidth = max(maxKeyWidth, ansi.StringWidth(keyString(b)))
	}

	currentContext := ""
	for _, b := range bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			sb.WriteString(m.styles.Header.Render(categoryLabels[b.Context]))
			sb.WriteString("\n")
			sb.WriteString(m.styles.Separator.Render(render.Separator(maxKeyWidth + 30)))
			sb.WriteString("\n")
			currentContext = b.Context
		}
		sb.WriteString(m.styles.Key.Render(render.Pad(keyString(b), maxKeyWidth)))
		sb.WriteString("  ")
		sb.WriteString(m.styles.Desc.Render(b.Description))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Header.Render("Current"))
	sb.WriteString("\n")
	for _, kv := range m.params(p) {
		sb.WriteString(m.styles.Key.Render(render.Pad(kv[0], maxKeyWidth)))
		sb.WriteString("  ")
		sb.WriteString(kv[1])
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (m *Model) params(p Params) [][2]string {
	image := render.Sanitize(p.Path)
	if image == "" {
		image = "-"
	}
	image = fmt.Sprintf("%s (%s, %dx%d, %s)",
		image, humanize.IBytes(uint64(max(p.Bytes, 0))), p.ImageSize.X, p.ImageSize.Y, p.Transforms)

	backgrounds := make([]string, len(p.Palette))
	for i, bg := range p.Palette {
		backgrounds[i] = m.styles.Swatch(bg)
		if i == p.Background {
			backgrounds[i] = m.styles.Current.Render(backgrounds[i])
		}
	}

	filters := picture.FilterNames()
	for i := range filters {
		if i == p.Filter {
			filters[i] = m.styles.Current.Render(filters[i])
		}
	}

	zoomOut := 0.0
	if p.ZoomRatio > 0 {
		zoomOut = 1 / p.ZoomRatio
	}

	return [][2]string{
		{"image", image},
		{"zoom", m.styles.Muted.Render(fmt.Sprintf("in %.4f, out %.4f", p.ZoomRatio, zoomOut))},
		{"move", m.styles.Muted.Render(fmt.Sprintf("short %.2f, long %.2f", p.ShortMoveRatio, p.LongMoveRatio))},
		{"opt", m.styles.Muted.Render(fmt.Sprint(p.OptLevel))},
		{"filter", strings.Join(filters, " ")},
		{"bg", strings.Join(backgrounds, "  ")},
	}
}

func keyString(b keymap.Binding) string {
	return strings.Join(b.Keys, ", ")
}

func (m *Model) footer() string {
	if len(m.lines) <= m.visibleHeight() {
		return "any key to close"
	}
	return "j/k scroll · any other key to close"
}

// visibleHeight leaves room for the title, footer and their spacing.
func (m *Model) visibleHeight() int {
	return max(m.height-4, 1)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
