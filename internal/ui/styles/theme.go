// Package styles holds the color theme for the help overlay and diagnostics.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/timg/internal/rgb"
)

// Theme defines the color palette for the application.
type Theme struct {
	Primary   lipgloss.Color // title gradient start
	Secondary lipgloss.Color // title gradient end, section headers

	FgBase   lipgloss.Color // descriptions
	FgMuted  lipgloss.Color // values, footers
	FgSubtle lipgloss.Color // separators

	Key   lipgloss.Color // key names
	Error lipgloss.Color
}

// Styles contains lipgloss styles bound to one renderer.
type Styles struct {
	r *lipgloss.Renderer

	Title     lipgloss.Style
	Header    lipgloss.Style
	Key       lipgloss.Style
	Desc      lipgloss.Style
	Muted     lipgloss.Style
	Separator lipgloss.Style
	Current   lipgloss.Style // the active entry in a list of choices
	Error     lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("252"),
	FgMuted:  lipgloss.Color("245"),
	FgSubtle: lipgloss.Color("240"),

	Key:   lipgloss.Color("39"),
	Error: lipgloss.Color("9"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// For builds the styles of t on r, so color support is detected from the
// stream the text is written to rather than stdout.
func (t *Theme) For(r *lipgloss.Renderer) *Styles {
	return &Styles{
		r:         r,
		Title:     r.NewStyle().Bold(true),
		Header:    r.NewStyle().Foreground(t.Secondary).Bold(true),
		Key:       r.NewStyle().Foreground(t.Key).Bold(true),
		Desc:      r.NewStyle().Foreground(t.FgBase),
		Muted:     r.NewStyle().Foreground(t.FgMuted),
		Separator: r.NewStyle().Foreground(t.FgSubtle),
		Current:   r.NewStyle().Reverse(true),
		Error:     r.NewStyle().Foreground(t.Error).Bold(true),
	}
}

// Swatch renders a two-cell sample of p followed by its name.
func (s *Styles) Swatch(p rgb.Paint) string {
	if p.Default {
		return p.String()
	}
	sample := s.r.NewStyle().Foreground(lipgloss.Color(p.Color.Hex())).Render("██")
	return sample + " " + p.String()
}
