package app

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/timg/internal/ui/render"
	"github.com/llehouerou/timg/internal/viewport"
)

const (
	reverse   = "\x1b[7m"
	reset     = "\x1b[0m"
	alertBell = "\x07"
	alertBg   = "\x1b[101m"
)

// statusLine renders the reverse-video summary cut to the terminal width,
// followed by the pending annotation, if any, drawn without moving the
// cursor.
func (s *Session) statusLine(state viewport.State) string {
	size := s.src.Size()
	summary := fmt.Sprintf("ImgSize[%dx%d] Pos[%s] Ratio[%.2f] Opt[%d] Fl[%d] Bg[%d] Help(H) Quit(Q)",
		size.X, size.Y,
		state.Pos,
		state.Scale,
		state.OptLevel,
		state.Filter,
		state.Background,
	)

	return reverse + render.TruncateANSI(summary, s.cells.X) + reset +
		ansi.SaveCursorPosition +
		formatAnnotation(s.annotation) +
		ansi.EraseLineRight +
		ansi.RestoreCursorPosition
}

// formatAnnotation rings the bell and shows a on a red background.
func formatAnnotation(a viewport.Annotation) string {
	if a.IsZero() {
		return ""
	}
	return alertBell + " " + alertBg + a.String() + reset
}
