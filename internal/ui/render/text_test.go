package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean ascii untouched", "cat.png", "cat.png"},
		{"tab kept", "a\tb", "a\tb"},
		{"escape dropped", "evil\x1b[2J.png", "evil[2J.png"},
		{"newline dropped", "two\nlines", "twolines"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"invalid byte dropped", "a\xffb", "ab"},
		{"stray continuation byte dropped", "a\xa5b", "ab"},
		{"truncated sequence dropped", "photo\xc3", "photo"},
		{"c1 control dropped", "a\u0085b", "ab"},
		{"wide text untouched", "写真.jpg", "写真.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello..."},
		{"very short max width", "hello", 3, "..."},
		{"empty string", "", 5, ""},
		{"wide characters", "写真写真", 7, "写真..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	styled := "\x1b[7m ImgSize[100x100] Pos[0,0] \x1b[0m"

	if got := TruncateANSI(styled, 80); got != styled {
		t.Errorf("short input changed: %q", got)
	}

	got := TruncateANSI(styled, 8)
	if w := ansi.StringWidth(got); w != 8 {
		t.Errorf("width = %d, want 8", w)
	}
	if ansi.Strip(got) != " ImgSize" {
		t.Errorf("visible text = %q", ansi.Strip(got))
	}
	if !strings.HasPrefix(got, "\x1b[7m") {
		t.Errorf("leading style lost: %q", got)
	}

	if got := TruncateANSI(styled, 0); got != "" {
		t.Errorf("zero width = %q, want empty", got)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abc", 3, "abc"},
		{"abc", 2, "abc"},
		{"写", 3, "写 "},
	}

	for _, tt := range tests {
		if got := Pad(tt.input, tt.width); got != tt.want {
			t.Errorf("Pad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		input string
		width int
		fill  string
		want  string
	}{
		{"Help", 10, "-", "---Help---"},
		{"Help", 9, "-", "--Help---"},
		{"Help", 4, "-", "Help"},
		{"Help", 2, "-", "Help"},
		{"Help", 10, "", "Help"},
	}

	for _, tt := range tests {
		if got := Center(tt.input, tt.width, tt.fill); got != tt.want {
			t.Errorf("Center(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q", got)
	}
}
