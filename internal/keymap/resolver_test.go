//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"

	"github.com/llehouerou/timg/internal/viewport"
)

func TestNewResolver(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"Q", "ctrl+c"}, "Quit", "session"},
		{ActionZoomIn, []string{"+", "c"}, "Zoom in", "zoom"},
	}

	r := NewResolver(bindings)

	if r == nil {
		t.Fatal("NewResolver returned nil")
	}
	if len(r.bindings) != 4 {
		t.Errorf("bindings has %d keys, want 4", len(r.bindings))
	}
	if len(r.byAction) != 2 {
		t.Errorf("byAction has %d actions, want 2", len(r.byAction))
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key      string
		expected Action
	}{
		{"Q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"h", ActionPanLeft},
		{"D", ActionPanRightLong},
		{"+", ActionZoomIn},
		{"x", ActionZoomOut},
		{"?", ActionHelp},
		{"q", ""},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	bindings := []Binding{
		{ActionHelp, []string{"H", "?"}, "Help", "session"},
		{ActionHelp, []string{"?"}, "Help", "view"},
	}

	r := NewResolver(bindings)

	keys := r.KeysFor(ActionHelp)
	if !slices.Equal(keys, []string{"H", "?"}) {
		t.Errorf("KeysFor(help) = %v, want [H ?]", keys)
	}
	if keys := r.KeysFor(ActionQuit); len(keys) != 0 {
		t.Errorf("KeysFor(quit) = %v, want empty", keys)
	}
}

func TestResolver_Command(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		name string
		in   byte
		want viewport.Command
	}{
		{"pan", 'l', viewport.Pan{Axis: viewport.AxisX, Forward: true, Step: viewport.StepPixel}},
		{"ctrl+c quits", 0x03, viewport.Quit{}},
		{"unbound letter", 'q', viewport.Invalid{Key: 'q'}},
		{"escape", 0x1b, viewport.Invalid{Key: 0x1b}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Command(tt.in); got != tt.want {
				t.Errorf("Command(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"a", "b", "a", "c", "b"})
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("dedupe = %v", got)
	}
}
