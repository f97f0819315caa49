//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"

	"github.com/llehouerou/timg/internal/viewport"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"move context", "move", true, 12},
		{"zoom context", "zoom", true, 4},
		{"render context", "render", true, 5},
		{"view context", "view", true, 5},
		{"session context", "session", true, 4},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}

			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestAllBindingsHaveKnownContext(t *testing.T) {
	known := make(map[string]bool)
	for _, c := range Contexts {
		known[c] = true
	}
	for _, b := range All {
		if !known[b.Context] {
			t.Errorf("binding %q has unknown context %q", b.Action, b.Context)
		}
	}
}

func TestAllKeysUnique(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestAllActionsHaveCommands(t *testing.T) {
	for _, b := range All {
		if _, ok := Command(b.Action); !ok {
			t.Errorf("action %q has no command", b.Action)
		}
	}
	if _, ok := Command("nope"); ok {
		t.Error("unknown action resolved to a command")
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		in   byte
		want string
	}{
		{'h', "h"},
		{'?', "?"},
		{' ', " "},
		{'~', "~"},
		{0x03, "ctrl+c"},
		{0x1b, "0x1b"},
		{0x7f, "0x7f"},
		{0xff, "0xff"},
	}

	for _, tt := range tests {
		if got := KeyName(tt.in); got != tt.want {
			t.Errorf("KeyName(%#x) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		action Action
		want   viewport.Command
	}{
		{ActionPanLeft, viewport.Pan{Axis: viewport.AxisX, Step: viewport.StepPixel}},
		{ActionPanDownLong, viewport.Pan{Axis: viewport.AxisY, Forward: true, Step: viewport.StepLong}},
		{ActionZoomOut, viewport.Zoom{}},
		{ActionOptDownLong, viewport.AdjustOpt{Delta: -10}},
		{ActionRotate, viewport.Transform{Op: viewport.OpRotate90}},
		{ActionQuit, viewport.Quit{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			got, ok := Command(tt.action)
			if !ok {
				t.Fatalf("Command(%q) not found", tt.action)
			}
			if got != tt.want {
				t.Errorf("Command(%q) = %#v, want %#v", tt.action, got, tt.want)
			}
		})
	}
}
