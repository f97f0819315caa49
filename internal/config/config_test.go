//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/timg.log",
			expected: filepath.Join(home, "timg.log"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/.cache/timg/debug.log",
			expected: filepath.Join(home, ".cache", "timg", "debug.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/tmp/timg.log",
			expected: "/tmp/timg.log",
		},
		{
			name:     "relative path unchanged",
			input:    "logs/timg.log",
			expected: "logs/timg.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}

	expectedFirst := filepath.Join(xdg.ConfigHome, "timg", "config.toml")
	if paths[0] != expectedFirst {
		t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
	}
	if paths[1] != "timg.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "timg.toml")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFiles_NoFilesGivesDefaults(t *testing.T) {
	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFiles_LaterWins(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.toml", `
backgrounds = "112233"
zoom_ratio = 0.5
opt_level = 10
`)
	second := writeFile(t, dir, "b.toml", `
opt_level = 20
filter = 2
empty_char = false
log_file = "/tmp/timg.log"
`)

	cfg, err := LoadFiles(first, second)
	require.NoError(t, err)

	assert.Equal(t, "112233", cfg.Backgrounds)
	assert.InDelta(t, 0.5, cfg.ZoomRatio, 0)
	assert.Equal(t, 20, cfg.OptLevel)
	assert.Equal(t, "2", cfg.Filter)
	assert.False(t, cfg.EmptyChar)
	assert.True(t, cfg.SplitEdge, "untouched keys keep their defaults")
	assert.Equal(t, "/tmp/timg.log", cfg.LogFile)
}

func TestLoadFiles_BadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "opt_level = = 3")
	_, err := LoadFiles(path)
	require.Error(t, err)
}
