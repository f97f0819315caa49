// Package config loads viewer settings from TOML files and validates them.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the raw, file-level configuration. Flags are layered on top of
// it before Resolve turns it into Settings.
type Config struct {
	Backgrounds    string  `koanf:"backgrounds"`      // comma-separated hex colors
	ZoomRatio      float64 `koanf:"zoom_ratio"`       // (0,1)
	ShortMoveRatio float64 `koanf:"short_move_ratio"` // fraction of the window
	LongMoveRatio  float64 `koanf:"long_move_ratio"`
	OptLevel       int     `koanf:"opt_level"`
	TermSize       string  `koanf:"term_size"` // "cols,rows"; empty means detect

	Foreground string `koanf:"foreground"` // empty means the mode default
	Blank      string `koanf:"blank"`
	EmptyChar  bool   `koanf:"empty_char"`
	SplitEdge  bool   `koanf:"split_edge"`
	Filter     string `koanf:"filter"` // index or name
	Mode       string `koanf:"mode"`   // "half" or "single"
	Metric     string `koanf:"metric"` // "rgb" or "lab"

	Colors        string `koanf:"colors"` // "from:to,..." SGR remaps
	DefaultColors bool   `koanf:"default_colors"`

	LogFile string `koanf:"log_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backgrounds:    "000000,888888,ffffff",
		ZoomRatio:      0.8,
		ShortMoveRatio: 0.25,
		LongMoveRatio:  0.75,
		OptLevel:       60,
		Blank:          " ",
		EmptyChar:      true,
		SplitEdge:      true,
		Filter:         "lanczos3",
		Mode:           "half",
		Metric:         "rgb",
		DefaultColors:  true,
	}
}

// Load reads the config files that exist, later ones overriding earlier
// ones, on top of Default.
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles is Load with explicit paths. Missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/timg/config.toml
		filepath.Join(xdg.ConfigHome, "timg", "config.toml"),
		// 2. ./timg.toml (pwd, highest priority)
		"timg.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
