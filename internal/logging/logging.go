// Package logging configures the process-wide charmbracelet logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvFile names the environment variable that selects a log file when
// neither the flag nor the config sets one.
const EnvFile = "TIMG_LOG"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup installs the default logger. With a path, everything from level up
// (debug when level is empty) is appended to that file. Without one, only
// warnings and errors go to stderr, so the frame is not disturbed.
// The returned closer releases the log file.
func Setup(path, level string, stderr io.Writer) (io.Closer, error) {
	if path == "" {
		path = os.Getenv(EnvFile)
	}

	if path == "" {
		logger := log.NewWithOptions(stderr, log.Options{
			Level:  log.WarnLevel,
			Prefix: "timg",
		})
		log.SetDefault(logger)
		return nopCloser{}, nil
	}

	lvl := log.DebugLevel
	if level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "timg",
	})
	log.SetDefault(logger)
	return f, nil
}
