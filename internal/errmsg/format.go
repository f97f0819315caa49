// Package errmsg provides consistent error formatting for user-facing messages
// and the exit codes fatal errors map to.
package errmsg

import (
	"errors"
	"fmt"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup
	OpArgs       Op = "parse arguments"
	OpConfigLoad Op = "load config"
	OpConfig     Op = "validate config"
	OpLogSetup   Op = "open log file"

	// Image operations
	OpImageOpen   Op = "open image"
	OpImageRender Op = "render image"

	// Terminal operations
	OpTermRaw   Op = "enter raw mode"
	OpTermRead  Op = "read input"
	OpTermWrite Op = "write frame"

	// Lookups
	OpFilterLookup Op = "find filter"
	OpModeLookup   Op = "find render mode"
	OpMetricLookup Op = "find color metric"
)

// Exit codes for fatal errors.
const (
	ExitOK          = 0
	ExitMissingPath = 1
	ExitIO          = 2
	ExitConfig      = 3
	ExitLookup      = 4
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Fatal is an error that ends the program with Code.
type Fatal struct {
	Code    int
	Op      Op
	Context string
	Err     error
}

func (f *Fatal) Error() string {
	return FormatWith(f.Op, f.Context, f.Err)
}

func (f *Fatal) Unwrap() error {
	return f.Err
}

// Wrap attaches an exit code and operation to err. A nil err stays nil.
func Wrap(code int, op Op, err error) error {
	return WrapWith(code, op, "", err)
}

// WrapWith is Wrap with additional context, usually a path.
func WrapWith(code int, op Op, context string, err error) error {
	if err == nil {
		return nil
	}
	return &Fatal{Code: code, Op: op, Context: context, Err: err}
}

// CodeOf returns the exit code for err: ExitOK for nil, the code of the
// outermost Fatal in the chain, or ExitIO for anything else.
func CodeOf(err error) int {
	if err == nil {
		return ExitOK
	}
	var f *Fatal
	if errors.As(err, &f) {
		return f.Code
	}
	return ExitIO
}
