package utils

import (
	"fmt"
	"math"
	"os"
	"time"

	"golang.org/x/term"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used across the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used across the CLI application.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// colorize is disabled when the output is redirected to a file or a pipe.
var colorize = true

// SetColor enables or disables the terminal color escape sequences.
func SetColor(enabled bool) {
	colorize = enabled
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// DecorateText shows the message types in different colors.
func DecorateText(s string, msgType MessageType) string {
	if !colorize {
		return s
	}
	switch msgType {
	case DefaultMessage:
		s = DefaultColor + s
	case StatusMessage:
		s = StatusColor + s
	case SuccessMessage:
		s = SuccessColor + s
	case ErrorMessage:
		s = ErrorColor + s
	default:
		return s
	}
	return s + DefaultColor
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d.Seconds() < 1.0 {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d.Minutes() < 1.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), remainingSeconds)
}
