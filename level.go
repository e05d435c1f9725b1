package lvlog

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Level is the severity of an event. Levels compare in declaration order.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

var levelColors = [...]color.Attribute{
	color.FgHiBlue,
	color.FgCyan,
	color.FgGreen,
	color.FgYellow,
	color.FgRed,
	color.FgMagenta,
}

// Clamp maps out-of-range values onto the nearest valid level.
func (l Level) Clamp() Level {
	switch {
	case l < LevelTrace:
		return LevelTrace
	case l > LevelFatal:
		return LevelFatal
	default:
		return l
	}
}

// String returns the display label. Invalid values are clamped, never rejected.
func (l Level) String() string { return levelNames[l.Clamp()] }

// Color returns the terminal color used by the console sink for this level.
func (l Level) Color() color.Attribute { return levelColors[l.Clamp()] }

// LevelName is the function form of Level.String.
func LevelName(l Level) string { return l.String() }

// ParseLevel accepts level names in any case, plus "warning".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}
	return LevelTrace, errors.Wrapf(ErrInvalidLevel, "%q", s)
}
