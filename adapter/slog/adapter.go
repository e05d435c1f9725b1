// Package slog bridges lvlog sinks to the standard log/slog handlers.
package slog

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/trickstertwo/lvlog"
)

// Extra slog levels for the two lvlog levels slog has no name for.
const (
	LevelTrace = slog.LevelDebug - 4
	LevelFatal = slog.LevelError + 4
)

// Sink forwards lvlog events to a *slog.Logger.
type Sink struct {
	l     *slog.Logger
	tsKey string
}

func New(l *slog.Logger) *Sink { return NewWithTimestampKey(l, "ts") }

// NewWithTimestampKey lets callers override the timestamp attribute key (default "ts").
func NewWithTimestampKey(l *slog.Logger, tsKey string) *Sink {
	if l == nil {
		l = slog.Default()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Sink{l: l, tsKey: tsKey}
}

func (s *Sink) Write(ev *lvlog.Event) error {
	lvl := toSlogLevel(ev.Level)
	ctx := context.Background()
	if !s.l.Enabled(ctx, lvl) {
		return nil
	}
	s.l.LogAttrs(ctx, lvl, ev.Message(),
		slog.Time(s.tsKey, ev.Time),
		slog.String("caller", ev.File+":"+strconv.Itoa(ev.Line)),
	)
	return nil
}

func toSlogLevel(l lvlog.Level) slog.Level {
	switch l.Clamp() {
	case lvlog.LevelTrace:
		return LevelTrace
	case lvlog.LevelDebug:
		return slog.LevelDebug
	case lvlog.LevelInfo:
		return slog.LevelInfo
	case lvlog.LevelWarn:
		return slog.LevelWarn
	case lvlog.LevelError:
		return slog.LevelError
	default:
		return LevelFatal
	}
}

// replaceAttr drops slog's own time and names the extra levels.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		return slog.Attr{}
	case slog.LevelKey:
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			switch lvl {
			case LevelTrace:
				a.Value = slog.StringValue("TRACE")
			case LevelFatal:
				a.Value = slog.StringValue("FATAL")
			}
		}
	}
	return a
}
