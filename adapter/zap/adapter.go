// Package zap bridges lvlog sinks to go.uber.org/zap.
package zap

import (
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/lvlog"
)

// Sink forwards lvlog events to a *zap.Logger.
//
//   - Checks the zap core before rendering, so events zap would drop are never formatted.
//   - Writes the dispatch timestamp as tsKey with RFC3339Nano precision.
//   - Attaches the event's file:line as "caller".
//   - Maps LevelFatal to Error to avoid os.Exit in library code.
type Sink struct {
	l     *zap.Logger
	tsKey string
}

// New creates a sink for the provided zap logger.
func New(l *zap.Logger) *Sink {
	return NewWithTimestampKey(l, "ts")
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l *zap.Logger, tsKey string) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Sink{l: l, tsKey: tsKey}
}

func (s *Sink) Write(ev *lvlog.Event) error {
	lvl := toZapLevel(ev.Level)
	if !s.l.Core().Enabled(lvl) {
		return nil
	}
	ce := s.l.Check(lvl, ev.Message())
	if ce == nil {
		return nil
	}
	ce.Write(
		zap.String(s.tsKey, ev.Time.UTC().Format(time.RFC3339Nano)),
		zap.String("caller", ev.File+":"+strconv.Itoa(ev.Line)),
	)
	return nil
}

// Sync flushes the underlying zap logger.
func (s *Sink) Sync() error { return s.l.Sync() }

func toZapLevel(l lvlog.Level) zapcore.Level {
	switch l.Clamp() {
	case lvlog.LevelTrace, lvlog.LevelDebug:
		return zapcore.DebugLevel // zap has no trace; map to debug
	case lvlog.LevelInfo:
		return zapcore.InfoLevel
	case lvlog.LevelWarn:
		return zapcore.WarnLevel
	default:
		// Avoid Fatal/DPanic to prevent exits in library code.
		return zapcore.ErrorLevel
	}
}
