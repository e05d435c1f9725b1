// Package zerolog bridges lvlog sinks to github.com/rs/zerolog.
package zerolog

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/lvlog"
)

// Sink forwards lvlog events to a zerolog.Logger.
// The dispatch timestamp is written under tsKey; zerolog's own timestamp hook is not used.
type Sink struct {
	l     zerolog.Logger
	tsKey string
}

func New(l zerolog.Logger) *Sink { return NewWithTimestampKey(l, "ts") }

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l zerolog.Logger, tsKey string) *Sink {
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Sink{l: l, tsKey: tsKey}
}

func (s *Sink) Write(ev *lvlog.Event) error {
	e := s.l.WithLevel(toZerologLevel(ev.Level))
	if e == nil {
		return nil
	}
	e.Time(s.tsKey, ev.Time).
		Str(zerolog.CallerFieldName, ev.File+":"+strconv.Itoa(ev.Line)).
		Msg(ev.Message())
	return nil
}

func toZerologLevel(l lvlog.Level) zerolog.Level {
	switch l.Clamp() {
	case lvlog.LevelTrace:
		return zerolog.TraceLevel
	case lvlog.LevelDebug:
		return zerolog.DebugLevel
	case lvlog.LevelInfo:
		return zerolog.InfoLevel
	case lvlog.LevelWarn:
		return zerolog.WarnLevel
	default:
		// zerolog's Fatal would exit; keep it at error.
		return zerolog.ErrorLevel
	}
}
