// Package hclog bridges lvlog sinks to github.com/hashicorp/go-hclog.
package hclog

import (
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/trickstertwo/lvlog"
)

// Sink forwards lvlog events to an hclog.Logger as "ts" and "caller" pairs.
type Sink struct {
	l     hclog.Logger
	tsKey string
}

func New(l hclog.Logger) *Sink { return NewWithTimestampKey(l, "ts") }

// NewWithTimestampKey lets callers override the timestamp key (default "ts").
func NewWithTimestampKey(l hclog.Logger, tsKey string) *Sink {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Sink{l: l, tsKey: tsKey}
}

func (s *Sink) Write(ev *lvlog.Event) error {
	lvl := toHclogLevel(ev.Level)
	if lvl < s.l.GetLevel() {
		return nil
	}
	s.l.Log(lvl, ev.Message(),
		s.tsKey, ev.Time.UTC().Format(time.RFC3339Nano),
		"caller", ev.File+":"+strconv.Itoa(ev.Line),
	)
	return nil
}

func toHclogLevel(l lvlog.Level) hclog.Level {
	switch l.Clamp() {
	case lvlog.LevelTrace:
		return hclog.Trace
	case lvlog.LevelDebug:
		return hclog.Debug
	case lvlog.LevelInfo:
		return hclog.Info
	case lvlog.LevelWarn:
		return hclog.Warn
	default:
		// hclog stops at error.
		return hclog.Error
	}
}
