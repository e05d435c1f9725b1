package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/lvlog"
)

// Config is an explicit, code-first configuration for a zerolog-backed sink.
type Config struct {
	Writer             io.Writer // default: os.Stdout
	MinLevel           lvlog.Level
	Console            bool   // pretty console output instead of JSON
	ConsoleTimeFormat  string // only used if Console==true; default time.RFC3339Nano
	NoColor            bool   // only used if Console==true
	TimestampFieldName string // default "ts"; console output uses zerolog.TimestampFieldName
}

// NewLogger builds the zerolog.Logger described by cfg.
func NewLogger(cfg Config) zerolog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor}
		if cfg.ConsoleTimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		} else {
			cw.TimeFormat = cfg.ConsoleTimeFormat
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	return zl.Level(toZerologLevel(cfg.MinLevel))
}

// Use builds a zerolog-backed sink from cfg and registers it on l at cfg.MinLevel.
// In console mode the timestamp goes under zerolog.TimestampFieldName, the key
// ConsoleWriter renders as its time column.
func Use(l *lvlog.Logger, cfg Config) (*Sink, lvlog.SinkHandle, error) {
	tsKey := cfg.TimestampFieldName
	if cfg.Console {
		tsKey = zerolog.TimestampFieldName
	}
	s := NewWithTimestampKey(NewLogger(cfg), tsKey)
	h, err := l.AddSink(s, nil, cfg.MinLevel)
	if err != nil {
		return nil, -1, err
	}
	return s, h, nil
}
