package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/lvlog"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for a slog-backed sink.
type Config struct {
	Writer             io.Writer   // default: os.Stdout
	MinLevel           lvlog.Level // applied to both the handler and the registration
	Format             Format      // JSON (default) or Text
	AddSource          bool        // slog's own source attribute; usually redundant with "caller"
	TimestampFieldName string      // default "ts"
}

// NewHandler builds the slog handler described by cfg.
func NewHandler(cfg Config) slog.Handler {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{
		Level:       toSlogLevel(cfg.MinLevel),
		AddSource:   cfg.AddSource,
		ReplaceAttr: replaceAttr,
	}
	if cfg.Format == FormatText {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// Use builds a slog-backed sink from cfg and registers it on l at cfg.MinLevel.
func Use(l *lvlog.Logger, cfg Config) (*Sink, lvlog.SinkHandle, error) {
	s := NewWithTimestampKey(slog.New(NewHandler(cfg)), cfg.TimestampFieldName)
	h, err := l.AddSink(s, nil, cfg.MinLevel)
	if err != nil {
		return nil, -1, err
	}
	return s, h, nil
}
