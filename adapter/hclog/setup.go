package hclog

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/trickstertwo/lvlog"
)

// Config is an explicit, code-first configuration for an hclog-backed sink.
type Config struct {
	Name               string
	Writer             io.Writer // default: os.Stderr
	MinLevel           lvlog.Level
	JSON               bool
	Color              bool // only honoured for terminals by hclog
	TimestampFieldName string
}

// NewLogger builds the hclog.Logger described by cfg. hclog's own time is
// disabled; the sink writes the event time instead.
func NewLogger(cfg Config) hclog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	color := hclog.ColorOff
	if cfg.Color {
		color = hclog.AutoColor
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:        cfg.Name,
		Level:       toHclogLevel(cfg.MinLevel),
		Output:      w,
		JSONFormat:  cfg.JSON,
		DisableTime: true,
		Color:       color,
	})
}

// Use builds an hclog-backed sink from cfg and registers it on l at cfg.MinLevel.
func Use(l *lvlog.Logger, cfg Config) (*Sink, lvlog.SinkHandle, error) {
	s := NewWithTimestampKey(NewLogger(cfg), cfg.TimestampFieldName)
	h, err := l.AddSink(s, nil, cfg.MinLevel)
	if err != nil {
		return nil, -1, err
	}
	return s, h, nil
}
