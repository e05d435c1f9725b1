package zap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/lvlog"
)

// Config is an explicit, code-first configuration for a zap-backed sink.
type Config struct {
	Writer             io.Writer // default: os.Stdout
	MinLevel           lvlog.Level
	Console            bool                  // zapcore.NewConsoleEncoder instead of JSON
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	TimestampFieldName string                // default "ts"
}

// NewLogger builds the zap logger described by cfg.
func NewLogger(cfg Config) *zap.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	// Encoder config defaults: do not let zap inject its own time (the sink provides "ts")
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" {
		encCfg = zapcore.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}
	encCfg.TimeKey = ""

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(toZapLevel(cfg.MinLevel)))
	return zap.New(core)
}

// Use builds a zap-backed sink from cfg and registers it on l at cfg.MinLevel.
func Use(l *lvlog.Logger, cfg Config) (*Sink, lvlog.SinkHandle, error) {
	s := NewWithTimestampKey(NewLogger(cfg), cfg.TimestampFieldName)
	h, err := l.AddSink(s, nil, cfg.MinLevel)
	if err != nil {
		return nil, -1, err
	}
	return s, h, nil
}
