package zap

import (
	"io"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/lvlog"
)

func newBenchZap(level zapcore.Level) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "", // the sink writes its own ts
		LevelKey:       "level",
		MessageKey:     "message",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(io.Discard), level))
}

func benchSink(b *testing.B, s *Sink, level lvlog.Level) {
	ev := &lvlog.Event{
		Level:  level,
		Time:   time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC),
		File:   "bench.go",
		Line:   1,
		Format: "request %d took %s",
		Args:   []any{42, time.Millisecond},
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Write(ev)
	}
}

func BenchmarkZapSink_JSON(b *testing.B) {
	benchSink(b, New(newBenchZap(zapcore.InfoLevel)), lvlog.LevelInfo)
}

func BenchmarkZapSink_Disabled(b *testing.B) {
	benchSink(b, New(newBenchZap(zapcore.ErrorLevel)), lvlog.LevelDebug)
}
