package zerolog

import (
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/lvlog"
)

func BenchmarkZerologSink_JSON(b *testing.B) {
	s := New(zerolog.New(io.Discard))
	ev := &lvlog.Event{
		Level:  lvlog.LevelInfo,
		Time:   time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC),
		File:   "bench.go",
		Line:   1,
		Format: "request %d",
		Args:   []any{42},
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Write(ev)
	}
}
