package lvlog

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/trickstertwo/xclock/adapter/frozen"
)

// blackhole variables prevent compiler from optimizing away code paths.
var (
	bhT   time.Time
	bhLen int
)

// nopSink touches the event without rendering it.
type nopSink struct{}

func (nopSink) Write(ev *Event) error {
	bhT = ev.Time
	bhLen = len(ev.Args)
	return nil
}

// renderSink forces message formatting.
type renderSink struct{}

func (renderSink) Write(ev *Event) error {
	bhLen = len(ev.Message())
	return nil
}

func newBenchLogger(min Level, sinks ...Sink) *Logger {
	b := NewBuilder().WithConsole(nil).WithMinLevel(min)
	for _, s := range sinks {
		b.AddSink(s, nil, LevelTrace)
	}
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	return l
}

func BenchmarkLog_NopSink(b *testing.B) {
	l := newBenchLogger(LevelDebug, nopSink{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log(LevelInfo, "bench.go", 1, "ok")
	}
}

func BenchmarkLog_Rendered(b *testing.B) {
	l := newBenchLogger(LevelDebug, renderSink{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log(LevelInfo, "bench.go", 1, "request %d took %s", i, 25*time.Millisecond)
	}
}

func BenchmarkLog_FourSinksSharedRender(b *testing.B) {
	l := newBenchLogger(LevelDebug, renderSink{}, renderSink{}, renderSink{}, renderSink{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log(LevelInfo, "bench.go", 1, "request %d", i)
	}
}

func BenchmarkLog_WriterText(b *testing.B) {
	l := newBenchLogger(LevelDebug, NewWriterSink(io.Discard))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log(LevelInfo, "bench.go", 1, "request %d", i)
	}
}

func BenchmarkLog_WriterJSON(b *testing.B) {
	l := newBenchLogger(LevelDebug, NewWriterSink(io.Discard, WithFormat(FormatJSON)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log(LevelInfo, "bench.go", 1, "request %d", i)
	}
}

func BenchmarkLog_Console(b *testing.B) {
	l := newBenchLogger(LevelDebug)
	l.console = NewConsole(io.Discard, ColorAlways)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log(LevelInfo, "bench.go", 1, "request %d", i)
	}
}

func BenchmarkFiltered(b *testing.B) {
	// Min level WARN filters INFO before the event is built.
	l := newBenchLogger(LevelWarn, renderSink{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log(LevelInfo, "bench.go", 1, "not-logged %d", i)
	}
}

func BenchmarkLeveledHelper_Caller(b *testing.B) {
	l := newBenchLogger(LevelDebug, nopSink{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("ok")
	}
}

func BenchmarkParallel_Locked(b *testing.B) {
	l := newBenchLogger(LevelDebug, renderSink{})
	l.SetLock(&sync.Mutex{})
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			l.Log(LevelDebug, "bench.go", 1, "p %d", i)
			i++
		}
	})
}

// Impact of a frozen xclock versus the default system clock.
func BenchmarkLog_FrozenClock(b *testing.B) {
	restore := frozen.Set(frozen.Config{Time: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})
	defer restore()

	l := newBenchLogger(LevelDebug, nopSink{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log(LevelInfo, "bench.go", 1, "frozen")
	}
}
