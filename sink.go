package lvlog

import "time"

// Sink is an output target (Strategy). Write receives the dispatch's shared
// Event; a returned error is handed to the logger's ErrorHandler and never
// stops the fan-out.
type Sink interface {
	Write(ev *Event) error
}

// SinkFunc adapter.
type SinkFunc func(ev *Event) error

func (f SinkFunc) Write(ev *Event) error { return f(ev) }

// SinkHandle identifies a registered sink. Handles are never reused.
type SinkHandle int

// ConsoleHandle is reported to collectors for writes of the console sink.
const ConsoleHandle SinkHandle = -1

// MetricsCollector receives per-sink write outcomes. Implementations must be
// concurrency-safe.
type MetricsCollector interface {
	SinkWrite(h SinkHandle, level Level, dur time.Duration, err error)
}

type NoopMetricsCollector struct{}

func (*NoopMetricsCollector) SinkWrite(SinkHandle, Level, time.Duration, error) {}
