package lvlog

import (
	"io"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/trickstertwo/xclock"
)

// ErrSinkPanic wraps a panic recovered from a sink's Write.
var ErrSinkPanic = errors.New("lvlog: sink panicked")

// Logger is the dispatcher: a global level gate, the console sink, the sink
// registry and an optional lock around the fan-out.
//
// Configuration setters are safe to call concurrently with Log, but a change
// only affects dispatches that start after it.
type Logger struct {
	level   atomic.Int32
	quiet   atomic.Bool
	lock    atomic.Pointer[lockBox]
	console *Console // nil when built without a console

	registry     *Registry
	clock        xclock.Clock // nil = xclock.Now, so xclock.SetDefault applies
	errorHandler ErrorHandler
	maxMsgLen    int

	metrics    atomic.Pointer[metricsBox]
	measureDur atomic.Bool
	st         stats
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		console:      cfg.Console,
		registry:     NewRegistry(cfg.Capacity),
		clock:        cfg.Clock,
		errorHandler: cfg.ErrorHandler,
		maxMsgLen:    cfg.MaxMessageLen,
	}
	if l.errorHandler == nil {
		l.errorHandler = defaultErrorHandler
	}
	l.level.Store(int32(cfg.MinLevel.Clamp()))
	l.quiet.Store(cfg.Quiet)
	if cfg.Lock != nil {
		l.lock.Store(&lockBox{cfg.Lock})
	}
	l.SetMetricsCollector(cfg.Metrics)
	return l
}

// Level returns the global minimum level.
func (l *Logger) Level() Level { return Level(l.level.Load()) }

// SetLevel sets the global minimum level. Events below it are dropped before
// anything else happens.
func (l *Logger) SetLevel(level Level) { l.level.Store(int32(level.Clamp())) }

// Quiet reports whether the console sink is suppressed.
func (l *Logger) Quiet() bool { return l.quiet.Load() }

// SetQuiet suppresses the console sink only; registered sinks keep receiving.
func (l *Logger) SetQuiet(quiet bool) { l.quiet.Store(quiet) }

// SetLock installs the lock held around each fan-out. nil removes it.
func (l *Logger) SetLock(lk sync.Locker) {
	if lk == nil {
		l.lock.Store(nil)
		return
	}
	l.lock.Store(&lockBox{lk})
}

// SetLockFunc installs a callback-style lock hook.
func (l *Logger) SetLockFunc(fn LockFunc, udata any) {
	if fn == nil {
		l.SetLock(nil)
		return
	}
	l.SetLock(fn.Locker(udata))
}

// Console returns the console sink, or nil.
func (l *Logger) Console() *Console { return l.console }

// Registry exposes the sink registry.
func (l *Logger) Registry() *Registry { return l.registry }

// AddSink registers s for events at minLevel and above. userData is handed
// back to s through Event.UserData.
func (l *Logger) AddSink(s Sink, userData any, minLevel Level) (SinkHandle, error) {
	return l.registry.Add(s, userData, minLevel)
}

// AddWriter registers a plain-text WriterSink on w.
func (l *Logger) AddWriter(w io.Writer, minLevel Level, opts ...WriterOption) (SinkHandle, error) {
	if w == nil {
		return -1, ErrNilSink
	}
	return l.registry.Add(NewWriterSink(w, opts...), nil, minLevel)
}

// RemoveSink unregisters the sink behind h.
func (l *Logger) RemoveSink(h SinkHandle) bool { return l.registry.Remove(h) }

// SetMetricsCollector installs a collector; when not Noop, write durations are measured.
func (l *Logger) SetMetricsCollector(collector MetricsCollector) {
	if collector == nil {
		collector = &NoopMetricsCollector{}
	}
	l.metrics.Store(&metricsBox{collector})
	_, isNoop := collector.(*NoopMetricsCollector)
	l.measureDur.Store(!isNoop)
}

// Stats returns a snapshot of the sink failure counters.
func (l *Logger) Stats() StatsSnapshot { return l.st.snapshot() }

// ResetStats resets the sink failure counters.
func (l *Logger) ResetStats() { l.st.reset() }

// Enabled reports whether an event at level would pass the global gate.
// Use to avoid building arguments in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return level.Clamp() >= l.Level()
}

// Log is the entry point. It never reports sink failures to the caller.
func (l *Logger) Log(level Level, file string, line int, format string, args ...any) {
	level = level.Clamp()
	if level < l.Level() {
		return
	}
	ev := Event{
		Level:  level,
		Time:   l.now(),
		File:   file,
		Line:   line,
		Format: format,
		Args:   args,
		maxLen: l.maxMsgLen,
	}
	l.dispatch(&ev)
}

func (l *Logger) Trace(format string, args ...any) { l.logCaller(LevelTrace, format, args) }
func (l *Logger) Debug(format string, args ...any) { l.logCaller(LevelDebug, format, args) }
func (l *Logger) Info(format string, args ...any)  { l.logCaller(LevelInfo, format, args) }
func (l *Logger) Warn(format string, args ...any)  { l.logCaller(LevelWarn, format, args) }
func (l *Logger) Error(format string, args ...any) { l.logCaller(LevelError, format, args) }

// Fatal logs at LevelFatal. It does not exit the process.
func (l *Logger) Fatal(format string, args ...any) { l.logCaller(LevelFatal, format, args) }

// logCaller reports the caller of the leveled helper as the event's location.
func (l *Logger) logCaller(level Level, format string, args []any) {
	l.logSkip(level, 3, format, args)
}

func (l *Logger) logSkip(level Level, skip int, format string, args []any) {
	if level < l.Level() {
		return
	}
	file, line := "???", 0
	if _, f, n, ok := runtime.Caller(skip); ok {
		file, line = filepath.Base(f), n
	}
	l.Log(level, file, line, format, args...)
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

// dispatch runs the fan-out, under the lock when one is set.
func (l *Logger) dispatch(ev *Event) {
	if lk := l.lock.Load(); lk != nil {
		lk.Lock()
		defer lk.Unlock()
	}

	if l.console != nil && !l.quiet.Load() && ev.Level >= l.console.Level() {
		l.write(ConsoleHandle, l.console, ev)
	}
	for _, e := range l.registry.snapshot() {
		if ev.Level < e.minLevel {
			continue
		}
		ev.UserData = e.userData
		l.write(e.handle, e.sink, ev)
	}
	ev.UserData = nil
}

// write isolates one sink: its error or panic is counted and reported, never propagated.
func (l *Logger) write(h SinkHandle, s Sink, ev *Event) {
	measure := l.measureDur.Load()
	mc := l.metrics.Load()

	var start time.Time
	if measure {
		start = time.Now()
	}
	err := safeWrite(s, ev)
	var dur time.Duration
	if measure {
		dur = time.Since(start)
	}
	if err != nil {
		l.st.writeErrors.Add(1)
		if errors.Is(err, ErrSinkPanic) {
			l.st.panics.Add(1)
		}
		l.errorHandler(errors.Wrapf(err, "sink %d", h))
	}
	mc.SinkWrite(h, ev.Level, dur, err)
}

type metricsBox struct{ MetricsCollector }

func safeWrite(s Sink, ev *Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrSinkPanic, "%v", r)
		}
	}()
	return s.Write(ev)
}
