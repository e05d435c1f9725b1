package lvlog

import (
	"io"
	"sync"
)

// Facade helpers using the default logger.
// Usage: lvlog.Info("listening on %s", addr)

func Trace(format string, args ...any) { Default().logSkip(LevelTrace, 2, format, args) }
func Debug(format string, args ...any) { Default().logSkip(LevelDebug, 2, format, args) }
func Info(format string, args ...any)  { Default().logSkip(LevelInfo, 2, format, args) }
func Warn(format string, args ...any)  { Default().logSkip(LevelWarn, 2, format, args) }
func Error(format string, args ...any) { Default().logSkip(LevelError, 2, format, args) }
func Fatal(format string, args ...any) { Default().logSkip(LevelFatal, 2, format, args) }

// Log dispatches through the default logger with an explicit location.
func Log(level Level, file string, line int, format string, args ...any) {
	Default().Log(level, file, line, format, args...)
}

func SetLevel(level Level)               { Default().SetLevel(level) }
func SetQuiet(quiet bool)                { Default().SetQuiet(quiet) }
func SetLock(lk sync.Locker)             { Default().SetLock(lk) }
func SetLockFunc(fn LockFunc, udata any) { Default().SetLockFunc(fn, udata) }
func Enabled(level Level) bool           { return Default().Enabled(level) }
func RemoveSink(h SinkHandle) bool       { return Default().RemoveSink(h) }

func AddSink(s Sink, userData any, minLevel Level) (SinkHandle, error) {
	return Default().AddSink(s, userData, minLevel)
}

func AddWriter(w io.Writer, minLevel Level, opts ...WriterOption) (SinkHandle, error) {
	return Default().AddWriter(w, minLevel, opts...)
}
