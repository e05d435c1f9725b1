package lvlog

import "sync/atomic"

// Facade: process-wide default logger (Singleton). Hosts that prefer explicit
// wiring build their own *Logger and never touch it.
var global atomic.Pointer[Logger]

// SetDefault replaces the process-wide logger. nil restores a fresh default on next use.
func SetDefault(l *Logger) { global.Store(l) }

// Default returns the process-wide logger, building one with New on first use:
// TRACE level, stderr console with auto colors, MaxSinks capacity.
func Default() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	l := New()
	if global.CompareAndSwap(nil, l) {
		return l
	}
	return global.Load()
}
