package lvlog

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/trickstertwo/xclock"
)

// SinkSpec is a sink registered at build time.
type SinkSpec struct {
	Sink     Sink
	UserData any
	MinLevel Level
}

// Config for constructing a Logger (Factory data structure).
type Config struct {
	MinLevel Level
	Quiet    bool
	Lock     sync.Locker  // optional; held around each fan-out
	Clock    xclock.Clock // optional; defaults to xclock.Now per event

	// Console is the implicit default sink; nil means no console at all.
	Console *Console

	Capacity      int // registry size; 0 = unbounded
	ErrorHandler  ErrorHandler
	Metrics       MetricsCollector
	MaxMessageLen int // 0 = unbounded messages
	Sinks         []SinkSpec
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

// NewBuilder starts from TRACE, a stderr console with auto colors and a
// registry of MaxSinks.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{
		MinLevel: LevelTrace,
		Console:  NewConsole(nil, ColorAuto),
		Capacity: MaxSinks,
	}}
}

func (b *Builder) WithMinLevel(l Level) *Builder {
	b.cfg.MinLevel = l
	return b
}

func (b *Builder) WithQuiet(q bool) *Builder {
	b.cfg.Quiet = q
	return b
}

func (b *Builder) WithLock(lk sync.Locker) *Builder {
	b.cfg.Lock = lk
	return b
}

func (b *Builder) WithLockFunc(fn LockFunc, udata any) *Builder {
	if fn == nil {
		b.cfg.Lock = nil
		return b
	}
	b.cfg.Lock = fn.Locker(udata)
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

// WithConsole replaces the default console; nil disables it.
func (b *Builder) WithConsole(c *Console) *Builder {
	b.cfg.Console = c
	return b
}

// WithConsoleWriter is shorthand for WithConsole(NewConsole(w, mode)).
func (b *Builder) WithConsoleWriter(w io.Writer, mode ColorMode) *Builder {
	b.cfg.Console = NewConsole(w, mode)
	return b
}

// WithCapacity bounds the registry; 0 makes it unbounded.
func (b *Builder) WithCapacity(n int) *Builder {
	b.cfg.Capacity = n
	return b
}

func (b *Builder) WithErrorHandler(h ErrorHandler) *Builder {
	b.cfg.ErrorHandler = h
	return b
}

func (b *Builder) WithMetrics(mc MetricsCollector) *Builder {
	b.cfg.Metrics = mc
	return b
}

// WithMaxMessageLen truncates rendered messages longer than n bytes and marks them.
func (b *Builder) WithMaxMessageLen(n int) *Builder {
	b.cfg.MaxMessageLen = n
	return b
}

func (b *Builder) AddSink(s Sink, userData any, minLevel Level) *Builder {
	b.cfg.Sinks = append(b.cfg.Sinks, SinkSpec{Sink: s, UserData: userData, MinLevel: minLevel})
	return b
}

func (b *Builder) AddWriter(w io.Writer, minLevel Level, opts ...WriterOption) *Builder {
	var s Sink
	if w != nil {
		s = NewWriterSink(w, opts...)
	}
	return b.AddSink(s, nil, minLevel)
}

// Build constructs the Logger (Factory + Builder).
func (b *Builder) Build() (*Logger, error) {
	l := newLogger(b.cfg)
	for i, spec := range b.cfg.Sinks {
		if _, err := l.registry.Add(spec.Sink, spec.UserData, spec.MinLevel); err != nil {
			return nil, errors.Wrapf(err, "register sink #%d", i)
		}
	}
	return l, nil
}

// New builds a Logger with the defaults of NewBuilder.
func New() *Logger {
	l, _ := NewBuilder().Build()
	return l
}
