package lvlog

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/trickstertwo/lvlog/internal/encode"
)

// Format defines the line format of a WriterSink.
type Format uint8

const (
	FormatText Format = iota + 1
	FormatJSON
)

// DefaultTimeLayout is the timestamp layout of FormatText lines.
const DefaultTimeLayout = "2006-01-02 15:04:05"

// WriterSink renders events onto an io.Writer without colors, one line per event:
//
//	YYYY-MM-DD HH:MM:SS LEVEL file:line: message
//
// or, with FormatJSON,
//
//	{"ts":"...","level":"INFO","file":"a.go","line":10,"msg":"..."}
type WriterSink struct {
	w          io.Writer
	format     Format
	timeLayout string
}

// WriterOption configures a WriterSink.
type WriterOption func(*WriterSink)

// WithFormat selects text (default) or JSON lines.
func WithFormat(f Format) WriterOption {
	return func(s *WriterSink) {
		if f == FormatText || f == FormatJSON {
			s.format = f
		}
	}
}

// WithTimeLayout overrides the FormatText timestamp layout (Go reference time).
func WithTimeLayout(layout string) WriterOption {
	return func(s *WriterSink) {
		if layout != "" {
			s.timeLayout = layout
		}
	}
}

// NewWriterSink wraps an already-open writer.
func NewWriterSink(w io.Writer, opts ...WriterOption) *WriterSink {
	s := &WriterSink{w: w, format: FormatText, timeLayout: DefaultTimeLayout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *WriterSink) Write(ev *Event) error {
	buf := encode.Get()
	defer encode.Put(buf)

	if s.format == FormatJSON {
		writeJSONLine(buf, ev)
	} else {
		writeTextLine(buf, ev, s.timeLayout)
	}
	_, err := s.w.Write(buf.B)
	return err
}

func writeTextLine(buf *encode.Buffer, ev *Event, layout string) {
	encode.AppendTime(buf, ev.Time, layout)
	buf.AppendByte(' ')
	encode.AppendPadded(buf, ev.Level.String(), 5)
	buf.AppendByte(' ')
	buf.AppendString(ev.File)
	buf.AppendByte(':')
	encode.AppendInt(buf, int64(ev.Line))
	buf.AppendString(": ")
	buf.AppendString(ev.Message())
	buf.AppendByte('\n')
}

func writeJSONLine(buf *encode.Buffer, ev *Event) {
	buf.AppendString(`{"ts":"`)
	encode.AppendTime(buf, ev.Time, time.RFC3339Nano)
	buf.AppendString(`","level":"`)
	buf.AppendString(ev.Level.String())
	buf.AppendString(`","file":`)
	encode.AppendQuoted(buf, ev.File)
	buf.AppendString(`,"line":`)
	encode.AppendInt(buf, int64(ev.Line))
	buf.AppendString(`,"msg":`)
	encode.AppendQuoted(buf, ev.Message())
	buf.AppendString("}\n")
}

// OpenFile opens path for appending, creating it and its directory if needed.
func OpenFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create log directory %s", dir)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}
	return f, nil
}
