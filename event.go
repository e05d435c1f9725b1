package lvlog

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// truncMarker is appended to messages cut by WithMaxMessageLen.
const truncMarker = "…(truncated)"

// Event is one log occurrence. It lives for a single Log call: sinks may read it
// but must not keep the pointer after Write returns.
type Event struct {
	Level  Level
	Time   time.Time
	File   string
	Line   int
	Format string
	Args   []any

	// UserData is the opaque value registered with the sink currently being
	// written. It is nil for the console sink.
	UserData any

	maxLen   int
	msg      string
	rendered bool
}

// Message renders Format with Args. The first call formats, later calls reuse
// the result, so every sink of one dispatch shares a single formatting pass.
//
// Without Args, Format is not printf-processed: it is used as is, except that
// "%%" becomes "%" as it would with arguments. A lone "%" stays literal.
func (e *Event) Message() string {
	if e.rendered {
		return e.msg
	}
	if len(e.Args) == 0 {
		e.msg = strings.ReplaceAll(e.Format, "%%", "%")
	} else {
		e.msg = fmt.Sprintf(e.Format, e.Args...)
	}
	if e.maxLen > 0 && len(e.msg) > e.maxLen {
		e.msg = truncate(e.msg, e.maxLen) + truncMarker
	}
	e.rendered = true
	return e.msg
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
