package encode

import (
	"time"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// AppendInt writes v in base 10.
func AppendInt(buf *Buffer, v int64) {
	if v == 0 {
		buf.AppendByte('0')
		return
	}
	if v < 0 {
		if v == -1<<63 {
			buf.AppendString("-9223372036854775808")
			return
		}
		buf.AppendByte('-')
		v = -v
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	buf.AppendBytes(tmp[i:])
}

// AppendTime writes t in the given layout without an intermediate string.
func AppendTime(buf *Buffer, t time.Time, layout string) {
	buf.B = t.AppendFormat(buf.B, layout)
}

// AppendPadded writes s left-aligned in a field of width bytes.
func AppendPadded(buf *Buffer, s string, width int) {
	buf.AppendString(s)
	for i := len(s); i < width; i++ {
		buf.AppendByte(' ')
	}
}

// AppendQuoted writes s as a JSON string literal.
func AppendQuoted(buf *Buffer, s string) {
	buf.AppendByte('"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c != '\\' && c != '"' && c < 0x80 {
			i++
			continue
		}
		if c < 0x80 {
			if start < i {
				buf.AppendString(s[start:i])
			}
			switch c {
			case '\\', '"':
				buf.AppendByte('\\')
				buf.AppendByte(c)
			case '\n':
				buf.AppendString(`\n`)
			case '\r':
				buf.AppendString(`\r`)
			case '\t':
				buf.AppendString(`\t`)
			default:
				buf.AppendString(`\u00`)
				buf.AppendByte(hexDigits[c>>4])
				buf.AppendByte(hexDigits[c&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if !(r == utf8.RuneError && size == 1) && r != '\u2028' && r != '\u2029' {
			i += size
			continue
		}
		if start < i {
			buf.AppendString(s[start:i])
		}
		switch r {
		case '\u2028':
			buf.AppendString(`\u2028`)
		case '\u2029':
			buf.AppendString(`\u2029`)
		default:
			buf.AppendString(`\uFFFD`)
		}
		i += size
		start = i
	}
	if start < len(s) {
		buf.AppendString(s[start:])
	}
	buf.AppendByte('"')
}
