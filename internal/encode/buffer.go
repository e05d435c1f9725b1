// Package encode holds the allocation-conscious line building shared by the
// built-in sinks.
package encode

import "sync"

// Buffer is a simple growing byte buffer.
type Buffer struct{ B []byte }

func (buf *Buffer) AppendString(s string) { buf.B = append(buf.B, s...) }
func (buf *Buffer) AppendByte(c byte)     { buf.B = append(buf.B, c) }
func (buf *Buffer) AppendBytes(p []byte)  { buf.B = append(buf.B, p...) }
func (buf *Buffer) Len() int              { return len(buf.B) }

var bufPool = sync.Pool{New: func() any { return &Buffer{B: make([]byte, 0, 256)} }}

// Get returns an empty pooled buffer.
func Get() *Buffer {
	buf := bufPool.Get().(*Buffer)
	buf.B = buf.B[:0]
	return buf
}

// Put returns buf to the pool unless it grew too large to be worth keeping.
func Put(buf *Buffer) {
	if cap(buf.B) <= 64*1024 {
		bufPool.Put(buf)
	}
}
