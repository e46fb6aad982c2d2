// Package enc holds the allocation-light byte encoders shared by the text
// formatter and the line-writing host.
package enc

import (
	"slices"
	"sync"
)

const (
	defaultCap = 512
	maxPooled  = 64 << 10
)

// Buffer is an append-only byte buffer. B is exported so callers can hand it
// straight to an io.Writer.
type Buffer struct{ B []byte }

func (buf *Buffer) AddString(s string) { buf.B = append(buf.B, s...) }
func (buf *Buffer) AddByte(c byte)     { buf.B = append(buf.B, c) }
func (buf *Buffer) AddBytes(p []byte)  { buf.B = append(buf.B, p...) }
func (buf *Buffer) Len() int           { return len(buf.B) }
func (buf *Buffer) String() string     { return string(buf.B) }
func (buf *Buffer) Reset()             { buf.B = buf.B[:0] }

// Grow ensures room for n more bytes without another allocation.
func (buf *Buffer) Grow(n int) { buf.B = slices.Grow(buf.B, n) }

var pool = sync.Pool{New: func() any { return &Buffer{B: make([]byte, 0, defaultCap)} }}

// Get returns an empty pooled buffer with room for at least size bytes.
func Get(size int) *Buffer {
	buf := pool.Get().(*Buffer)
	buf.Reset()
	buf.Grow(size)
	return buf
}

// Put recycles buf. Buffers that grew past 64KiB are left to the GC.
func Put(buf *Buffer) {
	if cap(buf.B) > maxPooled {
		return
	}
	pool.Put(buf)
}
