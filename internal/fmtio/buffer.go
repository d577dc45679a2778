// Package fmtio provides the seekable, mutable output byte buffer the
// runestone engine writes formatted text into. The buffer's cursor mirrors
// the engine's tree traversal position.
package fmtio

import "fmt"

// Buffer is a contiguous byte buffer with a cursor. It is the sole
// mechanism by which the engine and its rules produce output text.
type Buffer struct {
	data   []byte
	cursor int
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewFromBytes returns a Buffer seeded with data, cursor at 0.
func NewFromBytes(data []byte) *Buffer {
	cp := make([]byte, len(data))
	copy(cp, data)
	return &Buffer{data: cp}
}

// Len returns the current total length of the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() int { return b.cursor }

// Seek moves the cursor to an absolute position. It panics if pos is out of
// [0, Len()] — an out-of-range seek is an engine bug, not a user error.
func (b *Buffer) Seek(pos int) {
	if pos < 0 || pos > len(b.data) {
		panic(fmt.Sprintf("fmtio: seek out of range: pos=%d len=%d", pos, len(b.data)))
	}
	b.cursor = pos
}

// Advance moves the cursor forward by n bytes. It panics if this would move
// the cursor past Len().
func (b *Buffer) Advance(n int) {
	b.Seek(b.cursor + n)
}

// Bytes returns the buffer's current contents. The caller must not mutate
// the returned slice.
func (b *Buffer) Bytes() []byte { return b.data }

// Truncate shrinks the buffer to length n. It panics if n exceeds Len().
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > len(b.data) {
		panic(fmt.Sprintf("fmtio: truncate out of range: n=%d len=%d", n, len(b.data)))
	}
	b.data = b.data[:n]
	if b.cursor > n {
		b.cursor = n
	}
}

// ReplaceBytes implements the byte-splice primitive (spec.md §4.2): at the
// current cursor position p, the window [p, p+size) is replaced by bytes.
// Bytes at [p+size, end) shift by len(bytes)-size. The cursor is left
// unchanged at p. Returns len(bytes).
//
// Precondition: p+size <= Len(). Violating it is a programmer error.
func (b *Buffer) ReplaceBytes(bytes []byte, size int) int {
	p := b.cursor
	if p+size > len(b.data) {
		panic(fmt.Sprintf("fmtio: replace out of range: p=%d size=%d len=%d", p, size, len(b.data)))
	}

	if len(bytes) == size {
		// Fast path: no length change, tail is untouched.
		copy(b.data[p:p+size], bytes)
		return len(bytes)
	}

	tail := make([]byte, len(b.data)-(p+size))
	copy(tail, b.data[p+size:])

	b.data = append(b.data[:p], bytes...)
	b.data = append(b.data, tail...)

	b.cursor = p
	return len(bytes)
}
