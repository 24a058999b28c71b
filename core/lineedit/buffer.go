package lineedit

import "unicode/utf8"

// BufferIncrement is the initial capacity of a line buffer and the amount it
// grows by whenever an append would overflow it.
const BufferIncrement = 1024

// Buffer holds the text of the line being edited. The cursor is always at
// the end of the buffer.
type Buffer struct {
	data []byte
}

// NewBuffer creates an empty buffer with BufferIncrement capacity.
func NewBuffer() *Buffer {
	return &Buffer{data: make([]byte, 0, BufferIncrement)}
}

// reserve ensures the buffer can hold n more bytes without reallocating.
func (b *Buffer) reserve(n int) {
	needed := len(b.data) + n
	if needed <= cap(b.data) {
		return
	}

	newCap := cap(b.data)
	for newCap < needed {
		newCap += BufferIncrement
	}

	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// Append adds bytes to the end of the line.
func (b *Buffer) Append(p ...byte) {
	b.reserve(len(p))
	b.data = append(b.data, p...)
}

// Backspace removes the last character, it reports false if the buffer was
// empty. A trailing byte that isn't part of valid UTF-8 counts as one
// character.
func (b *Buffer) Backspace() bool {
	if len(b.data) == 0 {
		return false
	}
	_, size := utf8.DecodeLastRune(b.data)
	b.data = b.data[:len(b.data)-size]
	return true
}

// Set replaces the contents of the buffer.
func (b *Buffer) Set(s string) {
	b.data = b.data[:0]
	b.reserve(len(s))
	b.data = append(b.data, s...)
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the current capacity of the buffer.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// String returns a copy of the buffer's contents.
func (b *Buffer) String() string {
	return string(b.data)
}
