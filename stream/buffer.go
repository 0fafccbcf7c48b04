package stream

import "fmt"

// Buffer is an in-memory channel. Writes append to the backing slice and
// reads consume from a cursor, so a record set can be staged fully in
// memory and read back - the framed flavor used by tests and by callers
// that do their own file handling.
type Buffer struct {
	data []byte
	off  int // read cursor
}

// NewBuffer returns a channel reading from p. Writes append after p.
func NewBuffer(p []byte) *Buffer {
	return &Buffer{data: p}
}

// Write appends all of p.
func (b *Buffer) Write(p []byte) error {
	b.data = append(b.data, p...)
	return nil
}

// Read fills all of p from the cursor, failing without consuming anything
// when fewer bytes remain.
func (b *Buffer) Read(p []byte) error {
	if len(p) > len(b.data)-b.off {
		return fmt.Errorf("stream: short read: need %d, have %d", len(p), len(b.data)-b.off)
	}
	copy(p, b.data[b.off:])
	b.off += len(p)
	return nil
}

// Skip advances the cursor by n bytes, failing without moving when fewer
// remain.
func (b *Buffer) Skip(n int) error {
	if n < 0 {
		return ErrNegativeSkip
	}
	if n > len(b.data)-b.off {
		return fmt.Errorf("stream: short skip: need %d, have %d", n, len(b.data)-b.off)
	}
	b.off += n
	return nil
}

// Bytes returns the full backing slice, written and unread alike.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Remaining reports how many unread bytes are left.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.off
}

// Rewind moves the read cursor back to the start.
func (b *Buffer) Rewind() {
	b.off = 0
}

// Reset drops all content and rewinds.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.off = 0
}
