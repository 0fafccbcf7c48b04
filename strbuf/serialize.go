package strbuf

import (
	"fmt"

	"github.com/joshuapare/strkit/internal/buf"
)

// MaxWireLen is the largest payload length accepted when deserializing.
// A larger declared length is treated as corrupt data rather than an
// allocation request.
const MaxWireLen = 0xFFFF

// Channel is the byte channel the serializer reads and writes. Write and
// Read transfer exactly len(p) bytes or fail; Skip advances the read cursor
// without materializing the bytes. The stream package provides file- and
// memory-backed implementations.
type Channel interface {
	Write(p []byte) error
	Read(p []byte) error
	Skip(n int) error
}

// Serialize writes the content as a length-prefixed record: a little-endian
// uint32 count of payload bytes, then the payload. No terminator goes on
// the wire. Serializing a discarded value fails with ErrDiscarded.
func (s *Str) Serialize(ch Channel) error {
	n := s.Len()
	if n < 0 {
		return ErrDiscarded
	}
	var prefix [4]byte
	buf.PutU32LE(prefix[:], uint32(n))
	if err := ch.Write(prefix[:]); err != nil {
		return fmt.Errorf("strbuf: write length: %w", err)
	}
	if err := ch.Write(s.data[:n]); err != nil {
		return fmt.Errorf("strbuf: write payload: %w", err)
	}
	return nil
}

// Deserialize replaces the content with the next record from ch. When swap
// is set the length prefix is byte-reversed first, correcting for a record
// written on an opposite-endian machine (the payload needs no correction).
//
// A declared length above MaxWireLen fails with ErrLengthLimit before the
// receiver is touched. A payload read failure, however, leaves the receiver
// already truncated to the declared length with unspecified content - the
// caller must treat the value as invalid after any error.
func (s *Str) Deserialize(ch Channel, swap bool) error {
	var prefix [4]byte
	if err := ch.Read(prefix[:]); err != nil {
		return fmt.Errorf("strbuf: read length: %w", err)
	}
	n := buf.U32LE(prefix[:])
	if swap {
		n = buf.Swap32(n)
	}
	if n > MaxWireLen {
		return fmt.Errorf("%w: %d", ErrLengthLimit, n)
	}
	s.TruncateAt(int(n))
	payload, ok := buf.Slice(s.data, 0, int(n))
	if !ok {
		return fmt.Errorf("strbuf: payload slice out of range: %d", n)
	}
	if err := ch.Read(payload); err != nil {
		return fmt.Errorf("strbuf: read payload: %w", err)
	}
	return nil
}

// SkipDeserialize reads a record's length prefix from ch and advances past
// its payload without materializing a value. Used when the caller only
// needs to step over a field.
func SkipDeserialize(ch Channel) error {
	var prefix [4]byte
	if err := ch.Read(prefix[:]); err != nil {
		return fmt.Errorf("strbuf: read length: %w", err)
	}
	n := buf.U32LE(prefix[:])
	if err := ch.Skip(int(n)); err != nil {
		return fmt.Errorf("strbuf: skip payload: %w", err)
	}
	return nil
}
