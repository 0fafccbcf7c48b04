// Package strbuf implements a growable, length-tracked byte-buffer string
// compatible with the legacy length-prefixed record format.
//
// # Overview
//
// Str owns a single backing allocation and caches its own length in a small
// header (capacity plus a "used" count that includes the NUL terminator).
// The cache can go stale: any caller that takes a mutable view of the raw
// bytes may write a new terminator anywhere in the buffer. Instead of
// forbidding that, Str marks the cached length dirty whenever a mutable view
// is handed out and lazily recomputes it by scanning for the terminator the
// next time a length-dependent operation runs.
//
// # Header states
//
// The used count is one of:
//
//   - 0: the value holds no allocation at all (discarded)
//   - > 0: trusted strlen+1, terminator included (fast path)
//   - < 0: dirty - recompute from the raw bytes before trusting it
//
// Every public operation resolves the dirty state before it depends on the
// length, and re-establishes a valid header before returning.
//
// # Growth
//
// Capacity grows geometrically: when a mutation needs more room the buffer
// doubles, or jumps straight to the requested size when doubling is not
// enough. Capacity never shrinks except on Reset. Pre-reserve with Ensure to
// make a run of appends allocation-free.
//
// # Wire format
//
// Serialize and Deserialize exchange records of the form
//
//	[uint32 length][length raw bytes]
//
// with a little-endian prefix and no terminator on the wire. Deserialize can
// byte-swap the prefix for data written on an opposite-endian machine, and
// rejects declared lengths above 65535 as corrupt before touching the
// receiver. Channels are any implementation of the Channel interface; the
// stream package provides file- and memory-backed ones.
//
// # Thread safety
//
// Str is not thread-safe. The dirty-length mechanism is unsynchronized, so
// even concurrent reads are unsafe while any goroutine mutates.
package strbuf
