package strbuf

import (
	"bytes"
)

// minAlloc is the smallest buffer allocated for a fresh empty value.
const minAlloc = 16

// Str is a length-tracked byte-buffer string backed by a single allocation.
//
// The header lives as ordinary fields: len(data) is the capacity, and used
// caches strlen+1 (terminator included) when non-negative. A negative used
// is the dirty sentinel - some caller took a mutable view and may have
// moved the terminator, so the length must be recomputed before use.
//
// The zero value is discarded (no allocation); Assign, Set, and the
// constructors all produce a live value. Exactly one allocation exists per
// live value and it is never shared between values.
type Str struct {
	data []byte // backing allocation; len(data) is the capacity
	used int    // 0 = discarded, > 0 = strlen+1, < 0 = dirty
}

// New returns an empty value holding just the terminator, with the default
// minimum capacity.
func New() *Str {
	s := &Str{}
	s.allocData(1, minAlloc)
	return s
}

// NewString returns a value holding a copy of v.
func NewString(v string) *Str {
	s := &Str{}
	if v == "" {
		s.allocData(1, minAlloc)
		return s
	}
	used := len(v) + 1
	data := s.allocData(used, used)
	copy(data, v)
	return s
}

// NewBytes returns a value holding a copy of p. A nil p produces the same
// result as New. p may contain NUL bytes, but the mutators thereafter treat
// the buffer as terminated at the first one.
func NewBytes(p []byte) *Str {
	s := &Str{}
	if p == nil {
		s.allocData(1, minAlloc)
		return s
	}
	data := s.allocData(len(p)+1, len(p)+1)
	copy(data, p)
	data[len(p)] = 0
	return s
}

// Clone returns an independent copy with its own allocation sized to fit.
func (s *Str) Clone() *Str {
	s.fixHeader()
	out := &Str{}
	data := out.allocData(s.used, s.used)
	copy(data, s.data[:s.used])
	return out
}

// allocData installs a fresh allocation of the given capacity and records
// used in the header. The returned slice is the zeroed data region.
func (s *Str) allocData(used, capacity int) []byte {
	s.data = make([]byte, capacity)
	s.used = used
	return s.data
}

// ensure returns the data region, growing the allocation first when
// minCapacity does not fit. Growth is geometric: the new capacity is the
// larger of minCapacity and twice the current one, and exactly used live
// bytes are carried over. Callers must have a well-defined (non-negative)
// used before calling.
func (s *Str) ensure(minCapacity int) []byte {
	if minCapacity <= len(s.data) {
		return s.data
	}
	if minCapacity < 2*len(s.data) {
		minCapacity = 2 * len(s.data)
	}
	fresh := make([]byte, minCapacity)
	copy(fresh, s.data[:s.used])
	s.data = fresh
	return s.data
}

// Discard drops the allocation. The value reports a negative Len afterwards
// and mutating it again is a caller bug, except through Assign, Set, or
// Reset which re-allocate.
func (s *Str) Discard() {
	s.data = nil
	s.used = 0
}

// fixHeader resolves the dirty sentinel by scanning for the terminator.
// Safe on a logically read-only value: it only repairs the cache. If no
// terminator survives in the buffer one is re-established at the last byte
// rather than scanning past the allocation.
func (s *Str) fixHeader() {
	if s.used >= 0 {
		return
	}
	if i := bytes.IndexByte(s.data, 0); i >= 0 {
		s.used = i + 1
		return
	}
	s.data[len(s.data)-1] = 0
	s.used = len(s.data)
}

// Len returns the number of content bytes, excluding the terminator,
// recomputing it first if the cached length is dirty. A discarded value
// reports -1.
func (s *Str) Len() int {
	s.fixHeader()
	return s.used - 1
}

// Capacity returns the size of the backing allocation.
func (s *Str) Capacity() int {
	return len(s.data)
}

// Bytes returns the raw data region, or nil for a discarded value. The view
// is mutable and the caller may write a new terminator anywhere in it, so
// the cached length is marked dirty before the view escapes.
func (s *Str) Bytes() []byte {
	if s.used == 0 {
		return nil
	}
	s.used = -1
	return s.data
}

// String returns a copy of the content as a Go string. Read-only access, so
// the cached length stays trusted.
func (s *Str) String() string {
	s.fixHeader()
	if s.used <= 0 {
		return ""
	}
	return string(s.data[:s.used-1])
}

// Byte returns the content byte at index i. Indexing outside the content is
// a caller bug and panics.
func (s *Str) Byte(i int) byte {
	if i < 0 || i >= s.Len() {
		panic("strbuf: byte index out of range")
	}
	return s.data[i]
}

// SetByte writes c at index i, which may be anywhere in the allocation.
// Writing a NUL moves the terminator, so the cached length is marked dirty
// unconditionally. An index outside the allocation is a caller bug and
// panics.
func (s *Str) SetByte(i int, c byte) {
	if i < 0 || i >= len(s.data) {
		panic("strbuf: byte index out of range")
	}
	s.used = -1
	s.data[i] = c
}

// Contains reports whether the content holds c. Always false for NUL, which
// is the terminator rather than content.
func (s *Str) Contains(c byte) bool {
	if c == 0 {
		return false
	}
	s.fixHeader()
	if s.used <= 0 {
		return false
	}
	return bytes.IndexByte(s.data[:s.used-1], c) >= 0
}
