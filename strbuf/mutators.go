package strbuf

import "strconv"

// Assign replaces the content with a copy of p. The old content is never
// carried across a reallocation: used is cleared first so ensure skips the
// copy-preserving path.
func (s *Str) Assign(p []byte) {
	s.used = 0
	data := s.ensure(len(p) + 1)
	copy(data, p)
	data[len(p)] = 0
	s.used = len(p) + 1
}

// SetString replaces the content with a copy of v, reusing the allocation
// when v fits.
func (s *Str) SetString(v string) {
	s.used = 0
	data := s.ensure(len(v) + 1)
	copy(data, v)
	data[len(v)] = 0
	s.used = len(v) + 1
}

// Set replaces the content with a copy of o, terminator and all. A nil or
// discarded source resets to the default-empty state instead of growing.
func (s *Str) Set(o *Str) {
	if o == nil {
		s.Reset()
		return
	}
	o.fixHeader()
	if o.used == 0 {
		s.Reset()
		return
	}
	oUsed := o.used
	s.used = 0
	data := s.ensure(oUsed)
	copy(data, o.data[:oUsed])
	s.used = oUsed
}

// Reset reallocates to the same state as a fresh New value.
func (s *Str) Reset() {
	s.allocData(1, minAlloc)
}

// Append appends the content of o. Appending a nil or discarded value is a
// no-op. The copy overlaps the old terminator so it is overwritten and a
// new one carried in from o.
func (s *Str) Append(o *Str) {
	if o == nil {
		return
	}
	s.fixHeader()
	o.fixHeader()
	oUsed := o.used
	if oUsed <= 0 {
		return
	}
	thisUsed := s.used
	data := s.ensure(thisUsed + oUsed)

	if thisUsed > 1 {
		copy(data[thisUsed-1:], o.data[:oUsed])
		s.used = thisUsed + oUsed - 1
	} else {
		copy(data, o.data[:oUsed])
		s.used = oUsed
	}
}

// AppendString appends v. An empty v is a no-op.
func (s *Str) AppendString(v string) {
	if v == "" {
		return
	}
	s.fixHeader()
	n := len(v) + 1
	thisUsed := s.used
	data := s.ensure(thisUsed + n)

	// Non-empty receiver appends over the old terminator, otherwise this
	// is a plain copy-in.
	if thisUsed > 0 {
		copy(data[thisUsed-1:], v)
		data[thisUsed-1+len(v)] = 0
		s.used = thisUsed + n - 1
	} else {
		copy(data, v)
		data[len(v)] = 0
		s.used = n
	}
}

// AppendByte appends a single byte. Appending NUL is a no-op: it would
// corrupt the terminator contract.
func (s *Str) AppendByte(c byte) {
	if c == 0 {
		return
	}
	s.fixHeader()
	thisUsed := s.used
	data := s.ensure(thisUsed + 1)

	if thisUsed > 0 {
		thisUsed-- // write over the old terminator
	}
	data[thisUsed] = c
	thisUsed++
	data[thisUsed] = 0
	thisUsed++
	s.used = thisUsed
}

// AppendStrInt appends prefix followed by n in decimal.
func (s *Str) AppendStrInt(prefix string, n int) {
	s.AppendString(prefix)
	s.AppendString(strconv.Itoa(n))
}

// AppendStrDouble appends prefix followed by f formatted with 8 significant
// digits (the legacy %.8g format).
func (s *Str) AppendStrDouble(prefix string, f float64) {
	s.AppendString(prefix)
	s.AppendString(strconv.FormatFloat(f, 'g', 8, 64))
}

// TruncateAt writes the terminator at index and sets the length to match.
// index may exceed the current length, in which case the buffer grows and
// the bytes between the old terminator and the new one are unspecified
// until the caller writes them (the deserializer relies on this). A
// negative index is a caller bug and panics.
func (s *Str) TruncateAt(index int) {
	if index < 0 {
		panic("strbuf: negative truncate index")
	}
	s.fixHeader()
	data := s.ensure(index + 1)
	data[index] = 0
	s.used = index + 1
}

// Ensure grows the allocation so that at least minCapacity bytes are
// available, preserving content. Appends totaling no more than minCapacity
// bytes afterwards will not reallocate.
func (s *Str) Ensure(minCapacity int) {
	s.fixHeader()
	s.ensure(minCapacity)
}

// Equal reports whether s and o hold identical content. Lengths are
// compared first; the byte compare covers the terminator too.
func (s *Str) Equal(o *Str) bool {
	s.fixHeader()
	o.fixHeader()
	if s.used != o.used {
		return false
	}
	return string(s.data[:s.used]) == string(o.data[:o.used])
}

// EqualString reports whether the content equals v.
func (s *Str) EqualString(v string) bool {
	s.fixHeader()
	if s.used != len(v)+1 {
		return false
	}
	return string(s.data[:s.used-1]) == v
}
