package strbuf

// Split scans the content once and appends each run between separators to
// out as an independent value. Empty runs between adjacent separators are
// dropped, and a non-empty trailing run after the last separator is flushed
// at the end - so a string with no separators lands in out as a single
// entry, and nothing trailing the last separator emits nothing.
func (s *Str) Split(sep byte, out *[]Str) {
	s.fixHeader()
	n := s.used - 1
	if n < 0 {
		return
	}
	start := 0
	for i := 0; i < n; i++ {
		if s.data[i] != sep {
			continue
		}
		if i != start {
			*out = append(*out, *NewBytes(s.data[start:i]))
		}
		start = i + 1
	}
	if start != n {
		*out = append(*out, *NewBytes(s.data[start:n]))
	}
}
