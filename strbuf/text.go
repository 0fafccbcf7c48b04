package strbuf

import "golang.org/x/text/encoding/charmap"

// Text returns the content decoded for display. Legacy data files carry
// single-byte Windows-1252 text, so pure ASCII passes through unchanged and
// anything with high bytes goes through the charmap decoder. The core never
// interprets content bytes; this is a display-edge helper only.
func (s *Str) Text() (string, error) {
	s.fixHeader()
	if s.used == 0 {
		return "", ErrDiscarded
	}
	data := s.data[:s.used-1]
	if isASCII(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func isASCII(p []byte) bool {
	for _, b := range p {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
