package strbuf

import "errors"

var (
	// ErrLengthLimit indicates a deserialized record declared a payload
	// length above the 65535-byte sanity ceiling.
	ErrLengthLimit = errors.New("strbuf: declared length exceeds limit")

	// ErrDiscarded indicates a read was attempted on a value whose
	// allocation has been discarded.
	ErrDiscarded = errors.New("strbuf: value has been discarded")
)
