package stream

import "errors"

var (
	// ErrClosed indicates an operation on a closed channel.
	ErrClosed = errors.New("stream: channel is closed")

	// ErrNegativeSkip indicates Skip was called with a negative count.
	ErrNegativeSkip = errors.New("stream: negative skip count")
)
