package stream

import (
	"fmt"
	"io"
	"os"
)

// File is a channel over an open file. Reads consume from the current file
// position; Skip seeks forward without reading. No endian correction
// happens here - the serializer owns any prefix swap.
type File struct {
	f *os.File
}

// Open opens path for reading.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("stream: open %s: %w", path, err)
	}
	return &File{f: f}, nil
}

// Create creates or truncates path for writing.
func Create(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("stream: create %s: %w", path, err)
	}
	return &File{f: f}, nil
}

// NewFile wraps an already-open file. The caller keeps ownership of f's
// lifetime unless Close is used.
func NewFile(f *os.File) *File {
	return &File{f: f}
}

// Write writes all of p.
func (c *File) Write(p []byte) error {
	if c.f == nil {
		return ErrClosed
	}
	if _, err := c.f.Write(p); err != nil {
		return fmt.Errorf("stream: write: %w", err)
	}
	return nil
}

// Read fills all of p, failing on a short read.
func (c *File) Read(p []byte) error {
	if c.f == nil {
		return ErrClosed
	}
	if _, err := io.ReadFull(c.f, p); err != nil {
		return fmt.Errorf("stream: read: %w", err)
	}
	return nil
}

// Skip advances the read position by n bytes without materializing them.
// Seeking may run past end of file; the next Read reports the short read.
func (c *File) Skip(n int) error {
	if c.f == nil {
		return ErrClosed
	}
	if n < 0 {
		return ErrNegativeSkip
	}
	if _, err := c.f.Seek(int64(n), io.SeekCurrent); err != nil {
		return fmt.Errorf("stream: skip: %w", err)
	}
	return nil
}

// Sync flushes written data to stable storage using the strongest
// platform-appropriate primitive (fdatasync on Linux/FreeBSD, F_FULLFSYNC
// on Darwin, plain sync elsewhere).
func (c *File) Sync() error {
	if c.f == nil {
		return ErrClosed
	}
	if err := flushFile(c.f); err != nil {
		return fmt.Errorf("stream: sync: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (c *File) Close() error {
	if c.f == nil {
		return nil
	}
	err := c.f.Close()
	c.f = nil
	return err
}
