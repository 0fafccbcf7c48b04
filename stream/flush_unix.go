//go:build linux || freebsd

package stream

import (
	"os"

	"golang.org/x/sys/unix"
)

// flushFile pushes written data to stable storage.
//
// On Linux and FreeBSD, fdatasync() provides sufficient guarantees without
// forcing a metadata sync.
func flushFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
