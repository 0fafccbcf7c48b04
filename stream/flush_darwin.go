//go:build darwin

package stream

import (
	"os"

	"golang.org/x/sys/unix"
)

// flushFile pushes written data to stable storage.
//
// macOS has no fdatasync, and fsync alone only reaches the drive cache.
// F_FULLFSYNC ensures the data reaches the physical disk.
func flushFile(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	return err
}
