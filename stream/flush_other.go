//go:build !linux && !freebsd && !darwin

package stream

import "os"

// flushFile pushes written data to stable storage.
//
// On platforms without a dedicated data-sync primitive, fall back to the
// portable full sync.
func flushFile(f *os.File) error {
	return f.Sync()
}
