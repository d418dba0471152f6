package fs

import (
	"io"
	"os"
)

// Open opens a file for reading.
func (f *realFS) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
