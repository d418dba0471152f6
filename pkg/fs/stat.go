package fs

import "os"

// Stat returns file information, following symlinks.
func (f *realFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}
