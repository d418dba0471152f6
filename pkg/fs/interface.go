// Package fs provides the filesystem operations used to discover hooks and
// to prepare their working directories.
package fs

import (
	"io"
	"os"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations for hook discovery and job sandboxes.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// Stat returns file information, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// ReadDir reads the contents of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// Canonicalize returns the absolute path with every symlink resolved.
	Canonicalize(path string) (string, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// MkdirTemp creates a new uniquely named directory inside dir.
	MkdirTemp(dir, pattern string) (string, error)

	// CreateFileWithContent creates a file with content.
	CreateFileWithContent(path string, content []byte, perm os.FileMode) error

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// RemoveAll removes a file or directory and all its contents.
	RemoveAll(path string) error

	// ExpandPath expands ~ to user's home directory.
	ExpandPath(path string) (string, error)
}

type realFS struct{}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
