package fs

import (
	"fmt"
	"path/filepath"
)

// Canonicalize returns the absolute path with every symlink resolved.
// The path must exist.
func (f *realFS) Canonicalize(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path cannot be empty", ErrPathResolution)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get absolute path for %s: %w", ErrPathResolution, path, err)
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", err
	}

	return resolved, nil
}
