package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrPathResolution is returned when a path cannot be made absolute.
	ErrPathResolution = errors.New("path resolution failed")
)
