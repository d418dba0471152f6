package registry

import "errors"

// Error definitions for registry package.
var (
	// ErrHookNotFound is returned when a request names a hook that is not registered.
	ErrHookNotFound = errors.New("hook not found")
)

// ErrNilHook is returned when inserting a nil hook.
var ErrNilHook = errors.New("hook cannot be nil")
