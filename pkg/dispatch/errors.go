package dispatch

import "errors"

// Error definitions for dispatch package.
var (
	// ErrClosed is returned when queueing on a closed dispatcher.
	ErrClosed = errors.New("dispatcher is closed")
	// ErrAlreadyRunning is returned when Run is called more than once.
	ErrAlreadyRunning = errors.New("dispatcher is already running")
)
