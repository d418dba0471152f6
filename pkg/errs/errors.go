// Package errs provides the error taxonomy shared by the hook registry and the job executor.
package errs

import (
	"errors"
	"fmt"
)

// Error kinds. Wrap them with fmt.Errorf("%w: ...") and match with errors.Is.
var (
	// ErrProviderNotFound is returned when a hook declares a provider with no implementation.
	ErrProviderNotFound = errors.New("provider not found")
	// ErrInvalidInput is returned for malformed provider configuration.
	ErrInvalidInput = errors.New("invalid input")
	// ErrHookExecutionFailed is matched by every *ExecutionError.
	ErrHookExecutionFailed = errors.New("hook execution failed")
	// ErrIO wraps filesystem and process spawn failures.
	ErrIO = errors.New("i/o error")
)

// ExecutionError reports a hook process that did not exit cleanly.
// At most one of ExitCode and Signal is set.
type ExecutionError struct {
	ExitCode *int
	Signal   *int
}

// NewExitCodeError returns an ExecutionError for a non-zero exit code.
func NewExitCodeError(code int) *ExecutionError {
	return &ExecutionError{ExitCode: &code}
}

// NewSignalError returns an ExecutionError for a process killed by a signal.
func NewSignalError(signal int) *ExecutionError {
	return &ExecutionError{Signal: &signal}
}

func (e *ExecutionError) Error() string {
	switch {
	case e.ExitCode != nil:
		return fmt.Sprintf("hook returned non-zero exit code: %d", *e.ExitCode)
	case e.Signal != nil:
		return fmt.Sprintf("hook stopped with signal %d", *e.Signal)
	default:
		return ErrHookExecutionFailed.Error()
	}
}

// Is reports whether target is ErrHookExecutionFailed.
func (e *ExecutionError) Is(target error) bool {
	return target == ErrHookExecutionFailed
}

// IO wraps err as an ErrIO failure, keeping err in the chain.
func IO(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrIO, err)
}
