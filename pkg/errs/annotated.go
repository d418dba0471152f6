package errs

import "fmt"

// Error decorates an error with diagnostic context. The annotations never
// change how the error is matched: Unwrap returns the original error.
type Error struct {
	Err  error
	File string
	Line int
	Hook string
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Location returns "file F" or "file F, line N", or an empty string when no file is set.
func (e *Error) Location() string {
	if e.File == "" {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("file %s, line %d", e.File, e.Line)
	}
	return fmt.Sprintf("file %s", e.File)
}

// Processing returns the name of the hook being processed, if known.
func (e *Error) Processing() string {
	return e.Hook
}

// annotate returns err itself when it is already an *Error, or wraps it in a new one.
func annotate(err error) *Error {
	if a, ok := err.(*Error); ok {
		return a
	}
	return &Error{Err: err}
}

// WithFile attaches the originating file to err.
func WithFile(err error, file string) error {
	if err == nil {
		return nil
	}
	a := annotate(err)
	a.File = file
	return a
}

// WithLine attaches the originating line to err.
func WithLine(err error, line int) error {
	if err == nil {
		return nil
	}
	a := annotate(err)
	a.Line = line
	return a
}

// WithHook attaches the name of the hook being processed to err.
func WithHook(err error, hook string) error {
	if err == nil {
		return nil
	}
	a := annotate(err)
	a.Hook = hook
	return a
}
