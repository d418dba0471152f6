//go:build !unix

package jobs

import (
	"errors"
	"os/exec"

	"github.com/fisher-hooks/fisher/pkg/errs"
)

// classify maps the error returned by cmd.Run to an ExecutionError, or
// returns nil when the process did not run to completion.
func classify(err error) *errs.ExecutionError {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return nil
	}
	return errs.NewExitCodeError(exitErr.ExitCode())
}
