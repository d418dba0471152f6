package errs

import (
	"errors"
	"fmt"
	"io"
)

// Report writes a human readable description of err to w, followed by its
// location and the hook being processed when those annotations are set.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(w, "Error: %s\n", err)

	var annotated *Error
	if !errors.As(err, &annotated) {
		return
	}
	if location := annotated.Location(); location != "" {
		fmt.Fprintf(w, "Location: %s\n", location)
	}
	if hook := annotated.Processing(); hook != "" {
		fmt.Fprintf(w, "While processing: %s\n", hook)
	}
}
