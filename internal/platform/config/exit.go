package config

import (
	"fmt"
	"io"
	"os"
)

// ExitCodeFailure is the exit status for configuration, storage and other
// fatal command failures.
const ExitCodeFailure = 1

// Exitf writes a formatted error message to stderr and exits with
// ExitCodeFailure.
func Exitf(format string, args ...any) {
	Fail(os.Stderr, os.Exit, format, args...)
}

// Fail writes a formatted line to w and calls exit with ExitCodeFailure.
func Fail(w io.Writer, exit func(int), format string, args ...any) {
	if w != nil {
		fmt.Fprintf(w, format+"\n", args...)
	}
	if exit != nil {
		exit(ExitCodeFailure)
	}
}
