package main

import (
	"errors"
	"fmt"
	"io"
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitViolations = 1 // violations remain, or --diff found changes
	ExitError      = 2 // usage, config or I/O failure
)

// exitError carries an exit code out of a command without a message.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func exitWith(code int) error {
	if code == ExitOK {
		return nil
	}
	return &exitError{code: code}
}

// exitCodeFor maps a command error to the process exit code, printing
// real errors to stderr.
func exitCodeFor(err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(stderr, "arrowlint: %v\n", err)
	return ExitError
}
