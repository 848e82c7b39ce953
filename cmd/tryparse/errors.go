package main

import (
	"errors"
	"fmt"
)

const (
	exitCodeSuccess = 0
	exitCodeFailure = 1
	exitCodeUsage   = 2
)

// ExitCodeError makes the process exit with exitCode without printing anything.
type ExitCodeError struct {
	exitCode int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code: %d", e.exitCode)
}

// NewExitCodeError returns nil for a successful exit code.
func NewExitCodeError(exitCode int) error {
	if exitCode == exitCodeSuccess {
		return nil
	}

	return &ExitCodeError{exitCode: exitCode}
}

// usageError is reported for invalid options and rule files.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// GetExitCode maps the error returned by run to a process exit code.
func GetExitCode(err error) int {
	var exitErr *ExitCodeError
	switch {
	case err == nil:
		return exitCodeSuccess
	case errors.As(err, &exitErr):
		return exitErr.exitCode
	case errors.As(err, new(*usageError)):
		return exitCodeUsage
	default:
		return exitCodeFailure
	}
}
