package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrNilParser is returned when a required parser is nil.
	ErrNilParser = errors.New("parser must not be nil")

	// ErrNilInput is the cause reported for absent input.
	ErrNilInput = errors.New("input must not be nil")

	// ErrUninitialized is the cause reported by zero-value parsers.
	ErrUninitialized = errors.New("parser is not initialized")

	// ErrNilProjection is returned when a parser is constructed without a projection.
	ErrNilProjection = errors.New("projection must not be nil")

	// ErrNilPattern is returned when a regex parser is constructed from a nil *regexp.Regexp.
	ErrNilPattern = errors.New("pattern must not be nil")

	// ErrNoMatch matches any *FormatError with errors.Is.
	ErrNoMatch = errors.New("input did not match an expected format")
)

// FormatError is returned by Parse when the parser did not recognize the input.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("given string, '%s', did not match an expected format", e.Input)
}

// Is reports whether target is ErrNoMatch.
func (e *FormatError) Is(target error) bool {
	return target == ErrNoMatch
}

// PanicError wraps a value recovered from a panicking projection.
type PanicError struct {
	Value any
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in projection: %v", e.Value)
}

// Unwrap returns the recovered value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
