package parser

import (
	"fmt"
)

// Status classifies the outcome of a single TryParse call.
type Status int

const (
	// StatusNoMatch means the parser did not recognize the input.
	StatusNoMatch Status = iota
	// StatusOK means the input was parsed into a value.
	StatusOK
	// StatusError means the input was recognized but parsing failed with a cause.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusNoMatch:
		return "NO_MATCH"
	case StatusOK:
		return "OK"
	case StatusError:
		return "ERROR"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the tagged result of TryParse.
// The zero value is a NoMatch outcome.
type Outcome[T any] struct {
	status Status
	value  T
	err    error
}

// OK returns a successful outcome carrying v.
func OK[T any](v T) Outcome[T] {
	return Outcome[T]{status: StatusOK, value: v}
}

// NoMatch returns an outcome meaning the input was not recognized.
func NoMatch[T any]() Outcome[T] {
	return Outcome[T]{status: StatusNoMatch}
}

// Fail returns an outcome carrying cause.
// A failure without a cause is a non-match, so Fail(nil) is NoMatch.
func Fail[T any](cause error) Outcome[T] {
	if cause == nil {
		return NoMatch[T]()
	}
	return Outcome[T]{status: StatusError, err: cause}
}

// Status returns the classification of the outcome.
func (o Outcome[T]) Status() Status {
	return o.status
}

// OK reports whether the outcome carries a value.
func (o Outcome[T]) OK() bool {
	return o.status == StatusOK
}

// IsNoMatch reports whether the input was not recognized.
func (o Outcome[T]) IsNoMatch() bool {
	return o.status == StatusNoMatch
}

// IsError reports whether the outcome carries a cause.
func (o Outcome[T]) IsError() bool {
	return o.status == StatusError
}

// Value returns the parsed value and whether it is meaningful.
// For failed outcomes it returns the zero value of T.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, o.status == StatusOK
}

// Err returns the cause of an Error outcome, or nil.
func (o Outcome[T]) Err() error {
	return o.err
}

// Get returns the outcome as a (value, success, cause) triple.
func (o Outcome[T]) Get() (T, bool, error) {
	return o.value, o.status == StatusOK, o.err
}

func (o Outcome[T]) String() string {
	switch o.status {
	case StatusOK:
		return fmt.Sprintf("OK(%v)", o.value)
	case StatusError:
		return fmt.Sprintf("ERROR(%v)", o.err)
	default:
		return o.status.String()
	}
}

// mapOutcome converts an outcome's value type, keeping NoMatch and Error as-is.
func mapOutcome[T, U any](o Outcome[T], f func(T) Outcome[U]) Outcome[U] {
	switch o.status {
	case StatusOK:
		return f(o.value)
	case StatusError:
		return Fail[U](o.err)
	default:
		return NoMatch[U]()
	}
}
