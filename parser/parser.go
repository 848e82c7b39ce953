package parser

import (
	"reflect"
)

// Parser is the core interface for parsing strings into values of type T.
type Parser[T any] interface {
	// TryParse attempts to convert input into a value of type T.
	// It reports a plain non-match as NoMatch and reserves Error outcomes
	// for inputs that were recognized but could not be converted.
	TryParse(input string) Outcome[T]
}

// Func adapts an ordinary function to the Parser interface.
type Func[T any] func(input string) Outcome[T]

// TryParse implements Parser.
func (f Func[T]) TryParse(input string) Outcome[T] {
	return f(input)
}

// FromParseFunc adapts a conventional Go parse function such as strconv.Atoi.
// A returned error becomes the cause of an Error outcome, so the resulting
// parser never reports NoMatch.
func FromParseFunc[T any](parse func(string) (T, error)) Parser[T] {
	if parse == nil {
		return Func[T](func(string) Outcome[T] {
			return Fail[T](ErrNilProjection)
		})
	}
	return Func[T](func(input string) (out Outcome[T]) {
		defer recoverInto(&out)
		v, err := parse(input)
		if err != nil {
			return Fail[T](err)
		}
		return OK(v)
	})
}

// recoverInto converts a panic raised by user code into an Error outcome.
func recoverInto[T any](out *Outcome[T]) {
	if r := recover(); r != nil {
		*out = Fail[T](newPanicError(r))
	}
}

// isNil reports whether p is a nil interface or an interface holding a nil
// pointer, func, map, slice or channel.
func isNil(p any) bool {
	if p == nil {
		return true
	}
	rv := reflect.ValueOf(p)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
