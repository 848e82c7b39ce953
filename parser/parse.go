package parser

// Parse parses input with p and converts a failed outcome into an error.
//
// It returns ErrNilParser if p is nil, the cause unchanged if p reports an
// Error outcome, and a *FormatError naming the input if p reports NoMatch.
func Parse[T any](p Parser[T], input string) (T, error) {
	var zero T
	if isNil(p) {
		return zero, ErrNilParser
	}

	out := p.TryParse(input)
	switch out.status {
	case StatusOK:
		return out.value, nil
	case StatusError:
		return zero, out.err
	default:
		return zero, &FormatError{Input: input}
	}
}

// TryParse parses input with p and reports only whether it succeeded.
// Any cause is discarded.
//
// TryParse panics with ErrNilParser if p is nil. A nil parser is a
// programming error, and the boolean result has no room to report it.
func TryParse[T any](p Parser[T], input string) (T, bool) {
	if isNil(p) {
		panic(ErrNilParser)
	}
	return p.TryParse(input).Value()
}

// TryParsePtr is TryParse for possibly absent input.
// A nil input fails with ErrNilInput for every parser, without consulting p.
// It returns ErrNilParser as the cause if p is nil.
func TryParsePtr[T any](p Parser[T], input *string) Outcome[T] {
	if isNil(p) {
		return Fail[T](ErrNilParser)
	}
	if input == nil {
		return Fail[T](ErrNilInput)
	}
	return p.TryParse(*input)
}

// ParsePtr is Parse for possibly absent input.
func ParsePtr[T any](p Parser[T], input *string) (T, error) {
	var zero T
	if isNil(p) {
		return zero, ErrNilParser
	}
	if input == nil {
		return zero, ErrNilInput
	}
	return Parse(p, *input)
}
