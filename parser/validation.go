package parser

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Validator rejects a parsed value by returning a non-nil error.
type Validator[T any] func(v T) error

// ChainValidators returns a Validator that runs vs in order and reports the
// first rejection. Nil entries are skipped.
func ChainValidators[T any](vs ...Validator[T]) Validator[T] {
	vs = lo.Filter(vs, func(v Validator[T], _ int) bool { return v != nil })
	return func(v T) error {
		for _, check := range vs {
			if err := check(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithValidation wraps p so that successful values must also pass validators.
// A value that fails validation was recognized but rejected, so it produces
// an Error outcome and stops a surrounding CompositeParser.
func WithValidation[T any](p Parser[T], validators ...Validator[T]) Parser[T] {
	validate := ChainValidators(validators...)
	return Func[T](func(input string) Outcome[T] {
		if isNil(p) {
			return Fail[T](ErrNilParser)
		}
		return mapOutcome(p.TryParse(input), func(v T) (out Outcome[T]) {
			defer recoverInto(&out)
			if err := validate(v); err != nil {
				return Fail[T](err)
			}
			return OK(v)
		})
	})
}

// RangeValidator creates a validator with optional min/max constraints.
// A nil bound is not checked.
func RangeValidator[T constraints.Ordered](min, max *T) Validator[T] {
	return func(v T) error {
		if min != nil && v < *min {
			return fmt.Errorf("value %v is less than minimum %v", v, *min)
		}
		if max != nil && v > *max {
			return fmt.Errorf("value %v is greater than maximum %v", v, *max)
		}
		return nil
	}
}
