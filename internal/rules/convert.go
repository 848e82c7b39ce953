package rules

import (
	"fmt"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/apstndb/tryparse/googlesql"
	"github.com/apstndb/tryparse/internal/enums"
	"github.com/apstndb/tryparse/parser"
)

// converterFor returns the parser that converts captured text for kind.
func converterFor(kind enums.Kind, r Rule) (parser.Parser[any], error) {
	switch kind {
	case enums.KindInt:
		return bounded[int64](parser.NewInt64Parser(), r)
	case enums.KindFloat:
		return bounded[float64](parser.NewFloat64Parser(), r)
	case enums.KindDuration:
		return bounded[time.Duration](parser.NewDurationParser(), r)
	}

	if r.Min != "" || r.Max != "" {
		return nil, fmt.Errorf("min and max are not supported for kind %v", kind)
	}

	switch kind {
	case enums.KindString:
		return parser.Func[any](func(s string) parser.Outcome[any] { return parser.OK[any](s) }), nil
	case enums.KindQuoted:
		return boxed[string](parser.NewQuotedStringParser()), nil
	case enums.KindBool:
		return boxed[bool](parser.NewBoolParser()), nil
	case enums.KindSQL:
		return googlesql.Any, nil
	default:
		return nil, fmt.Errorf("unsupported kind %v", kind)
	}
}

// bounded applies the rule's min and max, parsed with p itself, to p.
func bounded[T constraints.Ordered](p parser.Parser[T], r Rule) (parser.Parser[any], error) {
	bound := func(field, s string) (*T, error) {
		if s == "" {
			return nil, nil
		}
		v, err := parser.Parse(p, s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", field, err)
		}
		return &v, nil
	}

	min, err := bound("min", r.Min)
	if err != nil {
		return nil, err
	}
	max, err := bound("max", r.Max)
	if err != nil {
		return nil, err
	}
	if min != nil && max != nil && *min > *max {
		return nil, fmt.Errorf("min %v is greater than max %v", *min, *max)
	}

	return boxed(parser.WithValidation(p, parser.RangeValidator(min, max))), nil
}

func boxed[T any](p parser.Parser[T]) parser.Parser[any] {
	return parser.Map(p, func(v T) (any, error) { return v, nil })
}
