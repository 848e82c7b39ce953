package parser

import (
	"strings"
)

// Optional wraps base so that NULL (case-insensitive, surrounding whitespace
// ignored) parses to a nil pointer. Other inputs are parsed by base.
func Optional[T any](base Parser[T]) Parser[*T] {
	return Func[*T](func(input string) Outcome[*T] {
		if strings.EqualFold(strings.TrimSpace(input), "NULL") {
			return OK[*T](nil)
		}
		if isNil(base) {
			return Fail[*T](ErrNilParser)
		}
		return mapOutcome(base.TryParse(input), func(v T) Outcome[*T] {
			return OK(&v)
		})
	})
}
