package parser

// Map transforms the value of successful outcomes of p.
// An error returned by transform, or a panic inside it, becomes an Error
// outcome. NoMatch and Error outcomes of p pass through unchanged.
func Map[T, U any](p Parser[T], transform func(T) (U, error)) Parser[U] {
	return Func[U](func(input string) Outcome[U] {
		if isNil(p) {
			return Fail[U](ErrNilParser)
		}
		return mapOutcome(p.TryParse(input), func(v T) (out Outcome[U]) {
			defer recoverInto(&out)
			u, err := transform(v)
			if err != nil {
				return Fail[U](err)
			}
			return OK(u)
		})
	})
}
