// Package parser provides a small generic framework for turning strings into
// typed values.
//
// Every parser implements the same fallible contract:
//
//	TryParse(input string) Outcome[T]
//
// An Outcome is one of three things:
//
//   - OK: the input was recognized and converted into a value.
//   - NoMatch: the parser does not recognize the input. This is not an error.
//   - Error: the parser recognized the input but failed to convert it. The
//     cause is carried by the outcome.
//
// The difference between NoMatch and Error is what makes parsers composable.
// A CompositeParser tries its children in order and moves on to the next
// child only on NoMatch; it stops at the first OK or the first Error.
//
// # Building blocks
//
//   - RegexParser: matches a regular expression and projects the match into a value.
//   - CompositeParser: ordered fallback chain over other parsers.
//   - Func, FromParseFunc: adapters for plain functions.
//   - Map, WithValidation, Optional, EnumParser: decorators and helpers.
//
// # Usage
//
//	digits := parser.MustRegexParser(`^[0-9]+$`, func(m *parser.Match) (int, error) {
//	    return strconv.Atoi(m.Text())
//	})
//
//	n, err := parser.Parse(digits, "42")   // 42, nil
//	_, err = parser.Parse(digits, "abc")   // *FormatError
//	n, ok := parser.TryParse(digits, "7")  // 7, true
//
// Parsers hold no mutable state after construction. They are safe for
// concurrent use as long as the user-supplied projections are.
package parser
