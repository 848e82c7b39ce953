// Package googlesql provides parsers for GoogleSQL literals.
//
// The parsers use memefish to parse the input as a GoogleSQL expression and
// then extract a Go value from the resulting literal. Input that is not a
// valid expression, or is an expression of another kind, is reported as a
// NoMatch so that the parsers can be combined with parser.CompositeParser.
// Literals of the right kind that cannot be represented, such as integers
// that overflow int64, are reported as errors.
package googlesql
