package parser

import (
	"strconv"
	"strings"
	"time"
)

// The predefined parsers ignore surrounding whitespace and require the
// whole input to be a literal of their type. Inputs that look like the type
// but cannot be converted, such as an integer that overflows int64, produce
// an Error outcome rather than NoMatch.

const (
	int64Pattern    = `\s*([+-]?[0-9]+)\s*`
	float64Pattern  = `\s*([+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?|[+-]?(?i:inf|infinity|nan))\s*`
	boolPattern     = `\s*(?i:(true|false|t|f|1|0))\s*`
	durationPattern = `\s*([+-]?(?:(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:ns|us|µs|μs|ms|s|m|h))+|[+-]?0)\s*`
	quotedPattern   = `\s*(?:"((?:[^"\\]|\\.)*)"|'((?:[^'\\]|\\.)*)')\s*`
)

// NewInt64Parser creates a parser for base-10 integers.
func NewInt64Parser() *RegexParser[int64] {
	return MustRegexParser(int64Pattern, func(m *Match) (int64, error) {
		return strconv.ParseInt(m.Group(1), 10, 64)
	}, Anchored())
}

// NewFloat64Parser creates a parser for decimal floating point numbers,
// including Inf and NaN.
func NewFloat64Parser() *RegexParser[float64] {
	return MustRegexParser(float64Pattern, func(m *Match) (float64, error) {
		return strconv.ParseFloat(m.Group(1), 64)
	}, Anchored())
}

// NewBoolParser creates a parser for boolean values.
// It accepts true, false, t, f, 1 and 0 in any case.
func NewBoolParser() *RegexParser[bool] {
	return MustRegexParser(boolPattern, func(m *Match) (bool, error) {
		switch strings.ToLower(m.Group(1)) {
		case "true", "t", "1":
			return true, nil
		default:
			return false, nil
		}
	}, Anchored())
}

// NewDurationParser creates a parser for time.ParseDuration strings.
func NewDurationParser() *RegexParser[time.Duration] {
	return MustRegexParser(durationPattern, func(m *Match) (time.Duration, error) {
		return time.ParseDuration(m.Group(1))
	}, Anchored())
}

var singleQuoteUnescaper = strings.NewReplacer(`\'`, `'`, `\\`, `\`)

// NewQuotedStringParser creates a parser for single or double quoted strings.
// Double quoted strings follow Go escaping rules. Single quoted strings only
// unescape \' and \\.
func NewQuotedStringParser() *RegexParser[string] {
	return MustRegexParser(quotedPattern, func(m *Match) (string, error) {
		if m.Matched(1) {
			return strconv.Unquote(`"` + m.Group(1) + `"`)
		}
		return singleQuoteUnescaper.Replace(m.Group(2)), nil
	}, Anchored())
}
