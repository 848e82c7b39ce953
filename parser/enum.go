package parser

import (
	"maps"
	"slices"
	"strings"
)

// EnumParser parses string values into enum types.
// Matching is case-insensitive unless CaseSensitive is used, and surrounding
// whitespace is ignored. Unknown names are a NoMatch.
type EnumParser[T comparable] struct {
	values      map[string]T
	upper       map[string]T
	caseMatters bool
}

// NewEnumParser creates a new enum parser with the given valid values.
// The map is copied. When names differ only by case, an exact match wins,
// and otherwise the name that sorts first.
func NewEnumParser[T comparable](values map[string]T) *EnumParser[T] {
	if values == nil {
		return &EnumParser[T]{}
	}

	upper := make(map[string]T, len(values))
	for _, k := range slices.Sorted(maps.Keys(values)) {
		key := strings.ToUpper(k)
		if _, ok := upper[key]; !ok {
			upper[key] = values[k]
		}
	}
	return &EnumParser[T]{values: maps.Clone(values), upper: upper}
}

// NewEnumStringParser creates a parser for string enum values.
func NewEnumStringParser(values ...string) *EnumParser[string] {
	valueMap := make(map[string]string, len(values))
	for _, v := range values {
		valueMap[v] = v
	}
	return NewEnumParser(valueMap)
}

// CaseSensitive returns a case-sensitive copy of p.
// A nil p is returned as is.
func (p *EnumParser[T]) CaseSensitive() *EnumParser[T] {
	if p == nil {
		return nil
	}
	return &EnumParser[T]{values: p.values, upper: p.upper, caseMatters: true}
}

// Names returns the accepted names in sorted order.
func (p *EnumParser[T]) Names() []string {
	if p == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(p.values))
}

// TryParse implements Parser.
func (p *EnumParser[T]) TryParse(input string) Outcome[T] {
	if p == nil || p.values == nil {
		return Fail[T](ErrUninitialized)
	}

	key := strings.TrimSpace(input)
	if v, ok := p.values[key]; ok {
		return OK(v)
	}
	if p.caseMatters {
		return NoMatch[T]()
	}

	if v, ok := p.upper[strings.ToUpper(key)]; ok {
		return OK(v)
	}
	return NoMatch[T]()
}
