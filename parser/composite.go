package parser

import (
	"iter"
	"slices"

	"github.com/samber/lo"
)

// CompositeParser treats an ordered list of parsers as a single parser.
//
// Children are tried in the order they were given. The first child that
// returns OK or Error decides the outcome; children reporting NoMatch are
// skipped. If every child reports NoMatch, so does the composite.
type CompositeParser[T any] struct {
	parsers []Parser[T]
}

// NewCompositeParser creates a composite from parsers.
// The list is copied, so later changes to a slice passed with parsers...
// do not affect the composite. Nil entries are dropped.
func NewCompositeParser[T any](parsers ...Parser[T]) *CompositeParser[T] {
	return &CompositeParser[T]{
		parsers: lo.Filter(parsers, func(p Parser[T], _ int) bool {
			return !isNil(p)
		}),
	}
}

// CompositeFromSeq creates a composite from the parsers yielded by seq.
// The sequence is consumed once, at construction.
func CompositeFromSeq[T any](seq iter.Seq[Parser[T]]) *CompositeParser[T] {
	return NewCompositeParser(slices.Collect(seq)...)
}

// Len returns the number of child parsers.
func (c *CompositeParser[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.parsers)
}

// Parsers returns a copy of the child parsers in evaluation order.
func (c *CompositeParser[T]) Parsers() []Parser[T] {
	if c == nil {
		return nil
	}
	return slices.Clone(c.parsers)
}

// TryParse implements Parser.
func (c *CompositeParser[T]) TryParse(input string) Outcome[T] {
	if c == nil {
		return NoMatch[T]()
	}

	for _, p := range c.parsers {
		out := p.TryParse(input)
		if out.status != StatusNoMatch {
			return out
		}
	}

	return NoMatch[T]()
}
