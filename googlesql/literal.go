package googlesql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudspannerecosystem/memefish"
	"github.com/cloudspannerecosystem/memefish/ast"

	"github.com/apstndb/tryparse/parser"
)

// Extractor converts a parsed expression into an outcome.
type Extractor[T any] func(expr ast.Expr) parser.Outcome[T]

// LiteralParser parses input as a GoogleSQL expression and extracts a value from it.
type LiteralParser[T any] struct {
	extract Extractor[T]
}

// NewLiteralParser creates a parser that uses memefish to parse
// GoogleSQL-compatible literals and converts them with extract.
func NewLiteralParser[T any](extract Extractor[T]) *LiteralParser[T] {
	return &LiteralParser[T]{extract: extract}
}

// TryParse implements parser.Parser.
func (p *LiteralParser[T]) TryParse(input string) parser.Outcome[T] {
	if p == nil || p.extract == nil {
		return parser.Fail[T](parser.ErrUninitialized)
	}

	expr, err := memefish.ParseExpr("", input)
	if err != nil {
		return parser.NoMatch[T]()
	}
	return p.extract(expr)
}

// String parses string and bytes literals.
var String = NewLiteralParser(func(expr ast.Expr) parser.Outcome[string] {
	switch lit := expr.(type) {
	case *ast.StringLiteral:
		return parser.OK(lit.Value)
	case *ast.BytesLiteral:
		return parser.OK(string(lit.Value))
	default:
		return parser.NoMatch[string]()
	}
})

// Bool parses TRUE and FALSE.
var Bool = NewLiteralParser(func(expr ast.Expr) parser.Outcome[bool] {
	if lit, ok := expr.(*ast.BoolLiteral); ok {
		return parser.OK(lit.Value)
	}
	return parser.NoMatch[bool]()
})

// Int64 parses decimal and hexadecimal integer literals, optionally negated.
var Int64 = NewLiteralParser(func(expr ast.Expr) parser.Outcome[int64] {
	lit, negative, ok := unwrapNegation[*ast.IntLiteral](expr)
	if !ok {
		return parser.NoMatch[int64]()
	}

	v, err := parseIntLiteral(lit, negative)
	if err != nil {
		return parser.Fail[int64](err)
	}
	return parser.OK(v)
})

// Float64 parses floating point and integer literals, optionally negated.
var Float64 = NewLiteralParser(func(expr ast.Expr) parser.Outcome[float64] {
	if lit, negative, ok := unwrapNegation[*ast.FloatLiteral](expr); ok {
		v, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return parser.Fail[float64](err)
		}
		if negative {
			v = -v
		}
		return parser.OK(v)
	}

	if lit, negative, ok := unwrapNegation[*ast.IntLiteral](expr); ok {
		v, err := parseIntLiteral(lit, negative)
		if err != nil {
			return parser.Fail[float64](err)
		}
		return parser.OK(float64(v))
	}

	return parser.NoMatch[float64]()
})

// Null recognizes the NULL literal.
var Null = NewLiteralParser(func(expr ast.Expr) parser.Outcome[struct{}] {
	if _, ok := expr.(*ast.NullLiteral); ok {
		return parser.OK(struct{}{})
	}
	return parser.NoMatch[struct{}]()
})

// Any parses any scalar literal into its Go representation:
// string, []byte, bool, int64, float64 or nil for NULL.
var Any parser.Parser[any] = parser.NewCompositeParser[any](
	parser.Map[struct{}](Null, func(struct{}) (any, error) { return nil, nil }),
	parser.Map[bool](Bool, func(v bool) (any, error) { return v, nil }),
	parser.Map[int64](Int64, func(v int64) (any, error) { return v, nil }),
	parser.Map[float64](Float64, func(v float64) (any, error) { return v, nil }),
	NewLiteralParser(func(expr ast.Expr) parser.Outcome[any] {
		switch lit := expr.(type) {
		case *ast.StringLiteral:
			return parser.OK[any](lit.Value)
		case *ast.BytesLiteral:
			return parser.OK[any](lit.Value)
		default:
			return parser.NoMatch[any]()
		}
	}),
)

// NewEnumParser parses enum values written as string literals or identifiers.
// Names are matched case-insensitively.
func NewEnumParser[T comparable](values map[string]T) *LiteralParser[T] {
	enum := parser.NewEnumParser(values)
	return NewLiteralParser(func(expr ast.Expr) parser.Outcome[T] {
		switch lit := expr.(type) {
		case *ast.StringLiteral:
			return enum.TryParse(lit.Value)
		case *ast.Ident:
			return enum.TryParse(lit.Name)
		default:
			return parser.NoMatch[T]()
		}
	})
}

// Compatible accepts both GoogleSQL string literals and plain text.
// Input that starts like a quoted literal must be a valid literal; anything
// else is returned as-is.
var Compatible parser.Parser[string] = parser.Func[string](func(input string) parser.Outcome[string] {
	if looksQuoted(input) {
		return String.TryParse(input)
	}
	return parser.OK(input)
})

var literalPrefixes = []string{`'`, `"`, `r'`, `r"`, `b'`, `b"`, `R'`, `R"`, `B'`, `B"`}

func looksQuoted(s string) bool {
	trimmed := strings.TrimSpace(s)
	for _, prefix := range literalPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// unwrapNegation returns the literal of type L in expr or in -expr.
func unwrapNegation[L ast.Expr](expr ast.Expr) (lit L, negative bool, ok bool) {
	if lit, ok = expr.(L); ok {
		return lit, false, true
	}
	if unary, isUnary := expr.(*ast.UnaryExpr); isUnary && unary.Op == ast.OpMinus {
		if lit, ok = unary.Expr.(L); ok {
			return lit, true, true
		}
	}
	return lit, false, false
}

func parseIntLiteral(lit *ast.IntLiteral, negative bool) (int64, error) {
	digits, base := lit.Value, 10
	if lit.Base == 16 {
		digits, base = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X"), 16
	}
	if negative {
		digits = "-" + digits
	}

	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer literal %s: %w", lit.SQL(), err)
	}
	return v, nil
}
