package parser_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/tryparse/parser"
)

// recorder appends the name of every parser it builds when that parser runs.
type recorder struct {
	calls []string
}

func (r *recorder) noMatch(name string) parser.Parser[string] {
	return parser.Func[string](func(string) parser.Outcome[string] {
		r.calls = append(r.calls, name)
		return parser.NoMatch[string]()
	})
}

func (r *recorder) ok(name, value string) parser.Parser[string] {
	return parser.Func[string](func(string) parser.Outcome[string] {
		r.calls = append(r.calls, name)
		return parser.OK(value)
	})
}

func (r *recorder) fail(name string, err error) parser.Parser[string] {
	return parser.Func[string](func(string) parser.Outcome[string] {
		r.calls = append(r.calls, name)
		return parser.Fail[string](err)
	})
}

func TestCompositeParserOrder(t *testing.T) {
	t.Run("non-match then success", func(t *testing.T) {
		var r recorder
		c := parser.NewCompositeParser(r.noMatch("A"), r.ok("B", "V"))

		got, ok, err := c.TryParse("input").Get()
		assert.True(t, ok)
		assert.Equal(t, "V", got)
		assert.NoError(t, err)
		if diff := cmp.Diff([]string{"A", "B"}, r.calls); diff != "" {
			t.Errorf("call order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("roles swapped", func(t *testing.T) {
		var r recorder
		c := parser.NewCompositeParser(r.ok("B", "V"), r.noMatch("A"))

		got, ok := parser.TryParse[string](c, "input")
		assert.True(t, ok)
		assert.Equal(t, "V", got)
		if diff := cmp.Diff([]string{"B"}, r.calls); diff != "" {
			t.Errorf("call order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("first success wins", func(t *testing.T) {
		var r recorder
		c := parser.NewCompositeParser(r.ok("first", "1"), r.ok("second", "2"))

		got, ok := parser.TryParse[string](c, "input")
		assert.True(t, ok)
		assert.Equal(t, "1", got)
		assert.Equal(t, []string{"first"}, r.calls)
	})
}

func TestCompositeParserErrorShortCircuit(t *testing.T) {
	errBad := errors.New("bad input")

	var r recorder
	c := parser.NewCompositeParser(r.fail("A", errBad), r.ok("B", "V"))

	got, ok, err := c.TryParse("input").Get()
	assert.False(t, ok)
	assert.Zero(t, got)
	assert.Same(t, errBad, err)
	assert.Equal(t, []string{"A"}, r.calls, "B must not be invoked")

	_, err = parser.Parse[string](c, "input")
	assert.Same(t, errBad, err, "Parse must return the cause unchanged")
}

func TestCompositeParserAllNoMatch(t *testing.T) {
	var r recorder
	c := parser.NewCompositeParser(r.noMatch("A"), r.noMatch("B"), r.noMatch("C"))

	out := c.TryParse("input")
	assert.True(t, out.IsNoMatch())
	assert.NoError(t, out.Err())
	assert.Equal(t, []string{"A", "B", "C"}, r.calls)
}

func TestCompositeParserEmpty(t *testing.T) {
	c := parser.NewCompositeParser[int]()
	assert.Equal(t, 0, c.Len())

	for _, input := range []string{"", "42", "anything"} {
		out := c.TryParse(input)
		assert.True(t, out.IsNoMatch(), "input %q", input)
		assert.NoError(t, out.Err())
	}

	out := parser.TryParsePtr[int](c, nil)
	assert.ErrorIs(t, out.Err(), parser.ErrNilInput)

	var nilComposite *parser.CompositeParser[int]
	assert.True(t, nilComposite.TryParse("1").IsNoMatch())
}

func TestCompositeParserDefensiveCopy(t *testing.T) {
	var r recorder
	children := []parser.Parser[string]{r.noMatch("A"), r.ok("B", "from B")}
	c := parser.NewCompositeParser(children...)

	children[1] = r.ok("X", "from X")

	got, ok := parser.TryParse[string](c, "input")
	require.True(t, ok)
	assert.Equal(t, "from B", got)

	parsers := c.Parsers()
	parsers[0] = nil
	assert.Len(t, c.Parsers(), 2)
	assert.NotNil(t, c.Parsers()[0])
}

func TestCompositeFromSeq(t *testing.T) {
	var r recorder
	children := []parser.Parser[string]{r.noMatch("A"), r.noMatch("B"), r.ok("C", "c")}
	c := parser.CompositeFromSeq(slices.Values(children))

	children[2] = r.noMatch("D")

	assert.Equal(t, 3, c.Len())
	got, ok := parser.TryParse[string](c, "input")
	require.True(t, ok)
	assert.Equal(t, "c", got)
	assert.Equal(t, []string{"A", "B", "C"}, r.calls)
}

func TestCompositeParserDropsNilChildren(t *testing.T) {
	var nilRegex *parser.RegexParser[string]
	var r recorder
	c := parser.NewCompositeParser[string](nil, r.ok("A", "a"), nilRegex)

	assert.Equal(t, 1, c.Len())
	got, ok := parser.TryParse[string](c, "input")
	assert.True(t, ok)
	assert.Equal(t, "a", got)
}

func TestCompositeOfRegexParsers(t *testing.T) {
	type token struct {
		Kind string
		Text string
	}
	rule := func(kind, pattern string) parser.Parser[token] {
		return parser.MustRegexParser(pattern, func(m *parser.Match) (token, error) {
			return token{Kind: kind, Text: m.Text()}, nil
		}, parser.Anchored())
	}

	// "12" is both a number and an identifier-ish word; order decides.
	c := parser.NewCompositeParser(
		rule("number", `[0-9]+`),
		rule("word", `[0-9a-z]+`),
	)

	tests := []struct {
		input  string
		want   token
		wantOK bool
	}{
		{"12", token{"number", "12"}, true},
		{"a1", token{"word", "a1"}, true},
		{"A1", token{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parser.TryParse[token](c, tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("TryParse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
