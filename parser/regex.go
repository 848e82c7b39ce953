package parser

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Projection builds a value from a successful match.
type Projection[T any] func(m *Match) (T, error)

// RegexParser recognizes input with a regular expression and converts the
// match with a projection.
//
// The zero value is not usable; TryParse on it reports ErrUninitialized.
type RegexParser[T any] struct {
	re      *regexp.Regexp
	project Projection[T]
}

// NewRegexParser compiles pattern once and returns a parser that calls
// project on every match. Compilation errors are returned here rather than
// at parse time.
func NewRegexParser[T any](pattern string, project Projection[T], opts ...RegexOption) (*RegexParser[T], error) {
	if project == nil {
		return nil, ErrNilProjection
	}

	var cfg regexConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	re, err := regexp.Compile(cfg.wrap(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	if cfg.longest {
		re.Longest()
	}

	return &RegexParser[T]{re: re, project: project}, nil
}

// MustRegexParser is like NewRegexParser but panics on error.
// It simplifies initialization of package-level parsers.
func MustRegexParser[T any](pattern string, project Projection[T], opts ...RegexOption) *RegexParser[T] {
	p, err := NewRegexParser(pattern, project, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// NewRegexParserFromRegexp returns a parser for an already compiled expression.
// The expression must not be modified afterwards.
func NewRegexParserFromRegexp[T any](re *regexp.Regexp, project Projection[T]) (*RegexParser[T], error) {
	if re == nil {
		return nil, ErrNilPattern
	}
	if project == nil {
		return nil, ErrNilProjection
	}
	return &RegexParser[T]{re: re, project: project}, nil
}

// Pattern returns the source text of the compiled expression.
func (p *RegexParser[T]) Pattern() string {
	if p == nil || p.re == nil {
		return ""
	}
	return p.re.String()
}

// SubexpNames returns the names of the capturing groups, indexed by group
// number. Index 0 and unnamed groups are "".
func (p *RegexParser[T]) SubexpNames() []string {
	if p == nil || p.re == nil {
		return nil
	}
	return slices.Clone(p.re.SubexpNames())
}

// TryParse implements Parser.
// The projection runs at most once, and only when the expression matches.
func (p *RegexParser[T]) TryParse(input string) (out Outcome[T]) {
	if p == nil || p.re == nil || p.project == nil {
		return Fail[T](ErrUninitialized)
	}

	loc := p.re.FindStringSubmatchIndex(input)
	if loc == nil {
		return NoMatch[T]()
	}

	defer recoverInto(&out)

	v, err := p.project(&Match{input: input, loc: loc, re: p.re})
	if err != nil {
		return Fail[T](err)
	}
	return OK(v)
}

// Match describes a successful regular expression match.
// Group 0 is the whole match.
type Match struct {
	input string
	loc   []int
	re    *regexp.Regexp
}

// Input returns the string that was matched against.
func (m *Match) Input() string {
	return m.input
}

// Text returns the text of the whole match.
func (m *Match) Text() string {
	return m.Group(0)
}

// NumGroups returns the number of capturing groups, excluding group 0.
func (m *Match) NumGroups() int {
	return len(m.loc)/2 - 1
}

// Index returns the byte offsets of group i, or -1, -1 if the group did not
// participate in the match or does not exist.
func (m *Match) Index(i int) (start, end int) {
	if i < 0 || 2*i+1 >= len(m.loc) {
		return -1, -1
	}
	return m.loc[2*i], m.loc[2*i+1]
}

// Matched reports whether group i participated in the match.
func (m *Match) Matched(i int) bool {
	start, _ := m.Index(i)
	return start >= 0
}

// Group returns the text of group i. Groups that did not participate in the
// match, and groups that do not exist, yield "".
func (m *Match) Group(i int) string {
	start, end := m.Index(i)
	if start < 0 {
		return ""
	}
	return m.input[start:end]
}

// Named returns the text of the named group, or "" if there is none.
func (m *Match) Named(name string) string {
	if i := m.re.SubexpIndex(name); i >= 0 {
		return m.Group(i)
	}
	return ""
}

// Groups returns the text of every group including group 0.
func (m *Match) Groups() []string {
	groups := make([]string, len(m.loc)/2)
	for i := range groups {
		groups[i] = m.Group(i)
	}
	return groups
}

// NamedGroups returns the text of every named group that participated in the match.
func (m *Match) NamedGroups() map[string]string {
	groups := make(map[string]string)
	for i, name := range m.re.SubexpNames() {
		if name == "" || !m.Matched(i) {
			continue
		}
		groups[name] = m.Group(i)
	}
	return groups
}

// RegexOption configures how NewRegexParser compiles its pattern.
type RegexOption func(*regexConfig)

type regexConfig struct {
	flags    strings.Builder
	anchored bool
	longest  bool
}

func (c *regexConfig) wrap(pattern string) string {
	if c.anchored {
		pattern = `\A(?:` + pattern + `)\z`
	}
	if c.flags.Len() > 0 {
		pattern = "(?" + c.flags.String() + ")" + pattern
	}
	return pattern
}

// IgnoreCase enables case-insensitive matching (flag i).
func IgnoreCase() RegexOption {
	return func(c *regexConfig) { c.flags.WriteByte('i') }
}

// Multiline lets ^ and $ match at line boundaries (flag m).
func Multiline() RegexOption {
	return func(c *regexConfig) { c.flags.WriteByte('m') }
}

// DotAll lets . match newlines (flag s).
func DotAll() RegexOption {
	return func(c *regexConfig) { c.flags.WriteByte('s') }
}

// Ungreedy swaps the meaning of x* and x*? (flag U).
func Ungreedy() RegexOption {
	return func(c *regexConfig) { c.flags.WriteByte('U') }
}

// Anchored requires the pattern to match the entire input.
func Anchored() RegexOption {
	return func(c *regexConfig) { c.anchored = true }
}

// Longest selects leftmost-longest matching instead of leftmost-first.
func Longest() RegexOption {
	return func(c *regexConfig) { c.longest = true }
}
