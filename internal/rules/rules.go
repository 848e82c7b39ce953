// Package rules loads rule files and compiles them into parsers.
//
// A rule file lists named regular expressions in priority order. Each rule
// converts the text of one capturing group into a value of its kind:
//
//	rules:
//	  - name: port
//	    pattern: 'port=(?P<value>\d+)'
//	    options: [IGNORE_CASE, ANCHORED]
//	    kind: INT
//	    min: "1"
//	    max: "65535"
//
// goccy/go-yaml accepts both YAML and JSON, so rule files may be written in either.
package rules

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/apstndb/tryparse/internal/enums"
	"github.com/apstndb/tryparse/parser"
)

// defaultGroup is used when a rule names no group and its pattern has a group of this name.
const defaultGroup = "value"

// File is the decoded form of a rule file.
type File struct {
	Rules []Rule `yaml:"rules"`
}

// Rule describes one regular expression and how to convert its match.
type Rule struct {
	Name    string   `yaml:"name"`
	Pattern string   `yaml:"pattern"`
	Options []string `yaml:"options"`

	// Kind is one of STRING, QUOTED, INT, FLOAT, BOOL, DURATION or SQL. Defaults to STRING.
	Kind string `yaml:"kind"`

	// Group selects the capturing group to convert, by name or number.
	// Defaults to the group named "value", else group 1, else the whole match.
	Group string `yaml:"group"`

	// Min and Max are optional bounds written in the syntax of Kind.
	// They are accepted for INT, FLOAT and DURATION rules.
	Min string `yaml:"min"`
	Max string `yaml:"max"`
}

// Load reads and decodes the rule file at path.
func Load(fs afero.Fs, path string) (*File, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}

	f, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode decodes a rule file. Unknown fields are rejected.
func Decode(data []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalWithOptions(data, &f, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse rule file: %w", err)
	}
	return &f, nil
}

// Compile compiles every rule of f, in order, into a single parser.
// All patterns are compiled here, so invalid rules are reported before any
// input is parsed.
func Compile(f *File) (*parser.CompositeParser[Value], error) {
	if f == nil || len(f.Rules) == 0 {
		return nil, fmt.Errorf("rule file has no rules")
	}

	seen := make(map[string]bool, len(f.Rules))
	compiled := make([]parser.Parser[Value], 0, len(f.Rules))
	for i, r := range f.Rules {
		if r.Name == "" {
			return nil, fmt.Errorf("rule #%d: name is required", i+1)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("rule %q: duplicate name", r.Name)
		}
		seen[r.Name] = true

		p, err := compileRule(r)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		compiled = append(compiled, p)
	}

	return parser.NewCompositeParser(compiled...), nil
}

var regexOptions = map[string]func() parser.RegexOption{
	"IGNORE_CASE": parser.IgnoreCase,
	"MULTILINE":   parser.Multiline,
	"DOT_ALL":     parser.DotAll,
	"UNGREEDY":    parser.Ungreedy,
	"ANCHORED":    parser.Anchored,
	"LONGEST":     parser.Longest,
}

func compileRule(r Rule) (parser.Parser[Value], error) {
	if r.Pattern == "" {
		return nil, fmt.Errorf("pattern is required")
	}

	kind := enums.KindString
	if r.Kind != "" {
		var err error
		if kind, err = parser.Parse[enums.Kind](enums.KindParser, r.Kind); err != nil {
			return nil, fmt.Errorf("unknown kind %q, must be one of: %s", r.Kind, strings.Join(enums.KindParser.Names(), ", "))
		}
	}

	opts := make([]parser.RegexOption, 0, len(r.Options))
	for _, name := range r.Options {
		opt, ok := regexOptions[strings.ToUpper(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown option %q, must be one of: %s", name, strings.Join(slices.Sorted(maps.Keys(regexOptions)), ", "))
		}
		opts = append(opts, opt())
	}

	convert, err := converterFor(kind, r)
	if err != nil {
		return nil, err
	}

	// group is resolved below, once the pattern is compiled.
	var group int
	p, err := parser.NewRegexParser(r.Pattern, func(m *parser.Match) (Value, error) {
		text := m.Group(group)
		data, err := parser.Parse(convert, text)
		if err != nil {
			return Value{}, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		return Value{
			Rule:   r.Name,
			Kind:   kind,
			Text:   text,
			Data:   data,
			Groups: m.NamedGroups(),
		}, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	if group, err = resolveGroup(p.SubexpNames(), r.Group); err != nil {
		return nil, err
	}

	slog.Debug("compiled rule", "name", r.Name, "pattern", p.Pattern(), "kind", kind, "group", group)
	return p, nil
}

// resolveGroup returns the index of the group to convert.
// names is indexed by group number as returned by RegexParser.SubexpNames.
func resolveGroup(names []string, group string) (int, error) {
	if group == "" {
		if i := lo.IndexOf(names, defaultGroup); i > 0 {
			return i, nil
		}
		return lo.Ternary(len(names) > 1, 1, 0), nil
	}

	if i, err := strconv.Atoi(group); err == nil {
		if i < 0 || i >= len(names) {
			return 0, fmt.Errorf("group %d out of range, pattern has %d groups", i, len(names)-1)
		}
		return i, nil
	}

	if i := lo.IndexOf(names, group); i > 0 {
		return i, nil
	}
	return 0, fmt.Errorf("pattern has no group named %q", group)
}
