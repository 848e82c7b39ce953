// Command tryparse classifies input strings with a rule file.
//
// Each input is matched against the rules in file order. The first rule
// whose pattern matches converts the input; a conversion failure is
// reported as an error for that input rather than falling through to the
// next rule.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/apstndb/tryparse/internal/enums"
	"github.com/apstndb/tryparse/internal/rules"
	"github.com/apstndb/tryparse/parser"
)

type options struct {
	Rules  string `long:"rules" short:"r" env:"TRYPARSE_RULES" description:"(required) Rule file in YAML or JSON."`
	Format string `long:"format" short:"f" default:"PLAIN" description:"Output format (PLAIN|JSON|TABLE)."`
	Strict bool   `long:"strict" description:"Exit with status 1 if any input is not parsed."`
	Debug  bool   `long:"debug" hidden:"true"`

	Args struct {
		Inputs []string `positional-arg-name:"INPUT" description:"Inputs to parse. Read from stdin, one per line, if omitted."`
	} `positional-args:"yes"`
}

// maxLineSize bounds a single stdin line.
const maxLineSize = 1 << 20

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, afero.NewOsFs())
	if err != nil && !errors.As(err, new(*ExitCodeError)) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(GetExitCode(err))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, fs afero.Fs) error {
	var opts options
	flagParser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	flagParser.Usage = "[OPTIONS] [INPUT...]"

	if _, err := flagParser.ParseArgs(args); flags.WroteHelp(err) {
		fmt.Fprintln(stdout, err)
		return nil
	} else if err != nil {
		return &usageError{err: err}
	}

	setLogLevel(stderr, lo.Ternary(opts.Debug, slog.LevelDebug, slog.LevelWarn))

	if opts.Rules == "" {
		return &usageError{err: errors.New("missing parameter: --rules is required")}
	}

	format, err := parser.Parse[enums.Format](enums.FormatParser, opts.Format)
	if err != nil {
		return &usageError{err: fmt.Errorf("invalid --format %q, must be one of: %v", opts.Format, enums.FormatParser.Names())}
	}

	file, err := rules.Load(fs, opts.Rules)
	if err != nil {
		return &usageError{err: err}
	}

	p, err := rules.Compile(file)
	if err != nil {
		return &usageError{err: fmt.Errorf("%s: %w", opts.Rules, err)}
	}
	slog.Debug("loaded rules", "path", opts.Rules, "count", p.Len())

	inputs := opts.Args.Inputs
	if len(inputs) == 0 {
		if inputs, err = readLines(stdin); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	results := make([]result, 0, len(inputs))
	for _, input := range inputs {
		out := p.TryParse(input)
		if out.IsError() {
			slog.Debug("parse error", "input", input, "err", out.Err())
		}
		results = append(results, result{Input: input, Outcome: out})
	}

	if err := writeResults(stdout, format, results); err != nil {
		return err
	}

	if opts.Strict && slices.ContainsFunc(results, func(r result) bool { return !r.Outcome.OK() }) {
		return NewExitCodeError(exitCodeFailure)
	}
	return nil
}

// setLogLevel installs the default logger with the given level.
func setLogLevel(w io.Writer, level slog.Level) {
	h := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(h)
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
