package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/go-json-experiment/json"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"

	"github.com/apstndb/tryparse/internal/enums"
	"github.com/apstndb/tryparse/internal/rules"
	"github.com/apstndb/tryparse/parser"
)

type result struct {
	Input   string
	Outcome parser.Outcome[rules.Value]
}

// jsonRecord is the JSON form of a result, one per line.
// Value is set for every OK result, even when the value is "" or null.
type jsonRecord struct {
	Input  string `json:"input"`
	Status string `json:"status"`
	Rule   string `json:"rule,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Value  *any   `json:"value,omitzero"`
	Error  string `json:"error,omitempty"`
}

var statusColors = map[parser.Status]*color.Color{
	parser.StatusOK:      color.New(color.FgGreen),
	parser.StatusNoMatch: color.New(color.FgYellow),
	parser.StatusError:   color.New(color.FgRed, color.Bold),
}

func writeResults(w io.Writer, format enums.Format, results []result) error {
	switch format {
	case enums.FormatJSON:
		return writeJSON(w, results)
	case enums.FormatTable:
		return writeTable(w, results)
	case enums.FormatPlain:
		return writePlain(w, results)
	default:
		return fmt.Errorf("unsupported format: %v", format)
	}
}

// columns returns the rule, kind, value and error columns of r.
func columns(r result) (rule, kind, value, errText string) {
	if v, ok := r.Outcome.Value(); ok {
		return v.Rule, v.Kind.String(), v.DisplayData(), ""
	}
	if err := r.Outcome.Err(); err != nil {
		return "", "", "", err.Error()
	}
	return "", "", "", ""
}

func writePlain(w io.Writer, results []result) error {
	for _, r := range results {
		status := statusColors[r.Outcome.Status()].Sprint(r.Outcome.Status())
		rule, kind, value, errText := columns(r)

		var err error
		switch r.Outcome.Status() {
		case parser.StatusOK:
			_, err = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Input, status, rule, kind, value)
		case parser.StatusError:
			_, err = fmt.Fprintf(w, "%s\t%s\t%s\n", r.Input, status, errText)
		default:
			_, err = fmt.Fprintf(w, "%s\t%s\n", r.Input, status)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, results []result) error {
	for _, r := range results {
		rec := jsonRecord{
			Input:  r.Input,
			Status: r.Outcome.Status().String(),
		}
		if v, ok := r.Outcome.Value(); ok {
			rec.Rule = v.Rule
			rec.Kind = v.Kind.String()
			rec.Value = lo.ToPtr(v.JSONData())
		}
		if err := r.Outcome.Err(); err != nil {
			rec.Error = err.Error()
		}

		b, err := json.Marshal(rec, json.Deterministic(true))
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, results []result) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithTrimSpace(tw.Off),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	).Configure(func(config *tablewriter.Config) {
		config.Row.Formatting.AutoWrap = tw.WrapNone
	})

	table.Header([]string{"INPUT", "STATUS", "RULE", "KIND", "VALUE", "ERROR"})

	for _, r := range results {
		rule, kind, value, errText := columns(r)
		if err := table.Append([]string{r.Input, r.Outcome.Status().String(), rule, kind, value, errText}); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
