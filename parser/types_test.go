package parser_test

import (
	"math"
	"testing"
	"time"

	"github.com/apstndb/tryparse/parser"
)

func TestBoolParser(t *testing.T) {
	p := parser.NewBoolParser()

	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{"true lowercase", "true", true, false},
		{"TRUE uppercase", "TRUE", true, false},
		{"mixed case", "tRuE", true, false},
		{"false", "false", false, false},
		{"FALSE uppercase", "FALSE", false, false},
		{"with spaces", "  true  ", true, false},
		{"1", "1", true, false},
		{"0", "0", false, false},
		{"t", "t", true, false},
		{"F", "F", false, false},
		{"invalid", "invalid", false, true},
		{"yes is not a bool", "yes", false, true},
		{"empty", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse[bool](p, tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInt64Parser(t *testing.T) {
	p := parser.NewInt64Parser()

	tests := []struct {
		name       string
		input      string
		want       int64
		wantStatus parser.Status
	}{
		{"positive", "42", 42, parser.StatusOK},
		{"negative", "-42", -42, parser.StatusOK},
		{"explicit plus", "+7", 7, parser.StatusOK},
		{"zero", "0", 0, parser.StatusOK},
		{"with spaces", "  123  ", 123, parser.StatusOK},
		{"max", "9223372036854775807", math.MaxInt64, parser.StatusOK},
		{"overflow", "9223372036854775808", 0, parser.StatusError},
		{"invalid", "abc", 0, parser.StatusNoMatch},
		{"trailing garbage", "12abc", 0, parser.StatusNoMatch},
		{"decimal", "1.5", 0, parser.StatusNoMatch},
		{"empty", "", 0, parser.StatusNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := p.TryParse(tt.input)
			if out.Status() != tt.wantStatus {
				t.Fatalf("TryParse() = %v, want status %v", out, tt.wantStatus)
			}
			if got, _ := out.Value(); got != tt.want {
				t.Errorf("TryParse() value = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFloat64Parser(t *testing.T) {
	p := parser.NewFloat64Parser()

	tests := []struct {
		name       string
		input      string
		want       float64
		wantStatus parser.Status
	}{
		{"integer", "3", 3, parser.StatusOK},
		{"decimal", "3.25", 3.25, parser.StatusOK},
		{"leading dot", ".5", 0.5, parser.StatusOK},
		{"trailing dot", "2.", 2, parser.StatusOK},
		{"exponent", "-1e3", -1000, parser.StatusOK},
		{"infinity", "+Inf", math.Inf(1), parser.StatusOK},
		{"out of range", "1e400", 0, parser.StatusError},
		{"word", "pi", 0, parser.StatusNoMatch},
		{"empty", "", 0, parser.StatusNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := p.TryParse(tt.input)
			if out.Status() != tt.wantStatus {
				t.Fatalf("TryParse() = %v, want status %v", out, tt.wantStatus)
			}
			if got, ok := out.Value(); ok && got != tt.want {
				t.Errorf("TryParse() value = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("nan", func(t *testing.T) {
		got, ok := parser.TryParse[float64](p, "NaN")
		if !ok || !math.IsNaN(got) {
			t.Errorf("TryParse(NaN) = %v, %v", got, ok)
		}
	})
}

func TestDurationParser(t *testing.T) {
	p := parser.NewDurationParser()

	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"seconds", "10s", 10 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"hours", "2h", 2 * time.Hour, false},
		{"complex", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second, false},
		{"fraction", "1.5s", 1500 * time.Millisecond, false},
		{"micro", "3µs", 3 * time.Microsecond, false},
		{"negative", "-100ms", -100 * time.Millisecond, false},
		{"zero", "0", 0, false},
		{"with spaces", "  100ms  ", 100 * time.Millisecond, false},
		{"missing unit", "10", 0, true},
		{"invalid", "abc", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse[time.Duration](p, tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuotedStringParser(t *testing.T) {
	p := parser.NewQuotedStringParser()

	tests := []struct {
		name       string
		input      string
		want       string
		wantStatus parser.Status
	}{
		{"double quoted", `"hello world"`, "hello world", parser.StatusOK},
		{"single quoted", `'hello'`, "hello", parser.StatusOK},
		{"escaped single quote", `'it\'s'`, "it's", parser.StatusOK},
		{"escaped newline", `"a\nb"`, "a\nb", parser.StatusOK},
		{"empty string", `""`, "", parser.StatusOK},
		{"with spaces", `  'x'  `, "x", parser.StatusOK},
		{"bad escape", `"\q"`, "", parser.StatusError},
		{"unquoted", "hello", "", parser.StatusNoMatch},
		{"unclosed", `'unclosed`, "", parser.StatusNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := p.TryParse(tt.input)
			if out.Status() != tt.wantStatus {
				t.Fatalf("TryParse() = %v, want status %v", out, tt.wantStatus)
			}
			if got, _ := out.Value(); got != tt.want {
				t.Errorf("TryParse() value = %q, want %q", got, tt.want)
			}
		})
	}
}
