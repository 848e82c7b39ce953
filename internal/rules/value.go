package rules

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/apstndb/tryparse/internal/enums"
)

// Value is the result of a rule that matched.
type Value struct {
	Rule string
	Kind enums.Kind

	// Text is the text of the converted group.
	Text string

	// Data is the converted value: string, int64, float64, bool,
	// time.Duration, or for SQL rules any GoogleSQL literal value.
	Data any

	// Groups holds the named groups that participated in the match.
	Groups map[string]string
}

// DisplayData renders Data for human-readable output.
func (v Value) DisplayData() string {
	switch d := v.Data.(type) {
	case nil:
		return "NULL"
	case []byte:
		return fmt.Sprintf("b%q", d)
	case string:
		return d
	default:
		return fmt.Sprint(d)
	}
}

// JSONData returns Data in a form that encodes naturally as JSON.
// Durations, infinities and NaN are rendered as strings and bytes as text.
func (v Value) JSONData() any {
	switch d := v.Data.(type) {
	case float64:
		if math.IsInf(d, 0) || math.IsNaN(d) {
			return strconv.FormatFloat(d, 'g', -1, 64)
		}
		return d
	case time.Duration:
		return d.String()
	case []byte:
		return string(d)
	default:
		return d
	}
}
