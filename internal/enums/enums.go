package enums

import (
	"fmt"

	"github.com/apstndb/tryparse/parser"
)

// Format represents CLI output formats
type Format int

const (
	FormatUnspecified Format = iota
	FormatPlain
	FormatJSON
	FormatTable
)

var formatNames = map[Format]string{
	FormatUnspecified: "UNSPECIFIED",
	FormatPlain:       "PLAIN",
	FormatJSON:        "JSON",
	FormatTable:       "TABLE",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatParser parses output format names case-insensitively.
var FormatParser = parser.NewEnumParser(map[string]Format{
	"PLAIN": FormatPlain,
	"JSON":  FormatJSON,
	"TABLE": FormatTable,
})

// Kind represents the type of value a rule produces
type Kind int

const (
	KindUnspecified Kind = iota
	KindString
	KindQuoted
	KindInt
	KindFloat
	KindBool
	KindDuration
	KindSQL
)

var kindNames = map[Kind]string{
	KindUnspecified: "UNSPECIFIED",
	KindString:      "STRING",
	KindQuoted:      "QUOTED",
	KindInt:         "INT",
	KindFloat:       "FLOAT",
	KindBool:        "BOOL",
	KindDuration:    "DURATION",
	KindSQL:         "SQL",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindParser parses rule kinds case-insensitively.
var KindParser = parser.NewEnumParser(map[string]Kind{
	"STRING":   KindString,
	"QUOTED":   KindQuoted,
	"INT":      KindInt,
	"FLOAT":    KindFloat,
	"BOOL":     KindBool,
	"DURATION": KindDuration,
	"SQL":      KindSQL,
})
