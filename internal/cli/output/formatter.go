// Package output provides output formatting for planka-cli.
//
// Entity lists render as tabwriter tables, single entities as labeled
// field blocks; --output json or yaml switches to machine-readable
// encodings of the raw API data.
package output

import (
	"fmt"
	"io"
)

// Format represents the output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formatter encodes data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// New creates a formatter for the given format. Unknown formats are an
// error so a typo in --output fails instead of silently printing a table.
func New(format Format) (Formatter, error) {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatTable, "":
		return nil, fmt.Errorf("table output has no generic formatter")
	default:
		return nil, fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}
