// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package cmd

import (
	"fmt"
	"io"

	"github.com/juju/ansiterm"
	"github.com/juju/cmd/v3"
)

// DefaultFormatters are the structured formats offered by every command
// with output.
var DefaultFormatters = map[string]cmd.Formatter{
	"yaml": cmd.FormatYaml,
	"json": cmd.FormatJson,
}

// WithFormatters returns DefaultFormatters plus the named human readable
// formatter.
func WithFormatters(name string, formatter cmd.Formatter) map[string]cmd.Formatter {
	formatters := map[string]cmd.Formatter{name: formatter}
	for k, v := range DefaultFormatters {
		formatters[k] = v
	}
	return formatters
}

// TabWriter returns a writer for aligned columns.
func TabWriter(writer io.Writer) *ansiterm.TabWriter {
	return ansiterm.NewTabWriter(writer, 0, 1, 1, ' ', 0)
}

// PrintRow writes the given values as one tab separated row.
func PrintRow(writer io.Writer, values ...interface{}) {
	for i, v := range values {
		if i > 0 {
			fmt.Fprint(writer, "\t")
		}
		fmt.Fprint(writer, v)
	}
	fmt.Fprintln(writer)
}
