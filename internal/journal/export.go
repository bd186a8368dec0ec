// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docconv/pkg/types"
)

// WriteYAML writes records as a YAML sequence.
func WriteYAML(w io.Writer, records []types.ConversionRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if records == nil {
		records = []types.ConversionRecord{}
	}
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	return enc.Close()
}

// WriteTable writes records as aligned columns, one per line.
func WriteTable(w io.Writer, records []types.ConversionRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tDIRECTION\tBACKEND\tSTATUS\tDURATION\tINPUT\tOUTPUT")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.StartedAt.Local().Format(time.DateTime), r.Direction, r.Backend, r.Status,
			r.Duration.Round(time.Millisecond), r.Input, r.Output)
	}
	return tw.Flush()
}
