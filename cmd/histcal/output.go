package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"histcal/internal/model"
)

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputRows writes rows as an aligned text table.
func outputRows(w io.Writer, rows []model.Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "(0 entries)")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTART\tEND\tDURATION")
	for _, r := range rows {
		d := r.Duration
		if r.Error != "" {
			d = "error: " + r.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Title, r.Start, r.End, d)
	}
	return tw.Flush()
}
