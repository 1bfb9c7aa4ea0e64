package summary

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// RenderTable writes the rows to w with columns aligned by width.
func RenderTable(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		if _, err := fmt.Fprintln(w, "(no rows)"); err != nil {
			return err
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row.Label, row.Value); err != nil {
			return fmt.Errorf("write table row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}
