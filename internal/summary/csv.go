package summary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// WriteCSV emits the rows as label,value records.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		if err := cw.Write([]string{row.Label, row.Value}); err != nil {
			return fmt.Errorf("write CSV record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}
	return nil
}

// ExportCSV writes the rows to a CSV file at path.
func ExportCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, rows); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close summary file: %w", err)
	}
	return nil
}
