package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVOptions configures CSV writing behavior
type CSVOptions struct {
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// EncodeCSV writes the tables to w. Several tables are separated by an
// empty line, each with its own header row.
func EncodeCSV(w io.Writer, opts CSVOptions, tables ...Table) error {
	if opts.BOMPrefix {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(w)

	for ti, table := range tables {
		if ti > 0 {
			if err := writer.Write(nil); err != nil {
				return fmt.Errorf("failed to write table separator: %w", err)
			}
		}

		if len(table.Headers) > 0 {
			if err := writer.Write(table.Headers); err != nil {
				return fmt.Errorf("failed to write %s headers: %w", table.Name, err)
			}
		}

		record := make([]string, 0, len(table.Headers))
		for i, row := range table.Rows {
			record = record[:0]
			for _, cell := range row {
				record = append(record, formatCell(cell))
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write %s record %d: %w", table.Name, i, err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
