package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
)

// WriteCSV writes the header and rows as RFC 4180 CSV.
func WriteCSV(w io.Writer, rows []report.ExportRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(report.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Values()); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
