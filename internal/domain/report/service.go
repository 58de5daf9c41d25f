package report

import "context"

// ReportService defines the interface for attendance exports
type ReportService interface {
	// Export renders the selected attendance records as CSV or XLSX
	Export(ctx context.Context, req ExportRequest) (*ExportFile, error)
}
