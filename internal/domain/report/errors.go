package report

import "errors"

var (
	ErrUnsupportedFormat      = errors.New("unsupported export format")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
