package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	loc *time.Location
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) report.ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		loc:                  loc,
	}
}

// records resolves the export filter against the store, newest first.
func (s *ReportServiceImpl) records(ctx context.Context, req report.ExportRequest) ([]attendance.Record, error) {
	var filter attendance.RecordFilter

	if req.EmployeeCode != nil && *req.EmployeeCode != "" {
		emp, err := s.EmployeeRepository.GetByEmployeeCode(ctx, *req.EmployeeCode)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to resolve employee code: %w", err)
		}
		filter.EmployeeID = &emp.ID
	}

	if req.StartDate != nil && *req.StartDate != "" {
		start, _ := time.ParseInLocation("2006-01-02", *req.StartDate, s.loc)
		filter.StartDate = &start
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, _ := time.ParseInLocation("2006-01-02", *req.EndDate, s.loc)
		filter.EndDate = &end
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	return records, nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.ExportRequest) (*report.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := s.records(ctx, req)
	if err != nil {
		return nil, err
	}
	rows := BuildRows(records, s.loc)

	format := req.Format
	if format == "" {
		format = report.FormatCSV
	}

	var buf bytes.Buffer
	file := &report.ExportFile{
		Filename: "attendance-export." + string(format),
		RowCount: len(rows),
	}

	switch format {
	case report.FormatCSV:
		file.ContentType = "text/csv"
		err = WriteCSV(&buf, rows)
	case report.FormatXLSX:
		file.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = WriteXLSX(&buf, rows)
	default:
		return nil, fmt.Errorf("%w: %s", report.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	file.Content = buf.Bytes()
	return file, nil
}
