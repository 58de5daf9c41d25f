package report

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var SupportedFormats = []string{string(FormatCSV), string(FormatXLSX)}

// ExportRequest selects the records of an attendance export. An unknown
// employee code exports nothing.
type ExportRequest struct {
	EmployeeCode *string `json:"employee_code,omitempty"`
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Format       Format  `json:"format"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	filter := r.Filter()
	if err := filter.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, verrs...)
		}
	}

	if r.Format != "" && !validator.IsInSlice(string(r.Format), SupportedFormats) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of: csv, xlsx",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Filter returns the record listing an export reads.
func (r ExportRequest) Filter() attendance.AttendanceFilter {
	return attendance.AttendanceFilter{
		EmployeeCode: r.EmployeeCode,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
	}
}

// ExportRow is one line of an attendance export, already formatted.
type ExportRow struct {
	Date       string // dd/mm/yyyy
	EmployeeID string // employee code
	Name       string
	Email      string
	Department string
	CheckIn    string // hh:mm AM/PM
	CheckOut   string // hh:mm AM/PM
	Status     string // Present | Absent
	Hours      string // 8.50h
	Remarks    string
}

// Columns is the export header in column order.
var Columns = []string{
	"Date", "Employee ID", "Name", "Email", "Department",
	"Check In", "Check Out", "Status", "Hours", "Remarks",
}

// Values returns the row in Columns order.
func (r ExportRow) Values() []string {
	return []string{
		r.Date, r.EmployeeID, r.Name, r.Email, r.Department,
		r.CheckIn, r.CheckOut, r.Status, r.Hours, r.Remarks,
	}
}

// ExportFile is a rendered export ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
	RowCount    int
}
