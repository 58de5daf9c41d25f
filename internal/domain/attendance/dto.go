package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// TRANSITION DTOs
// ========================================

type CheckInResponse struct {
	CheckInTime string `json:"check_in_time"`
	Status      Status `json:"status"`
}

type CheckOutResponse struct {
	CheckOutTime string  `json:"check_out_time"`
	TotalHours   float64 `json:"total_hours"`
	Status       Status  `json:"status"`
}

type TodayStatusResponse struct {
	CheckedIn  bool                `json:"checked_in"`
	CheckedOut bool                `json:"checked_out"`
	Attendance *AttendanceResponse `json:"attendance"`
}

// ========================================
// RECORD DTOs
// ========================================

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeCode  *string `json:"employee_code,omitempty"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	EmployeeEmail *string `json:"employee_email,omitempty"`
	Department    *string `json:"department,omitempty"`
	Date          string  `json:"date"`
	CheckInTime   *string `json:"check_in_time,omitempty"`
	CheckOutTime  *string `json:"check_out_time,omitempty"`
	Status        Status  `json:"status"`
	TotalHours    float64 `json:"total_hours"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

type ListAttendanceResponse struct {
	TotalCount  int                  `json:"total_count"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// timePtrToString formats an optional timestamp as RFC3339.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

// NewAttendanceResponse maps a Record to its API shape.
func NewAttendanceResponse(rec Record) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeCode:  rec.EmployeeCode,
		EmployeeName:  rec.EmployeeName,
		EmployeeEmail: rec.EmployeeEmail,
		Department:    rec.Department,
		Date:          DateKey(rec.Date),
		CheckInTime:   timePtrToString(rec.CheckInTime),
		CheckOutTime:  timePtrToString(rec.CheckOutTime),
		Status:        rec.Status,
		TotalHours:    rec.TotalHours.InexactFloat64(),
	}
	if !rec.CreatedAt.IsZero() {
		resp.CreatedAt = rec.CreatedAt.Format(time.RFC3339)
	}
	if !rec.UpdatedAt.IsZero() {
		resp.UpdatedAt = rec.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

// NewAttendanceResponses maps a slice of records, never returning nil.
func NewAttendanceResponses(records []Record) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, NewAttendanceResponse(rec))
	}
	return responses
}

// ========================================
// FILTER DTOs
// ========================================

// PeriodFilter selects a calendar month. Month and Year are applied only
// when both are set.
type PeriodFilter struct {
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
}

func (f *PeriodFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && !validator.IsValidMonth(*f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year != nil && !validator.IsValidYear(*f.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1970 and 9999",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// IsSet reports whether the filter selects a month.
func (f PeriodFilter) IsSet() bool {
	return f.Month != nil && f.Year != nil
}

type AttendanceFilter struct {
	EmployeeCode *string `json:"employee_code,omitempty"`
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status       *string `json:"status,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	var hasStart, hasEnd bool

	if f.StartDate != nil && *f.StartDate != "" {
		if start, hasStart = validator.IsValidDate(*f.StartDate); !hasStart {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if end, hasEnd = validator.IsValidDate(*f.EndDate); !hasEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if hasStart && hasEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if f.Status != nil && *f.Status != "" {
		if _, ok := ParseStatus(*f.Status); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: present, late, half-day, absent",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
