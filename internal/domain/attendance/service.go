package attendance

import (
	"context"
)

// AttendanceService drives the per-day check-in/check-out state machine
// and the record read paths.
type AttendanceService interface {
	// CheckIn records the start of the employee's day
	CheckIn(ctx context.Context, employeeID string) (CheckInResponse, error)

	// CheckOut records the end of the employee's day
	CheckOut(ctx context.Context, employeeID string) (CheckOutResponse, error)

	// TodayStatus reports where the employee is in today's state machine
	TodayStatus(ctx context.Context, employeeID string) (TodayStatusResponse, error)

	// History lists one employee's records, optionally limited to a month
	History(ctx context.Context, employeeID string, period PeriodFilter) ([]AttendanceResponse, error)

	// EmployeeHistory lists another employee's records (manager)
	EmployeeHistory(ctx context.Context, employeeID string, period PeriodFilter) ([]AttendanceResponse, error)

	// ListAll lists records across employees (manager)
	ListAll(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
