package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RecordFilter narrows a record listing. Nil fields are not applied.
type RecordFilter struct {
	EmployeeID *string
	StartDate  *time.Time // inclusive, day granularity
	EndDate    *time.Time // inclusive, day granularity
	Status     *Status
	SortAsc    bool // default newest first
}

// AttendanceRepository persists exactly one Record per (employee, day).
// Both transition writes are single conditional writes, so concurrent
// callers for the same day can never both succeed.
type AttendanceRepository interface {
	// CheckIn creates the day's record, or fills the check-in of an existing
	// record that has none. Returns ErrAlreadyCheckedIn when the record
	// already carries a check-in.
	CheckIn(ctx context.Context, record Record) (Record, error)

	// CheckOut stores the check-out, hours and final status on a record that
	// is checked in and not yet checked out. Returns ErrNotCheckedIn or
	// ErrAlreadyCheckedOut when that precondition does not hold.
	CheckOut(ctx context.Context, employeeID string, date time.Time, checkOut time.Time, status Status, hours decimal.Decimal) (Record, error)

	// GetByEmployeeAndDate returns nil, nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// List returns records matching filter with employee join fields populated.
	List(ctx context.Context, filter RecordFilter) ([]Record, error)
}
