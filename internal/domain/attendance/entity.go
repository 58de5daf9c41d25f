package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the outcome of an employee's working day.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
	StatusAbsent  Status = "absent"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPresent, StatusLate, StatusHalfDay, StatusAbsent}

// ParseStatus converts a raw string into a Status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPresent, StatusLate, StatusHalfDay, StatusAbsent:
		return Status(s), true
	}
	return "", false
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

// Record is one employee's attendance for one calendar day.
// (EmployeeID, Date) is the identity and never changes after creation.
type Record struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Status       Status
	TotalHours   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	EmployeeCode  *string
	EmployeeName  *string
	EmployeeEmail *string
	Department    *string
}

// HasCheckedIn reports whether the check-in half of the day is recorded.
func (r Record) HasCheckedIn() bool {
	return r.CheckInTime != nil
}

// HasCheckedOut reports whether the check-out half of the day is recorded.
func (r Record) HasCheckedOut() bool {
	return r.CheckOutTime != nil
}

// NormalizeDate truncates t to midnight in loc. The result is the day part
// of a record's identity.
func NormalizeDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DateKey formats the calendar day of t as YYYY-MM-DD without converting
// its location. Stores key records by it.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthRange returns the first and last calendar day of the given month.
func MonthRange(year, month int, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// In returns a copy of r with its timestamps expressed in loc.
func (r Record) In(loc *time.Location) Record {
	if r.CheckInTime != nil {
		in := r.CheckInTime.In(loc)
		r.CheckInTime = &in
	}
	if r.CheckOutTime != nil {
		out := r.CheckOutTime.In(loc)
		r.CheckOutTime = &out
	}
	return r
}
