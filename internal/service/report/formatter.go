package report

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
)

const (
	exportDateLayout = "02/01/2006"
	exportTimeLayout = "03:04 PM"
)

// DisplayStatus collapses a status into the two values shown in exports.
// Late and half-day days were attended, so they display as Present.
func DisplayStatus(s attendance.Status) string {
	switch s {
	case attendance.StatusPresent, attendance.StatusLate, attendance.StatusHalfDay:
		return "Present"
	case attendance.StatusAbsent:
		return "Absent"
	}
	return "Absent"
}

// Remarks carries the detail DisplayStatus drops.
func Remarks(s attendance.Status) string {
	switch s {
	case attendance.StatusLate:
		return "Late arrival"
	case attendance.StatusHalfDay:
		return "Half day"
	case attendance.StatusPresent:
		return "Full day"
	case attendance.StatusAbsent:
		return "-"
	}
	return "-"
}

func clockTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format(exportTimeLayout)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// BuildRows formats records for export, keeping their order. Times are
// rendered in loc.
func BuildRows(records []attendance.Record, loc *time.Location) []report.ExportRow {
	if loc == nil {
		loc = time.Local
	}

	rows := make([]report.ExportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, report.ExportRow{
			Date:       rec.Date.Format(exportDateLayout),
			EmployeeID: deref(rec.EmployeeCode),
			Name:       deref(rec.EmployeeName),
			Email:      deref(rec.EmployeeEmail),
			Department: deref(rec.Department),
			CheckIn:    clockTime(rec.CheckInTime, loc),
			CheckOut:   clockTime(rec.CheckOutTime, loc),
			Status:     DisplayStatus(rec.Status),
			Hours:      rec.TotalHours.StringFixed(2) + "h",
			Remarks:    Remarks(rec.Status),
		})
	}
	return rows
}
