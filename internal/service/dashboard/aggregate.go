package dashboard

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// trendDays is the length of the weekly trend window, today included.
const trendDays = 7

// tally counts records per status. Every summary shape is built from it
// so all views bucket statuses the same way.
type tally struct {
	present, late, halfDay, absent int
}

func (t *tally) add(s attendance.Status) {
	switch s {
	case attendance.StatusPresent:
		t.present++
	case attendance.StatusLate:
		t.late++
	case attendance.StatusHalfDay:
		t.halfDay++
	case attendance.StatusAbsent:
		t.absent++
	}
}

func (t tally) departmentStats() dashboard.DepartmentStats {
	return dashboard.DepartmentStats{
		Present: t.present,
		Absent:  t.absent,
		Late:    t.late,
		HalfDay: t.halfDay,
	}
}

func sumHours(records []attendance.Record) float64 {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(rec.TotalHours)
	}
	return total.Round(2).InexactFloat64()
}

// MonthlySummary counts records by status. TotalDays is the number of
// records, so days without a record are not counted as absent.
func MonthlySummary(records []attendance.Record) dashboard.MonthlySummary {
	var counts tally
	for _, rec := range records {
		counts.add(rec.Status)
	}

	recordedDays := len(records)

	return dashboard.MonthlySummary{
		Present:    counts.present,
		Absent:     counts.absent,
		Late:       counts.late,
		HalfDay:    counts.halfDay,
		TotalHours: sumHours(records),
		TotalDays:  recordedDays,
	}
}

// OrgDailySnapshot groups roster members by their record for day.
// records may contain other days and non-roster employees; both are ignored.
func OrgDailySnapshot(day time.Time, records []attendance.Record, roster []employee.Employee) dashboard.DailyOrgSnapshot {
	dayKey := attendance.DateKey(day)

	byEmployee := make(map[string]attendance.Record, len(records))
	for _, rec := range records {
		if attendance.DateKey(rec.Date) == dayKey {
			byEmployee[rec.EmployeeID] = rec
		}
	}

	snapshot := dashboard.DailyOrgSnapshot{
		Date:       dayKey,
		Present:    []attendance.AttendanceResponse{},
		Absent:     []attendance.AttendanceResponse{},
		Late:       []attendance.AttendanceResponse{},
		HalfDay:    []attendance.AttendanceResponse{},
		CheckedIn:  []attendance.AttendanceResponse{},
		CheckedOut: []attendance.AttendanceResponse{},
	}

	for _, emp := range roster {
		rec, ok := byEmployee[emp.ID]
		if !ok {
			snapshot.Absent = append(snapshot.Absent, absentPlaceholder(day, emp))
			continue
		}

		withEmployee(&rec, emp)
		resp := attendance.NewAttendanceResponse(rec)

		switch rec.Status {
		case attendance.StatusPresent:
			snapshot.Present = append(snapshot.Present, resp)
		case attendance.StatusLate:
			snapshot.Late = append(snapshot.Late, resp)
		case attendance.StatusHalfDay:
			snapshot.HalfDay = append(snapshot.HalfDay, resp)
		case attendance.StatusAbsent:
			snapshot.Absent = append(snapshot.Absent, resp)
		}

		if rec.HasCheckedIn() {
			snapshot.CheckedIn = append(snapshot.CheckedIn, resp)
		}
		if rec.HasCheckedOut() {
			snapshot.CheckedOut = append(snapshot.CheckedOut, resp)
		}
	}

	return snapshot
}

func absentPlaceholder(day time.Time, emp employee.Employee) attendance.AttendanceResponse {
	rec := attendance.Record{
		EmployeeID: emp.ID,
		Date:       day,
		Status:     attendance.StatusAbsent,
		TotalHours: decimal.Zero,
	}
	withEmployee(&rec, emp)
	return attendance.NewAttendanceResponse(rec)
}

func withEmployee(rec *attendance.Record, emp employee.Employee) {
	code, name, email := emp.EmployeeCode, emp.Name, emp.Email
	rec.EmployeeCode = &code
	rec.EmployeeName = &name
	rec.EmployeeEmail = &email
	rec.Department = emp.Department
}

// WeeklyTrend returns one point per day for the seven days ending at
// today, oldest first. Absent is totalEmployees minus the days' attendees
// and is not clamped.
func WeeklyTrend(today time.Time, records []attendance.Record, totalEmployees int64) []dashboard.WeeklyTrendPoint {
	byDay := make(map[string]*tally, trendDays)
	for _, rec := range records {
		key := attendance.DateKey(rec.Date)
		if byDay[key] == nil {
			byDay[key] = &tally{}
		}
		byDay[key].add(rec.Status)
	}

	points := make([]dashboard.WeeklyTrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		key := attendance.DateKey(today.AddDate(0, 0, -i))

		var counts tally
		if c := byDay[key]; c != nil {
			counts = *c
		}

		points = append(points, dashboard.WeeklyTrendPoint{
			Date:    key,
			Present: counts.present,
			Late:    counts.late,
			HalfDay: counts.halfDay,
			Absent:  int(totalEmployees) - (counts.present + counts.late + counts.halfDay),
		})
	}

	return points
}

// DepartmentBreakdown counts records per department. The department comes
// from departmentOf, then the record's joined department, then NoDepartment.
func DepartmentBreakdown(records []attendance.Record, departmentOf map[string]string) map[string]dashboard.DepartmentStats {
	counts := make(map[string]*tally)
	for _, rec := range records {
		dept := departmentFor(rec, departmentOf)
		if counts[dept] == nil {
			counts[dept] = &tally{}
		}
		counts[dept].add(rec.Status)
	}

	breakdown := make(map[string]dashboard.DepartmentStats, len(counts))
	for dept, c := range counts {
		breakdown[dept] = c.departmentStats()
	}
	return breakdown
}

func departmentFor(rec attendance.Record, departmentOf map[string]string) string {
	if dept, ok := departmentOf[rec.EmployeeID]; ok {
		return dept
	}
	if rec.Department != nil && *rec.Department != "" {
		return *rec.Department
	}
	return employee.NoDepartment
}

// OrgSummary counts every record in the period across the organization.
func OrgSummary(records []attendance.Record, totalEmployees int64, departmentOf map[string]string) dashboard.OrgSummary {
	var counts tally
	for _, rec := range records {
		counts.add(rec.Status)
	}

	return dashboard.OrgSummary{
		TotalEmployees: totalEmployees,
		Present:        counts.present,
		Absent:         counts.absent,
		Late:           counts.late,
		HalfDay:        counts.halfDay,
		TotalHours:     sumHours(records),
		ByDepartment:   DepartmentBreakdown(records, departmentOf),
	}
}
