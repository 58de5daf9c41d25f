package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*60*60)

type fixture struct {
	svc     dashboard.DashboardService
	records attendance.AttendanceRepository
	roster  *memory.EmployeeRepository
}

func newFixture(t *testing.T, now time.Time) fixture {
	t.Helper()

	eng := "Engineering"
	roster := memory.NewEmployeeRepository(
		employee.Employee{ID: "e1", EmployeeCode: "EMP001", Name: "Alice", Email: "alice@example.com", Department: &eng, Role: user.RoleEmployee},
		employee.Employee{ID: "e2", EmployeeCode: "EMP002", Name: "Bob", Email: "bob@example.com", Role: user.RoleEmployee},
		employee.Employee{ID: "e3", EmployeeCode: "EMP003", Name: "Carol", Email: "carol@example.com", Department: &eng, Role: user.RoleEmployee},
		employee.Employee{ID: "m1", EmployeeCode: "MGR001", Name: "Maya", Email: "maya@example.com", Department: &eng, Role: user.RoleManager},
	)
	records := memory.NewAttendanceRepository(roster)

	return fixture{
		svc:     NewDashboardService(records, roster, wib, WithClock(func() time.Time { return now })),
		records: records,
		roster:  roster,
	}
}

// attend stores a completed or open day for employeeID.
func (f fixture) attend(t *testing.T, employeeID string, day time.Time, status attendance.Status, hours float64) {
	t.Helper()
	ctx := context.Background()

	in := day.Add(9 * time.Hour)
	_, err := f.records.CheckIn(ctx, attendance.Record{EmployeeID: employeeID, Date: day, CheckInTime: &in, Status: status})
	require.NoError(t, err)

	if hours > 0 {
		out := in.Add(time.Duration(hours * float64(time.Hour)))
		_, err = f.records.CheckOut(ctx, employeeID, day, out, status, decimal.NewFromFloat(hours))
		require.NoError(t, err)
	}
}

func wibDay(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 0, 0, 0, 0, wib)
}

func intPtr(i int) *int { return &i }

func TestDashboardService_MonthlySummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, wibDay(time.March, 20).Add(10*time.Hour))

	f.attend(t, "e1", wibDay(time.February, 27), attendance.StatusPresent, 8)
	f.attend(t, "e1", wibDay(time.March, 3), attendance.StatusPresent, 8.5)
	f.attend(t, "e1", wibDay(time.March, 4), attendance.StatusLate, 7)
	f.attend(t, "e1", wibDay(time.March, 5), attendance.StatusPresent, 0)
	f.attend(t, "e2", wibDay(time.March, 3), attendance.StatusPresent, 8)

	// Defaults to the current month.
	summary, err := f.svc.MonthlySummary(ctx, "e1", attendance.PeriodFilter{})
	require.NoError(t, err)
	assert.Equal(t, &dashboard.MonthlySummary{Present: 2, Late: 1, TotalHours: 15.5, TotalDays: 3}, summary)

	feb, err := f.svc.MonthlySummary(ctx, "e1", attendance.PeriodFilter{Month: intPtr(2), Year: intPtr(2025)})
	require.NoError(t, err)
	assert.Equal(t, 1, feb.TotalDays)

	empty, err := f.svc.MonthlySummary(ctx, "e3", attendance.PeriodFilter{})
	require.NoError(t, err)
	assert.Equal(t, &dashboard.MonthlySummary{}, empty)

	_, err = f.svc.MonthlySummary(ctx, "e1", attendance.PeriodFilter{Month: intPtr(0)})
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestDashboardService_OrgSummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, wibDay(time.March, 20).Add(10*time.Hour))

	f.attend(t, "e1", wibDay(time.March, 3), attendance.StatusPresent, 8)
	f.attend(t, "e2", wibDay(time.March, 3), attendance.StatusLate, 6)
	f.attend(t, "e3", wibDay(time.March, 4), attendance.StatusHalfDay, 3)
	f.attend(t, "m1", wibDay(time.March, 4), attendance.StatusPresent, 8)

	summary, err := f.svc.OrgSummary(ctx, attendance.PeriodFilter{})
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.TotalEmployees)
	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 1, summary.HalfDay)
	assert.Equal(t, 25.0, summary.TotalHours)
	assert.Equal(t, map[string]dashboard.DepartmentStats{
		"Engineering":         {Present: 2, HalfDay: 1},
		employee.NoDepartment: {Late: 1},
	}, summary.ByDepartment)
}

func TestDashboardService_OrgDailySnapshot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, wibDay(time.March, 10).Add(11*time.Hour))

	f.attend(t, "e1", wibDay(time.March, 10), attendance.StatusPresent, 0)
	f.attend(t, "e2", wibDay(time.March, 9), attendance.StatusLate, 8)

	today, err := f.svc.OrgDailySnapshot(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", today.Date)
	assert.Len(t, today.Present, 1)
	assert.Len(t, today.Absent, 2)
	assert.Len(t, today.CheckedIn, 1)
	assert.Empty(t, today.CheckedOut)

	yesterday, err := f.svc.OrgDailySnapshot(ctx, "2025-03-09")
	require.NoError(t, err)
	assert.Len(t, yesterday.Late, 1)
	assert.Len(t, yesterday.CheckedOut, 1)
	assert.Len(t, yesterday.Absent, 2)

	_, err = f.svc.OrgDailySnapshot(ctx, "09-03-2025")
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "date", verrs[0].Field)
}

func TestDashboardService_EmployeeDashboard(t *testing.T) {
	ctx := context.Background()
	now := wibDay(time.March, 10).Add(9*time.Hour + 45*time.Minute)
	f := newFixture(t, now)

	for i := 1; i <= 9; i++ {
		f.attend(t, "e1", wibDay(time.March, 10).AddDate(0, 0, -i), attendance.StatusPresent, 8)
	}
	f.attend(t, "e1", wibDay(time.March, 10), attendance.StatusLate, 0)

	dash, err := f.svc.EmployeeDashboard(ctx, "e1")
	require.NoError(t, err)

	assert.True(t, dash.TodayStatus.CheckedIn)
	assert.False(t, dash.TodayStatus.CheckedOut)
	require.NotNil(t, dash.TodayStatus.Status)
	assert.Equal(t, attendance.StatusLate, *dash.TodayStatus.Status)
	require.NotNil(t, dash.TodayStatus.CheckInTime)
	assert.Equal(t, "2025-03-10T09:00:00+07:00", *dash.TodayStatus.CheckInTime)

	assert.Equal(t, 10, dash.MonthlySummary.TotalDays)
	assert.Equal(t, 9, dash.MonthlySummary.Present)
	assert.Equal(t, 1, dash.MonthlySummary.Late)

	require.Len(t, dash.RecentAttendance, 7)
	assert.Equal(t, "2025-03-10", dash.RecentAttendance[0].Date)
	assert.Equal(t, "2025-03-04", dash.RecentAttendance[6].Date)
}

func TestDashboardService_EmployeeDashboard_NoRecords(t *testing.T) {
	f := newFixture(t, wibDay(time.March, 10).Add(8*time.Hour))

	dash, err := f.svc.EmployeeDashboard(context.Background(), "e2")
	require.NoError(t, err)
	assert.False(t, dash.TodayStatus.CheckedIn)
	assert.Nil(t, dash.TodayStatus.Status)
	assert.NotNil(t, dash.RecentAttendance)
	assert.Empty(t, dash.RecentAttendance)
}

func TestDashboardService_ManagerDashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, wibDay(time.March, 10).Add(12*time.Hour))

	f.attend(t, "e1", wibDay(time.March, 10), attendance.StatusPresent, 0)
	f.attend(t, "e2", wibDay(time.March, 10), attendance.StatusLate, 0)
	f.attend(t, "e1", wibDay(time.March, 9), attendance.StatusPresent, 8)
	f.attend(t, "e3", wibDay(time.March, 4), attendance.StatusHalfDay, 2)
	f.attend(t, "e3", wibDay(time.February, 28), attendance.StatusPresent, 8)

	dash, err := f.svc.ManagerDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), dash.TotalEmployees)
	assert.Equal(t, 1, dash.TodayStats.Present)
	assert.Equal(t, 1, dash.TodayStats.Late)
	assert.Equal(t, 1, dash.TodayStats.Absent)
	assert.Len(t, dash.TodayStats.CheckedIn, 2)
	assert.Empty(t, dash.TodayStats.CheckedOut)

	require.Len(t, dash.WeeklyTrend, 7)
	assert.Equal(t, dashboard.WeeklyTrendPoint{Date: "2025-03-04", HalfDay: 1, Absent: 2}, dash.WeeklyTrend[0])
	assert.Equal(t, dashboard.WeeklyTrendPoint{Date: "2025-03-09", Present: 1, Absent: 2}, dash.WeeklyTrend[5])
	assert.Equal(t, dashboard.WeeklyTrendPoint{Date: "2025-03-10", Present: 1, Late: 1, Absent: 1}, dash.WeeklyTrend[6])

	assert.Equal(t, map[string]dashboard.DepartmentStats{
		"Engineering":         {Present: 2, HalfDay: 1},
		employee.NoDepartment: {Late: 1},
	}, dash.DepartmentStats)

	require.Len(t, dash.AbsentToday, 1)
	assert.Equal(t, dashboard.AbsentEmployee{
		EmployeeID:   "e3",
		EmployeeCode: "EMP003",
		Name:         "Carol",
		Email:        "carol@example.com",
		Department:   "Engineering",
	}, dash.AbsentToday[0])
}

func TestDashboardService_CancelledContext(t *testing.T) {
	f := newFixture(t, wibDay(time.March, 10))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.ManagerDashboard(ctx)
	assert.ErrorIs(t, err, attendance.ErrStoreUnavailable)
}
