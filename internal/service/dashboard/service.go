package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	loc *time.Location
	now func() time.Time
}

// Option configures DashboardServiceImpl.
type Option func(*DashboardServiceImpl)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *DashboardServiceImpl) {
		s.now = now
	}
}

func NewDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
	opts ...Option,
) dashboard.DashboardService {
	if loc == nil {
		loc = time.Local
	}
	s := &DashboardServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		loc:                  loc,
		now:                  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DashboardServiceImpl) today() time.Time {
	return attendance.NormalizeDate(s.now(), s.loc)
}

// monthRange resolves a period filter, defaulting missing parts to the current month
func (s *DashboardServiceImpl) monthRange(period attendance.PeriodFilter) (time.Time, time.Time, error) {
	if err := period.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}

	today := s.today()
	year, month := today.Year(), int(today.Month())
	if period.Year != nil {
		year = *period.Year
	}
	if period.Month != nil {
		month = *period.Month
	}

	start, end := attendance.MonthRange(year, month, s.loc)
	return start, end, nil
}

// parseDate parses YYYY-MM-DD in the service location, defaults to today
func (s *DashboardServiceImpl) parseDate(date string) (time.Time, error) {
	if date == "" {
		return s.today(), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", date, s.loc)
	if err != nil {
		return time.Time{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	return parsed, nil
}

func (s *DashboardServiceImpl) listBetween(ctx context.Context, start, end time.Time, employeeID *string) ([]attendance.Record, error) {
	records, err := s.AttendanceRepository.List(ctx, attendance.RecordFilter{
		EmployeeID: employeeID,
		StartDate:  &start,
		EndDate:    &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	return records, nil
}

func (s *DashboardServiceImpl) roster(ctx context.Context) ([]employee.Employee, error) {
	roster, err := s.EmployeeRepository.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	return roster, nil
}

// MonthlySummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) MonthlySummary(ctx context.Context, employeeID string, period attendance.PeriodFilter) (*dashboard.MonthlySummary, error) {
	start, end, err := s.monthRange(period)
	if err != nil {
		return nil, err
	}

	records, err := s.listBetween(ctx, start, end, &employeeID)
	if err != nil {
		return nil, err
	}

	summary := MonthlySummary(records)
	return &summary, nil
}

// OrgSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) OrgSummary(ctx context.Context, period attendance.PeriodFilter) (*dashboard.OrgSummary, error) {
	start, end, err := s.monthRange(period)
	if err != nil {
		return nil, err
	}

	var (
		records []attendance.Record
		roster  []employee.Employee
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		records, err = s.listBetween(gCtx, start, end, nil)
		return err
	})

	g.Go(func() error {
		var err error
		roster, err = s.roster(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := OrgSummary(records, int64(len(roster)), employee.DepartmentIndex(roster))
	return &summary, nil
}

// OrgDailySnapshot implements dashboard.DashboardService.
func (s *DashboardServiceImpl) OrgDailySnapshot(ctx context.Context, date string) (*dashboard.DailyOrgSnapshot, error) {
	day, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}

	var (
		records []attendance.Record
		roster  []employee.Employee
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		records, err = s.listBetween(gCtx, day, day, nil)
		return err
	})

	g.Go(func() error {
		var err error
		roster, err = s.roster(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := OrgDailySnapshot(day, records, roster)
	return &snapshot, nil
}

// EmployeeDashboard implements dashboard.DashboardService.
// 3 goroutines: today's record, this month, the last 7 days.
func (s *DashboardServiceImpl) EmployeeDashboard(ctx context.Context, employeeID string) (*dashboard.EmployeeDashboard, error) {
	today := s.today()
	monthStart, monthEnd := attendance.MonthRange(today.Year(), int(today.Month()), s.loc)
	weekStart := today.AddDate(0, 0, -(trendDays - 1))

	var (
		todayRecord *attendance.Record
		monthly     []attendance.Record
		recent      []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rec, err := s.AttendanceRepository.GetByEmployeeAndDate(gCtx, employeeID, today)
		if err != nil {
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}
		todayRecord = rec
		return nil
	})

	g.Go(func() error {
		var err error
		monthly, err = s.listBetween(gCtx, monthStart, monthEnd, &employeeID)
		return err
	})

	g.Go(func() error {
		var err error
		recent, err = s.listBetween(gCtx, weekStart, today, &employeeID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var status dashboard.TodayStatus
	if todayRecord != nil {
		resp := attendance.NewAttendanceResponse(todayRecord.In(s.loc))
		status = dashboard.TodayStatus{
			CheckedIn:    todayRecord.HasCheckedIn(),
			CheckedOut:   todayRecord.HasCheckedOut(),
			Status:       &todayRecord.Status,
			CheckInTime:  resp.CheckInTime,
			CheckOutTime: resp.CheckOutTime,
		}
	}

	if len(recent) > trendDays {
		recent = recent[:trendDays]
	}
	for i := range recent {
		recent[i] = recent[i].In(s.loc)
	}

	return &dashboard.EmployeeDashboard{
		TodayStatus:      status,
		MonthlySummary:   MonthlySummary(monthly),
		RecentAttendance: attendance.NewAttendanceResponses(recent),
	}, nil
}

// ManagerDashboard implements dashboard.DashboardService.
// 4 goroutines: roster, today, the last 7 days, this month.
func (s *DashboardServiceImpl) ManagerDashboard(ctx context.Context) (*dashboard.ManagerDashboard, error) {
	today := s.today()
	monthStart, monthEnd := attendance.MonthRange(today.Year(), int(today.Month()), s.loc)
	weekStart := today.AddDate(0, 0, -(trendDays - 1))

	var (
		roster  []employee.Employee
		daily   []attendance.Record
		weekly  []attendance.Record
		monthly []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		roster, err = s.roster(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		daily, err = s.listBetween(gCtx, today, today, nil)
		return err
	})

	g.Go(func() error {
		var err error
		weekly, err = s.listBetween(gCtx, weekStart, today, nil)
		return err
	})

	g.Go(func() error {
		var err error
		monthly, err = s.listBetween(gCtx, monthStart, monthEnd, nil)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	totalEmployees := int64(len(roster))
	snapshot := OrgDailySnapshot(today, daily, roster)

	checkedIn := make(map[string]bool, len(daily))
	for _, rec := range daily {
		if rec.HasCheckedIn() {
			checkedIn[rec.EmployeeID] = true
		}
	}
	absentToday := []dashboard.AbsentEmployee{}
	for _, emp := range roster {
		if checkedIn[emp.ID] {
			continue
		}
		absentToday = append(absentToday, dashboard.AbsentEmployee{
			EmployeeID:   emp.ID,
			EmployeeCode: emp.EmployeeCode,
			Name:         emp.Name,
			Email:        emp.Email,
			Department:   emp.DepartmentName(),
		})
	}

	return &dashboard.ManagerDashboard{
		TotalEmployees: totalEmployees,
		TodayStats: dashboard.TodayStats{
			Present:    len(snapshot.Present),
			Absent:     len(snapshot.Absent),
			Late:       len(snapshot.Late),
			HalfDay:    len(snapshot.HalfDay),
			CheckedIn:  snapshot.CheckedIn,
			CheckedOut: snapshot.CheckedOut,
		},
		WeeklyTrend:     WeeklyTrend(today, weekly, totalEmployees),
		DepartmentStats: DepartmentBreakdown(monthly, employee.DepartmentIndex(roster)),
		AbsentToday:     absentToday,
	}, nil
}

