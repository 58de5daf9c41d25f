package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	policy attendance.TimeWindowPolicy
	loc    *time.Location
	now    func() time.Time
}

// Option configures AttendanceServiceImpl.
type Option func(*AttendanceServiceImpl)

// WithClock replaces time.Now as the source of check-in and check-out times.
func WithClock(now func() time.Time) Option {
	return func(a *AttendanceServiceImpl) {
		a.now = now
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.CheckInResponse, error) {
	if _, err := a.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := a.now().In(a.loc)
	today := attendance.NormalizeDate(now, a.loc)

	created, err := a.AttendanceRepository.CheckIn(ctx, attendance.Record{
		EmployeeID:  employeeID,
		Date:        today,
		CheckInTime: &now,
		Status:      attendance.DeriveCheckInStatus(now, a.policy.LateThreshold),
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.CheckInResponse{}, err
		}
		return attendance.CheckInResponse{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	slog.Info("Attendance check-in recorded",
		"employee_id", employeeID,
		"date", attendance.DateKey(today),
		"status", created.Status,
	)

	return attendance.CheckInResponse{
		CheckInTime: created.CheckInTime.In(a.loc).Format(time.RFC3339),
		Status:      created.Status,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.CheckOutResponse, error) {
	now := a.now().In(a.loc)
	today := attendance.NormalizeDate(now, a.loc)

	current, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if current == nil || !current.HasCheckedIn() {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}
	if current.HasCheckedOut() {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	checkOut := now
	if checkOut.Before(*current.CheckInTime) {
		checkOut = current.CheckInTime.In(a.loc)
	}
	status, hours := attendance.DeriveCheckOutStatus(*current.CheckInTime, checkOut, current.Status, a.policy.HalfDayHours)

	updated, err := a.AttendanceRepository.CheckOut(ctx, employeeID, today, checkOut, status, hours)
	if err != nil {
		if errors.Is(err, attendance.ErrNotCheckedIn) || errors.Is(err, attendance.ErrAlreadyCheckedOut) {
			return attendance.CheckOutResponse{}, err
		}
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to record check-out: %w", err)
	}

	slog.Info("Attendance check-out recorded",
		"employee_id", employeeID,
		"date", attendance.DateKey(today),
		"status", updated.Status,
		"total_hours", updated.TotalHours.StringFixed(2),
	)

	return attendance.CheckOutResponse{
		CheckOutTime: updated.CheckOutTime.In(a.loc).Format(time.RFC3339),
		TotalHours:   updated.TotalHours.InexactFloat64(),
		Status:       updated.Status,
	}, nil
}

// TodayStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TodayStatus(ctx context.Context, employeeID string) (attendance.TodayStatusResponse, error) {
	today := attendance.NormalizeDate(a.now(), a.loc)

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if rec == nil {
		return attendance.TodayStatusResponse{}, nil
	}

	resp := attendance.NewAttendanceResponse(rec.In(a.loc))
	return attendance.TodayStatusResponse{
		CheckedIn:  rec.HasCheckedIn(),
		CheckedOut: rec.HasCheckedOut(),
		Attendance: &resp,
	}, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, employeeID string, period attendance.PeriodFilter) ([]attendance.AttendanceResponse, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	filter := attendance.RecordFilter{EmployeeID: &employeeID}
	if period.IsSet() {
		start, end := attendance.MonthRange(*period.Year, *period.Month, a.loc)
		filter.StartDate = &start
		filter.EndDate = &end
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	return a.responses(records), nil
}

// EmployeeHistory implements attendance.AttendanceService.
// An ID that cannot name an employee yields an empty history.
func (a *AttendanceServiceImpl) EmployeeHistory(ctx context.Context, employeeID string, period attendance.PeriodFilter) ([]attendance.AttendanceResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		if err := period.Validate(); err != nil {
			return nil, err
		}
		return []attendance.AttendanceResponse{}, nil
	}
	return a.History(ctx, employeeID, period)
}

// ListAll implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAll(ctx context.Context, req attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	var filter attendance.RecordFilter

	if req.EmployeeCode != nil && *req.EmployeeCode != "" {
		emp, err := a.EmployeeRepository.GetByEmployeeCode(ctx, *req.EmployeeCode)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return attendance.ListAttendanceResponse{Attendances: []attendance.AttendanceResponse{}}, nil
			}
			return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to resolve employee code: %w", err)
		}
		filter.EmployeeID = &emp.ID
	}

	if req.StartDate != nil && *req.StartDate != "" {
		start, _ := time.ParseInLocation("2006-01-02", *req.StartDate, a.loc)
		filter.StartDate = &start
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, _ := time.ParseInLocation("2006-01-02", *req.EndDate, a.loc)
		filter.EndDate = &end
	}
	if req.Status != nil && *req.Status != "" {
		status := attendance.Status(*req.Status)
		filter.Status = &status
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  len(records),
		Attendances: a.responses(records),
	}, nil
}

func (a *AttendanceServiceImpl) responses(records []attendance.Record) []attendance.AttendanceResponse {
	localized := make([]attendance.Record, len(records))
	for i, rec := range records {
		localized[i] = rec.In(a.loc)
	}
	return attendance.NewAttendanceResponses(localized)
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policy attendance.TimeWindowPolicy,
	loc *time.Location,
	opts ...Option,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.Local
	}
	a := &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		policy:               policy,
		loc:                  loc,
		now:                  time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
