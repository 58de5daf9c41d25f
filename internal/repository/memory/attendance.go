// Package memory provides in-process repositories for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type attendanceRepository struct {
	mu      sync.Mutex
	now     func() time.Time
	records map[string]attendance.Record
	roster  *EmployeeRepository
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + attendance.DateKey(date)
}

// NewAttendanceRepository returns an attendance store keyed by
// (employee, day). roster, when set, fills the employee join fields of
// listed records.
func NewAttendanceRepository(roster *EmployeeRepository) attendance.AttendanceRepository {
	return &attendanceRepository{
		now:     time.Now,
		records: make(map[string]attendance.Record),
		roster:  roster,
	}
}

// CheckIn implements attendance.AttendanceRepository.
func (r *attendanceRepository) CheckIn(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	if err := ctx.Err(); err != nil {
		return attendance.Record{}, fmt.Errorf("%w: %w", attendance.ErrStoreUnavailable, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := recordKey(record.EmployeeID, record.Date)
	now := r.now()

	existing, ok := r.records[key]
	if ok {
		if existing.HasCheckedIn() {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		existing.CheckInTime = copyTime(record.CheckInTime)
		existing.Status = record.Status
		existing.UpdatedAt = now
		r.records[key] = existing
		return existing, nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	created := attendance.Record{
		ID:          id.String(),
		EmployeeID:  record.EmployeeID,
		Date:        record.Date,
		CheckInTime: copyTime(record.CheckInTime),
		Status:      record.Status,
		TotalHours:  decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.records[key] = created
	return created, nil
}

// CheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) CheckOut(ctx context.Context, employeeID string, date time.Time, checkOut time.Time, status attendance.Status, hours decimal.Decimal) (attendance.Record, error) {
	if err := ctx.Err(); err != nil {
		return attendance.Record{}, fmt.Errorf("%w: %w", attendance.ErrStoreUnavailable, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := recordKey(employeeID, date)
	rec, ok := r.records[key]
	if !ok || !rec.HasCheckedIn() {
		return attendance.Record{}, attendance.ErrNotCheckedIn
	}
	if rec.HasCheckedOut() {
		return attendance.Record{}, attendance.ErrAlreadyCheckedOut
	}

	rec.CheckOutTime = &checkOut
	rec.Status = status
	rec.TotalHours = hours
	rec.UpdatedAt = r.now()
	r.records[key] = rec
	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", attendance.ErrStoreUnavailable, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[recordKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", attendance.ErrStoreUnavailable, err)
	}

	r.mu.Lock()
	matched := make([]attendance.Record, 0, len(r.records))
	for _, rec := range r.records {
		if matches(rec, filter) {
			matched = append(matched, rec)
		}
	}
	r.mu.Unlock()

	for i := range matched {
		r.join(ctx, &matched[i])
	}

	sort.Slice(matched, func(i, j int) bool {
		di, dj := attendance.DateKey(matched[i].Date), attendance.DateKey(matched[j].Date)
		if di != dj {
			if filter.SortAsc {
				return di < dj
			}
			return di > dj
		}
		return codeOf(matched[i]) < codeOf(matched[j])
	})

	return matched, nil
}

func matches(rec attendance.Record, filter attendance.RecordFilter) bool {
	if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
		return false
	}
	day := attendance.DateKey(rec.Date)
	if filter.StartDate != nil && day < attendance.DateKey(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && day > attendance.DateKey(*filter.EndDate) {
		return false
	}
	if filter.Status != nil && rec.Status != *filter.Status {
		return false
	}
	return true
}

func (r *attendanceRepository) join(ctx context.Context, rec *attendance.Record) {
	if r.roster == nil {
		return
	}
	emp, err := r.roster.GetByID(ctx, rec.EmployeeID)
	if err != nil {
		return
	}
	rec.EmployeeCode = &emp.EmployeeCode
	rec.EmployeeName = &emp.Name
	rec.EmployeeEmail = &emp.Email
	rec.Department = emp.Department
}

func codeOf(rec attendance.Record) string {
	if rec.EmployeeCode == nil {
		return rec.EmployeeID
	}
	return *rec.EmployeeCode
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
