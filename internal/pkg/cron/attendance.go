package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

// staleLookbackDays is how many closed days the stale scan covers.
const staleLookbackDays = 7

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location
	now            func() time.Time
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, loc *time.Location, now func() time.Time) *AttendanceJobs {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		loc:            loc,
		now:            now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob(Job{
		Name:     "report_stale_check_ins",
		Interval: interval,
		Timeout:  time.Minute,
		Fn:       j.ReportStaleCheckIns,
	})
}

// StaleCheckIns returns records from the previous days that were checked
// in but never checked out. Today's open records are not stale.
func (j *AttendanceJobs) StaleCheckIns(ctx context.Context) ([]attendance.Record, error) {
	today := attendance.NormalizeDate(j.now(), j.loc)
	start := today.AddDate(0, 0, -staleLookbackDays)
	end := today.AddDate(0, 0, -1)

	records, err := j.attendanceRepo.List(ctx, attendance.RecordFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	stale := make([]attendance.Record, 0)
	for _, rec := range records {
		if rec.HasCheckedIn() && !rec.HasCheckedOut() {
			stale = append(stale, rec)
		}
	}
	return stale, nil
}

// ReportStaleCheckIns logs every stale open record. Records are left
// unchanged; the day stays at its check-in status.
func (j *AttendanceJobs) ReportStaleCheckIns(ctx context.Context) error {
	stale, err := j.StaleCheckIns(ctx)
	if err != nil {
		return err
	}

	if len(stale) == 0 {
		slog.Debug("Cron: No stale check-ins found")
		return nil
	}

	for _, rec := range stale {
		slog.Warn("Cron: Check-in was never closed",
			"employee_id", rec.EmployeeID,
			"date", attendance.DateKey(rec.Date),
			"status", rec.Status,
		)
	}
	slog.Info("Cron: Stale check-in scan completed", "stale_count", len(stale))
	return nil
}
