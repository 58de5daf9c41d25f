package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
	a.status, a.total_hours, a.created_at, a.updated_at`

type attendanceRepository struct {
	db *database.DB
}

func scanAttendance(row pgx.Row, rec *attendance.Record) error {
	return row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckInTime, &rec.CheckOutTime,
		&rec.Status, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt,
	)
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", attendance.ErrStoreUnavailable, op, err)
}

// CheckIn implements attendance.AttendanceRepository.
// The insert and the fill of an empty check-in are one statement. The
// WHERE on the conflict branch makes a second check-in return no row.
func (a *attendanceRepository) CheckIn(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendances AS a (
			id, employee_id, date, check_in_time, status, total_hours
		) VALUES (
			$1, $2, $3::date, $4, $5, 0
		)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET check_in_time = EXCLUDED.check_in_time,
			status = EXCLUDED.status,
			updated_at = NOW()
		WHERE a.check_in_time IS NULL
		RETURNING ` + attendanceColumns

	var created attendance.Record
	err = scanAttendance(q.QueryRow(ctx, query,
		id.String(),
		record.EmployeeID,
		attendance.DateKey(record.Date),
		record.CheckInTime,
		record.Status,
	), &created)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, storeErr("check in", err)
	}

	return created, nil
}

// CheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) CheckOut(ctx context.Context, employeeID string, date time.Time, checkOut time.Time, status attendance.Status, hours decimal.Decimal) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances AS a
		SET check_out_time = $3,
			status = $4,
			total_hours = $5,
			updated_at = NOW()
		WHERE a.employee_id = $1
		  AND a.date = $2::date
		  AND a.check_in_time IS NOT NULL
		  AND a.check_out_time IS NULL
		RETURNING ` + attendanceColumns

	var updated attendance.Record
	err := scanAttendance(q.QueryRow(ctx, query,
		employeeID,
		attendance.DateKey(date),
		checkOut,
		status,
		hours,
	), &updated)

	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Record{}, storeErr("check out", err)
	}

	// Lost the conditional write; report which precondition failed.
	current, err := a.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.Record{}, err
	}
	if current == nil || !current.HasCheckedIn() {
		return attendance.Record{}, attendance.ErrNotCheckedIn
	}
	return attendance.Record{}, attendance.ErrAlreadyCheckedOut
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date = $2::date
		LIMIT 1
	`

	var rec attendance.Record
	err := scanAttendance(q.QueryRow(ctx, query, employeeID, attendance.DateKey(date)), &rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get attendance by employee and date", err)
	}

	return &rec, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	where := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND a.date >= $%d::date", argIdx)
		args = append(args, attendance.DateKey(*filter.StartDate))
		argIdx++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND a.date <= $%d::date", argIdx)
		args = append(args, attendance.DateKey(*filter.EndDate))
		argIdx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	sortOrder := "DESC"
	if filter.SortAsc {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s,
			e.employee_code, e.name, e.email, e.department
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date %s, e.employee_code ASC
	`, attendanceColumns, where, sortOrder)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list attendances", err)
	}
	defer rows.Close()

	records := []attendance.Record{}
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckInTime, &rec.CheckOutTime,
			&rec.Status, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeCode, &rec.EmployeeName, &rec.EmployeeEmail, &rec.Department,
		)
		if err != nil {
			return nil, storeErr("scan attendance", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate attendances", err)
	}

	return records, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{
		db: db,
	}
}
