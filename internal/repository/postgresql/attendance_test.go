package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
	testDBErr  error
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn)
		if testDBErr == nil {
			testDBErr = postgresql.EnsureSchema(context.Background(), testDB)
		}
	})
	require.NoError(t, testDBErr)

	ctx := context.Background()
	_, err := testDB.Exec(ctx, "TRUNCATE TABLE attendances, employees CASCADE")
	require.NoError(t, err)

	return testDB
}

func createTestEmployee(t *testing.T, db *database.DB, code string, department *string, role user.Role) employee.Employee {
	t.Helper()

	emp := employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: code,
		Name:         "Employee " + code,
		Email:        code + "@example.com",
		Department:   department,
		Role:         role,
	}
	_, err := db.Exec(context.Background(), `
		INSERT INTO employees (id, employee_code, name, email, department, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, emp.ID, emp.EmployeeCode, emp.Name, emp.Email, emp.Department, string(emp.Role))
	require.NoError(t, err)
	return emp
}

func strPtr(s string) *string { return &s }

var testDay = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func checkInRecord(employeeID string, ts time.Time, status attendance.Status) attendance.Record {
	return attendance.Record{
		EmployeeID:  employeeID,
		Date:        testDay,
		CheckInTime: &ts,
		Status:      status,
	}
}

func TestAttendanceRepository_CheckIn_CreatesRecord(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createTestEmployee(t, db, "EMP001", strPtr("Engineering"), user.RoleEmployee)

	in := testDay.Add(9 * time.Hour)
	created, err := repo.CheckIn(ctx, checkInRecord(emp.ID, in, attendance.StatusPresent))

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, emp.ID, created.EmployeeID)
	assert.Equal(t, "2025-03-10", attendance.DateKey(created.Date))
	require.NotNil(t, created.CheckInTime)
	assert.True(t, in.Equal(*created.CheckInTime))
	assert.Nil(t, created.CheckOutTime)
	assert.Equal(t, attendance.StatusPresent, created.Status)
	assert.True(t, created.TotalHours.IsZero())
}

func TestAttendanceRepository_CheckIn_Twice(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createTestEmployee(t, db, "EMP001", nil, user.RoleEmployee)

	first := testDay.Add(9 * time.Hour)
	_, err := repo.CheckIn(ctx, checkInRecord(emp.ID, first, attendance.StatusPresent))
	require.NoError(t, err)

	_, err = repo.CheckIn(ctx, checkInRecord(emp.ID, first.Add(time.Hour), attendance.StatusLate))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	stored, err := repo.GetByEmployeeAndDate(ctx, emp.ID, testDay)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, first.Equal(*stored.CheckInTime))
	assert.Equal(t, attendance.StatusPresent, stored.Status)
}

func TestAttendanceRepository_CheckIn_Concurrent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createTestEmployee(t, db, "EMP001", nil, user.RoleEmployee)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ts := testDay.Add(9*time.Hour + time.Duration(i)*time.Second)
			_, errs[i] = repo.CheckIn(ctx, checkInRecord(emp.ID, ts, attendance.StatusPresent))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	}
	assert.Equal(t, 1, succeeded)

	records, err := repo.List(ctx, attendance.RecordFilter{EmployeeID: &emp.ID})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAttendanceRepository_CheckOut(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createTestEmployee(t, db, "EMP001", nil, user.RoleEmployee)

	_, err := repo.CheckOut(ctx, emp.ID, testDay, testDay.Add(17*time.Hour), attendance.StatusPresent, decimal.Zero)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)

	_, err = repo.CheckIn(ctx, checkInRecord(emp.ID, testDay.Add(9*time.Hour), attendance.StatusPresent))
	require.NoError(t, err)

	out := testDay.Add(17*time.Hour + 30*time.Minute)
	updated, err := repo.CheckOut(ctx, emp.ID, testDay, out, attendance.StatusPresent, decimal.RequireFromString("8.50"))
	require.NoError(t, err)
	require.NotNil(t, updated.CheckOutTime)
	assert.True(t, out.Equal(*updated.CheckOutTime))
	assert.Equal(t, "8.50", updated.TotalHours.StringFixed(2))

	_, err = repo.CheckOut(ctx, emp.ID, testDay, out.Add(time.Hour), attendance.StatusPresent, decimal.NewFromInt(9))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceRepository_GetByEmployeeAndDate_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	rec, err := repo.GetByEmployeeAndDate(context.Background(), uuid.NewString(), testDay)
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestAttendanceRepository_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	alice := createTestEmployee(t, db, "EMP001", strPtr("Engineering"), user.RoleEmployee)
	bob := createTestEmployee(t, db, "EMP002", nil, user.RoleEmployee)

	for i, status := range []attendance.Status{attendance.StatusPresent, attendance.StatusLate, attendance.StatusPresent} {
		day := testDay.AddDate(0, 0, i)
		in := day.Add(9 * time.Hour)
		_, err := repo.CheckIn(ctx, attendance.Record{EmployeeID: alice.ID, Date: day, CheckInTime: &in, Status: status})
		require.NoError(t, err)
	}
	_, err := repo.CheckIn(ctx, checkInRecord(bob.ID, testDay.Add(10*time.Hour), attendance.StatusLate))
	require.NoError(t, err)

	all, err := repo.List(ctx, attendance.RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "2025-03-12", attendance.DateKey(all[0].Date))

	late := attendance.StatusLate
	lateOnly, err := repo.List(ctx, attendance.RecordFilter{Status: &late})
	require.NoError(t, err)
	assert.Len(t, lateOnly, 2)

	start := testDay.AddDate(0, 0, 1)
	end := testDay.AddDate(0, 0, 2)
	ranged, err := repo.List(ctx, attendance.RecordFilter{EmployeeID: &alice.ID, StartDate: &start, EndDate: &end, SortAsc: true})
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.Equal(t, "2025-03-11", attendance.DateKey(ranged[0].Date))
	require.NotNil(t, ranged[0].EmployeeCode)
	assert.Equal(t, "EMP001", *ranged[0].EmployeeCode)
	require.NotNil(t, ranged[0].Department)
	assert.Equal(t, "Engineering", *ranged[0].Department)
}

func TestEmployeeRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)
	alice := createTestEmployee(t, db, "EMP001", strPtr("Engineering"), user.RoleEmployee)
	createTestEmployee(t, db, "EMP002", nil, user.RoleEmployee)
	createTestEmployee(t, db, "MGR001", strPtr("Engineering"), user.RoleManager)

	got, err := repo.GetByEmployeeCode(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
	assert.Equal(t, "Engineering", got.DepartmentName())

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	roster, err := repo.ListByRole(ctx, user.RoleEmployee)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "EMP001", roster[0].EmployeeCode)
	assert.Equal(t, employee.NoDepartment, roster[1].DepartmentName())

	count, err := repo.CountByRole(ctx, user.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestWithTransaction_Rollback(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createTestEmployee(t, db, "EMP001", nil, user.RoleEmployee)

	err := postgresql.WithTransaction(ctx, db, func(txCtx context.Context) error {
		if _, err := repo.CheckIn(txCtx, checkInRecord(emp.ID, testDay.Add(9*time.Hour), attendance.StatusPresent)); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	rec, err := repo.GetByEmployeeAndDate(ctx, emp.ID, testDay)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSeedEmployees_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	eng := "Engineering"
	roster := []employee.Employee{
		{ID: uuid.NewString(), EmployeeCode: "EMP100", Name: "Seeded", Email: "seeded@example.com", Department: &eng, Role: user.RoleEmployee},
		{ID: uuid.NewString(), EmployeeCode: "MGR100", Name: "Seeded Manager", Email: "seeded.manager@example.com", Role: user.RoleManager},
	}

	inserted, err := postgresql.SeedEmployees(ctx, db, roster)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)

	inserted, err = postgresql.SeedEmployees(ctx, db, roster)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	count, err := postgresql.NewEmployeeRepository(db).CountByRole(ctx, user.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
