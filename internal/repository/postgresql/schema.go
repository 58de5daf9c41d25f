package postgresql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the attendance and roster tables when missing.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// SeedEmployees inserts the roster in one transaction. Existing rows are
// left untouched.
func SeedEmployees(ctx context.Context, db *database.DB, employees []employee.Employee) (int64, error) {
	var inserted int64

	err := WithTransaction(ctx, db, func(ctx context.Context) error {
		q := GetQuerier(ctx, db)
		for _, emp := range employees {
			tag, err := q.Exec(ctx, `
				INSERT INTO employees (id, employee_code, name, email, department, role)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT DO NOTHING
			`, emp.ID, emp.EmployeeCode, emp.Name, emp.Email, emp.Department, string(emp.Role))
			if err != nil {
				return fmt.Errorf("failed to seed employee %s: %w", emp.EmployeeCode, err)
			}
			inserted += tag.RowsAffected()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
