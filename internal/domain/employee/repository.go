package employee

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
)

// EmployeeRepository is the read-only view of the roster.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	ListByRole(ctx context.Context, role user.Role) ([]Employee, error)
	CountByRole(ctx context.Context, role user.Role) (int64, error)
}
