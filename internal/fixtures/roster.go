package fixtures

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
)

func strPtr(s string) *string { return &s }

// ==========================================
// DEFAULT ROSTER
// ==========================================

// Fixed IDs so tokens minted for local runs survive restarts.
const (
	ManagerID       = "01932b4e-7c10-7000-8000-000000000001"
	EngineerID      = "01932b4e-7c10-7000-8000-000000000002"
	DesignerID      = "01932b4e-7c10-7000-8000-000000000003"
	AnalystID       = "01932b4e-7c10-7000-8000-000000000004"
	UnassignedStaff = "01932b4e-7c10-7000-8000-000000000005"
)

// DefaultRoster returns the demo organization used by the memory store
// and by DB_SEED_ROSTER.
func DefaultRoster() []employee.Employee {
	return []employee.Employee{
		{
			ID:           ManagerID,
			EmployeeCode: "MGR001",
			Name:         "Rina Wijaya",
			Email:        "rina.wijaya@cmlabs.co",
			Department:   strPtr("Operations"),
			Role:         user.RoleManager,
		},
		{
			ID:           EngineerID,
			EmployeeCode: "EMP001",
			Name:         "Budi Santoso",
			Email:        "budi.santoso@cmlabs.co",
			Department:   strPtr("Engineering"),
			Role:         user.RoleEmployee,
		},
		{
			ID:           DesignerID,
			EmployeeCode: "EMP002",
			Name:         "Sari Putri",
			Email:        "sari.putri@cmlabs.co",
			Department:   strPtr("Design"),
			Role:         user.RoleEmployee,
		},
		{
			ID:           AnalystID,
			EmployeeCode: "EMP003",
			Name:         "Andi Pratama",
			Email:        "andi.pratama@cmlabs.co",
			Department:   strPtr("Engineering"),
			Role:         user.RoleEmployee,
		},
		{
			ID:           UnassignedStaff,
			EmployeeCode: "EMP004",
			Name:         "Dewi Lestari",
			Email:        "dewi.lestari@cmlabs.co",
			Role:         user.RoleEmployee,
		},
	}
}
