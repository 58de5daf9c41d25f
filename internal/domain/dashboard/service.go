package dashboard

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

// DashboardService defines the aggregation read paths
type DashboardService interface {
	// MonthlySummary counts one employee's records; the current month when period is empty
	MonthlySummary(ctx context.Context, employeeID string, period attendance.PeriodFilter) (*MonthlySummary, error)

	// OrgSummary counts every record in a month across the organization
	OrgSummary(ctx context.Context, period attendance.PeriodFilter) (*OrgSummary, error)

	// OrgDailySnapshot groups the roster by status for date (YYYY-MM-DD, today when empty)
	OrgDailySnapshot(ctx context.Context, date string) (*DailyOrgSnapshot, error)

	// EmployeeDashboard returns today's status, this month's summary and the last 7 days
	EmployeeDashboard(ctx context.Context, employeeID string) (*EmployeeDashboard, error)

	// ManagerDashboard returns today's stats, the weekly trend and this month's departments
	ManagerDashboard(ctx context.Context) (*ManagerDashboard, error)
}
