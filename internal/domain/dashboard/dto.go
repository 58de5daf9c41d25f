package dashboard

import "github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"

// ========== MONTHLY SUMMARY ==========

// MonthlySummary counts one employee's records in a period.
// TotalDays is the number of recorded days, not calendar days.
type MonthlySummary struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	HalfDay    int     `json:"half_day"`
	TotalHours float64 `json:"total_hours"`
	TotalDays  int     `json:"total_days"`
}

// ========== DEPARTMENT BREAKDOWN ==========

type DepartmentStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	HalfDay int `json:"half_day"`
}

// ========== ORG SUMMARY ==========

// OrgSummary covers every record in a period across the organization
type OrgSummary struct {
	TotalEmployees int64                      `json:"total_employees"`
	Present        int                        `json:"present"`
	Absent         int                        `json:"absent"`
	Late           int                        `json:"late"`
	HalfDay        int                        `json:"half_day"`
	TotalHours     float64                    `json:"total_hours"`
	ByDepartment   map[string]DepartmentStats `json:"by_department"`
}

// ========== DAILY SNAPSHOT ==========

// DailyOrgSnapshot groups the roster by status for one day. Employees
// without a record appear in Absent as placeholders with no ID.
type DailyOrgSnapshot struct {
	Date       string                          `json:"date"` // Format: "YYYY-MM-DD"
	Present    []attendance.AttendanceResponse `json:"present"`
	Absent     []attendance.AttendanceResponse `json:"absent"`
	Late       []attendance.AttendanceResponse `json:"late"`
	HalfDay    []attendance.AttendanceResponse `json:"half_day"`
	CheckedIn  []attendance.AttendanceResponse `json:"checked_in"`
	CheckedOut []attendance.AttendanceResponse `json:"checked_out"`
}

// ========== WEEKLY TREND ==========

type WeeklyTrendPoint struct {
	Date    string `json:"date"` // Format: "YYYY-MM-DD"
	Present int    `json:"present"`
	Late    int    `json:"late"`
	HalfDay int    `json:"half_day"`
	Absent  int    `json:"absent"` // may be negative when non-roster employees have records
}

// ========== EMPLOYEE DASHBOARD ==========

type TodayStatus struct {
	CheckedIn    bool               `json:"checked_in"`
	CheckedOut   bool               `json:"checked_out"`
	Status       *attendance.Status `json:"status"`
	CheckInTime  *string            `json:"check_in_time"`
	CheckOutTime *string            `json:"check_out_time"`
}

type EmployeeDashboard struct {
	TodayStatus      TodayStatus                     `json:"today_status"`
	MonthlySummary   MonthlySummary                  `json:"monthly_summary"`
	RecentAttendance []attendance.AttendanceResponse `json:"recent_attendance"`
}

// ========== MANAGER DASHBOARD ==========

type TodayStats struct {
	Present    int                             `json:"present"`
	Absent     int                             `json:"absent"`
	Late       int                             `json:"late"`
	HalfDay    int                             `json:"half_day"`
	CheckedIn  []attendance.AttendanceResponse `json:"checked_in"`
	CheckedOut []attendance.AttendanceResponse `json:"checked_out"`
}

// AbsentEmployee is a roster member with no check-in today
type AbsentEmployee struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
}

type ManagerDashboard struct {
	TotalEmployees  int64                      `json:"total_employees"`
	TodayStats      TodayStats                 `json:"today_stats"`
	WeeklyTrend     []WeeklyTrendPoint         `json:"weekly_trend"`
	DepartmentStats map[string]DepartmentStats `json:"department_stats"`
	AbsentToday     []AbsentEmployee           `json:"absent_today"`
}
