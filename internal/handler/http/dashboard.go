package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// MySummary returns the caller's monthly counts
	MySummary(w http.ResponseWriter, r *http.Request)
	// OrgSummary returns organization counts for a month
	OrgSummary(w http.ResponseWriter, r *http.Request)
	// DailySnapshot returns who is in which bucket on one day
	DailySnapshot(w http.ResponseWriter, r *http.Request)
	// EmployeeDashboard returns the caller's home screen data
	EmployeeDashboard(w http.ResponseWriter, r *http.Request)
	// ManagerDashboard returns the manager home screen data
	ManagerDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// MySummary handles GET /attendance/my-summary
func (h *dashboardHandlerImpl) MySummary(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.MonthlySummary(r.Context(), caller.EmployeeID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// OrgSummary handles GET /attendance/summary
func (h *dashboardHandlerImpl) OrgSummary(w http.ResponseWriter, r *http.Request) {
	period, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.OrgSummary(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DailySnapshot handles GET /attendance/today-status
func (h *dashboardHandlerImpl) DailySnapshot(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date") // format: YYYY-MM-DD, default: today

	result, err := h.dashboardService.OrgDailySnapshot(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeDashboard handles GET /dashboard/employee
func (h *dashboardHandlerImpl) EmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.EmployeeDashboard(r.Context(), caller.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ManagerDashboard handles GET /dashboard/manager
func (h *dashboardHandlerImpl) ManagerDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.ManagerDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
