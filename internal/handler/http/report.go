package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Export handles GET /attendance/export
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := report.ExportRequest{
		EmployeeCode: optionalQuery(r, "employee_code"),
		StartDate:    optionalQuery(r, "start_date"),
		EndDate:      optionalQuery(r, "end_date"),
		Format:       report.Format(r.URL.Query().Get("format")),
	}

	file, err := h.reportService.Export(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance export generated", "format", req.Format, "rows", file.RowCount)
	response.Attachment(w, file.Filename, file.ContentType, file.Content)
}
