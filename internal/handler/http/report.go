package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/report"
	"github.com/flamingo-hr/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyAttendance(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// MonthlyAttendance implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	filter := report.MonthlyAttendanceFilter{
		Employee: r.URL.Query().Get("employee"),
		Month:    r.URL.Query().Get("month"),
	}

	if graceParam := r.URL.Query().Get("grace_minutes"); graceParam != "" {
		grace, err := strconv.Atoi(graceParam)
		if err != nil {
			response.BadRequest(w, "grace_minutes must be an integer", nil)
			return
		}
		filter.GraceMinutes = grace
	}

	summaries, err := h.reportService.MonthlyAttendance(r.Context(), filter)
	if err != nil {
		slog.Error("MonthlyAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// A single-employee request collapses to that employee's summary.
	if filter.Employee != "" {
		if summary, ok := summaries[filter.Employee]; ok {
			response.Success(w, summary)
			return
		}
	}

	response.Success(w, summaries)
}
