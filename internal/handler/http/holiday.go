package http

import (
	"log/slog"
	"net/http"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/flamingo-hr/attendance-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	EmployeeWise(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// EmployeeWise implements HolidayHandler.
func (h *HolidayHandlerImpl) EmployeeWise(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.holidayService.EmployeeWiseHolidays(r.Context())
	if err != nil {
		slog.Error("EmployeeWiseHolidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}
