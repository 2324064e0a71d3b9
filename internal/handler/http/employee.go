package http

import (
	"log/slog"
	"net/http"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/employee"
	"github.com/flamingo-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	GetByID(w http.ResponseWriter, r *http.Request)
	TodayBirthdays(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	emp, err := h.employeeService.GetEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("GetEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// TodayBirthdays implements EmployeeHandler.
func (h *EmployeeHandlerImpl) TodayBirthdays(w http.ResponseWriter, r *http.Request) {
	birthdays, err := h.employeeService.TodayBirthdays(r.Context())
	if err != nil {
		slog.Error("TodayBirthdays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, birthdays)
}
