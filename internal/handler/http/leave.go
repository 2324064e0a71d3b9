package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/leave"
	"github.com/flamingo-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListForApprover(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.CreateApplication(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave application filed successfully", created)
}

// ListForApprover implements LeaveHandler.
func (h *LeaveHandlerImpl) ListForApprover(w http.ResponseWriter, r *http.Request) {
	approver := r.URL.Query().Get("approver")
	if approver == "" {
		response.BadRequest(w, "approver query parameter is required", nil)
		return
	}

	applications, err := h.leaveService.ListForApprover(r.Context(), approver)
	if err != nil {
		slog.Error("ListForApprover service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, applications)
}

// ListForEmployee implements LeaveHandler.
func (h *LeaveHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	applications, err := h.leaveService.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("ListForEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, applications)
}

// UpdateStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var updateReq leave.UpdateLeaveStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateLeaveStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "leaveID")

	updated, err := h.leaveService.UpdateStatus(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateLeaveStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application updated successfully", updated)
}
