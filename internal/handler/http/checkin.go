package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/checkin"
	"github.com/flamingo-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CheckinHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	Recent(w http.ResponseWriter, r *http.Request)
	AttendanceLog(w http.ResponseWriter, r *http.Request)
	RequestRegularise(w http.ResponseWriter, r *http.Request)
	RegulariseQueue(w http.ResponseWriter, r *http.Request)
	DecideRegularise(w http.ResponseWriter, r *http.Request)
}

type CheckinHandlerImpl struct {
	checkinService checkin.CheckinService
}

func NewCheckinHandler(checkinService checkin.CheckinService) CheckinHandler {
	return &CheckinHandlerImpl{checkinService: checkinService}
}

// Punch implements CheckinHandler.
func (h *CheckinHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var punchReq checkin.PunchRequest

	if err := json.NewDecoder(r.Body).Decode(&punchReq); err != nil {
		slog.Error("Punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	punched, err := h.checkinService.Punch(r.Context(), punchReq)
	if err != nil {
		slog.Error("Punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, punched.Message, punched)
}

// Recent implements CheckinHandler.
func (h *CheckinHandlerImpl) Recent(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	checkins, err := h.checkinService.RecentCheckins(r.Context(), employeeID)
	if err != nil {
		slog.Error("RecentCheckins service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, checkins)
}

// AttendanceLog implements CheckinHandler.
func (h *CheckinHandlerImpl) AttendanceLog(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	log, err := h.checkinService.AttendanceLog(r.Context(), employeeID)
	if err != nil {
		slog.Error("AttendanceLog service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, log)
}

// RequestRegularise implements CheckinHandler.
func (h *CheckinHandlerImpl) RequestRegularise(w http.ResponseWriter, r *http.Request) {
	var regulariseReq checkin.RegulariseRequest

	if err := json.NewDecoder(r.Body).Decode(&regulariseReq); err != nil {
		slog.Error("RequestRegularise decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	regulariseReq.ID = chi.URLParam(r, "checkinID")

	updated, err := h.checkinService.RequestRegularise(r.Context(), regulariseReq)
	if err != nil {
		slog.Error("RequestRegularise service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Regularise request recorded", updated)
}

// RegulariseQueue implements CheckinHandler.
func (h *CheckinHandlerImpl) RegulariseQueue(w http.ResponseWriter, r *http.Request) {
	approver := r.URL.Query().Get("approver")
	if approver == "" {
		response.BadRequest(w, "approver query parameter is required", nil)
		return
	}

	queue, err := h.checkinService.RegulariseQueue(r.Context(), approver)
	if err != nil {
		slog.Error("RegulariseQueue service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, queue)
}

// DecideRegularise implements CheckinHandler.
func (h *CheckinHandlerImpl) DecideRegularise(w http.ResponseWriter, r *http.Request) {
	var decisionReq checkin.RegulariseDecisionRequest

	if err := json.NewDecoder(r.Body).Decode(&decisionReq); err != nil {
		slog.Error("DecideRegularise decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	decisionReq.ID = chi.URLParam(r, "checkinID")

	decided, err := h.checkinService.DecideRegularise(r.Context(), decisionReq)
	if err != nil {
		slog.Error("DecideRegularise service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Regularise request processed", decided)
}
