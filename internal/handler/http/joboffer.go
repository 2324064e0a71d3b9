package http

import (
	"log/slog"
	"net/http"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/joboffer"
	"github.com/flamingo-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type JobOfferHandler interface {
	ForApplicant(w http.ResponseWriter, r *http.Request)
	StructureComponents(w http.ResponseWriter, r *http.Request)
}

type JobOfferHandlerImpl struct {
	jobOfferService joboffer.JobOfferService
}

func NewJobOfferHandler(jobOfferService joboffer.JobOfferService) JobOfferHandler {
	return &JobOfferHandlerImpl{jobOfferService: jobOfferService}
}

// ForApplicant implements JobOfferHandler.
func (h *JobOfferHandlerImpl) ForApplicant(w http.ResponseWriter, r *http.Request) {
	applicant := r.URL.Query().Get("applicant")
	if applicant == "" {
		response.BadRequest(w, "applicant query parameter is required", nil)
		return
	}

	offers, err := h.jobOfferService.OffersForApplicant(r.Context(), applicant)
	if err != nil {
		slog.Error("OffersForApplicant service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, offers)
}

// StructureComponents implements JobOfferHandler.
func (h *JobOfferHandlerImpl) StructureComponents(w http.ResponseWriter, r *http.Request) {
	structure := chi.URLParam(r, "structureName")

	components, err := h.jobOfferService.StructureComponents(r.Context(), structure)
	if err != nil {
		slog.Error("StructureComponents service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, components)
}
