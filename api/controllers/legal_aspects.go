package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/malith-nethsiri/valuerpro-backend/api/responses"
	"github.com/malith-nethsiri/valuerpro-backend/api/validators"
	legalsvc "github.com/malith-nethsiri/valuerpro-backend/internal/legalaspects"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/logger"
)

// CreateLegalAspect records a title document against an owned report.
func CreateLegalAspect(svc legalsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload legalsvc.CreateLegalAspectInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		aspect, err := svc.Create(r.Context(), userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, aspect)
	}
}

// ListLegalAspects answers all legal aspects for an owned report.
func ListLegalAspects(svc legalsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reportID, err := validators.ParseQueryUUID(r, "report_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		aspects, err := svc.ListByReport(r.Context(), reportID, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, aspects)
	}
}

// UpdateLegalAspect applies a partial update to an owned legal aspect.
func UpdateLegalAspect(svc legalsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		legalID, err := validators.ParsePathUUID(chi.URLParam(r, "legalID"), "legal aspect id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload legalsvc.UpdateLegalAspectInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		aspect, err := svc.Update(r.Context(), legalID, userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, aspect)
	}
}

// DeleteLegalAspect removes an owned legal aspect.
func DeleteLegalAspect(svc legalsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		legalID, err := validators.ParsePathUUID(chi.URLParam(r, "legalID"), "legal aspect id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), legalID, userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "Legal aspect deleted successfully"})
	}
}
