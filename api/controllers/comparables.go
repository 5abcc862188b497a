package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/malith-nethsiri/valuerpro-backend/api/responses"
	"github.com/malith-nethsiri/valuerpro-backend/api/validators"
	comparablesvc "github.com/malith-nethsiri/valuerpro-backend/internal/comparables"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/logger"
)

// CreateComparable records a comparable sale against an owned report.
func CreateComparable(svc comparablesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload comparablesvc.CreateComparableInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		comparable, err := svc.Create(r.Context(), userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, comparable)
	}
}

// ListComparables answers all comparable sales for an owned report.
func ListComparables(svc comparablesvc.Service, logg *logger.Logger) http.HandlerFunc {
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

		comparables, err := svc.ListByReport(r.Context(), reportID, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, comparables)
	}
}

// UpdateComparable applies a partial update to an owned comparable.
func UpdateComparable(svc comparablesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		comparableID, err := validators.ParsePathUUID(chi.URLParam(r, "comparableID"), "comparable id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload comparablesvc.UpdateComparableInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		comparable, err := svc.Update(r.Context(), comparableID, userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, comparable)
	}
}

// DeleteComparable removes an owned comparable.
func DeleteComparable(svc comparablesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		comparableID, err := validators.ParsePathUUID(chi.URLParam(r, "comparableID"), "comparable id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), comparableID, userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "Comparable deleted successfully"})
	}
}
