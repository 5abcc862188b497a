package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/malith-nethsiri/valuerpro-backend/api/responses"
	"github.com/malith-nethsiri/valuerpro-backend/api/validators"
	applicantsvc "github.com/malith-nethsiri/valuerpro-backend/internal/applicants"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/logger"
)

// CreateApplicant attaches an applicant to an owned report.
func CreateApplicant(svc applicantsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload applicantsvc.CreateApplicantInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		applicant, err := svc.Create(r.Context(), userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, applicant)
	}
}

// ListApplicants answers all applicants for an owned report.
func ListApplicants(svc applicantsvc.Service, logg *logger.Logger) http.HandlerFunc {
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

		applicants, err := svc.ListByReport(r.Context(), reportID, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, applicants)
	}
}

// UpdateApplicant applies a partial update to an owned applicant.
func UpdateApplicant(svc applicantsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		applicantID, err := validators.ParsePathUUID(chi.URLParam(r, "applicantID"), "applicant id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload applicantsvc.UpdateApplicantInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		applicant, err := svc.Update(r.Context(), applicantID, userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, applicant)
	}
}

// DeleteApplicant removes an owned applicant.
func DeleteApplicant(svc applicantsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		applicantID, err := validators.ParsePathUUID(chi.URLParam(r, "applicantID"), "applicant id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), applicantID, userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "Applicant deleted successfully"})
	}
}
