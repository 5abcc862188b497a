package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/malith-nethsiri/valuerpro-backend/api/responses"
	"github.com/malith-nethsiri/valuerpro-backend/api/validators"
	propertysvc "github.com/malith-nethsiri/valuerpro-backend/internal/properties"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/logger"
)

// CreateProperty attaches a property record to an owned report.
func CreateProperty(svc propertysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload propertysvc.CreatePropertyInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		property, err := svc.Create(r.Context(), userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, property)
	}
}

// GetProperty answers the report's property record, null when none exists.
func GetProperty(svc propertysvc.Service, logg *logger.Logger) http.HandlerFunc {
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

		property, err := svc.GetByReport(r.Context(), reportID, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, property)
	}
}

// UpdateProperty applies a partial update to an owned property record.
func UpdateProperty(svc propertysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		propertyID, err := validators.ParsePathUUID(chi.URLParam(r, "propertyID"), "property id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload propertysvc.UpdatePropertyInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		property, err := svc.Update(r.Context(), propertyID, userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, property)
	}
}

// DeleteProperty removes an owned property record.
func DeleteProperty(svc propertysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		propertyID, err := validators.ParsePathUUID(chi.URLParam(r, "propertyID"), "property id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), propertyID, userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "Property deleted successfully"})
	}
}
