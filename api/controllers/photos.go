package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/malith-nethsiri/valuerpro-backend/api/responses"
	"github.com/malith-nethsiri/valuerpro-backend/api/validators"
	photosvc "github.com/malith-nethsiri/valuerpro-backend/internal/photos"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/logger"
)

// CreatePhoto attaches an already-uploaded photo to an owned report.
func CreatePhoto(svc photosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload photosvc.CreatePhotoInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		photo, err := svc.Create(r.Context(), userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, photo)
	}
}

// ListPhotos answers all photos for an owned report in display order.
func ListPhotos(svc photosvc.Service, logg *logger.Logger) http.HandlerFunc {
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

		photos, err := svc.ListByReport(r.Context(), reportID, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, photos)
	}
}

// UpdatePhoto applies a partial update to an owned photo's metadata.
func UpdatePhoto(svc photosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		photoID, err := validators.ParsePathUUID(chi.URLParam(r, "photoID"), "photo id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload photosvc.UpdatePhotoInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		photo, err := svc.Update(r.Context(), photoID, userID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, photo)
	}
}

// DeletePhoto removes an owned photo record.
func DeletePhoto(svc photosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		photoID, err := validators.ParsePathUUID(chi.URLParam(r, "photoID"), "photo id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), photoID, userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "Photo deleted successfully"})
	}
}
