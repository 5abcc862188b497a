package controllers

import (
	"net/http"

	"github.com/malith-nethsiri/valuerpro-backend/api/responses"
	"github.com/malith-nethsiri/valuerpro-backend/api/validators"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/logger"
)

// The OCR, AI and maps routes are reserved surface: they validate their
// inputs and answer fixed placeholder payloads until the real
// integrations land.

type ocrResult struct {
	ExtractedText   string  `json:"extracted_text"`
	ConfidenceScore float64 `json:"confidence_score"`
}

func ocrStub(placeholder string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			responses.WriteError(r.Context(), logg, w, multipartError(err))
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "file is required"))
			return
		}
		file.Close()

		responses.WriteSuccess(w, ocrResult{ExtractedText: placeholder, ConfidenceScore: 0})
	}
}

func ExtractText(logg *logger.Logger) http.HandlerFunc {
	return ocrStub("OCR text extraction not yet implemented", logg)
}

func ExtractDocumentText(logg *logger.Logger) http.HandlerFunc {
	return ocrStub("Document OCR not yet implemented", logg)
}

func ExtractSinhalaText(logg *logger.Logger) http.HandlerFunc {
	return ocrStub("Sinhala OCR not yet implemented", logg)
}

type textInput struct {
	Text string `json:"text" validate:"required"`
}

type parseResult struct {
	ParsedData      map[string]string `json:"parsed_data"`
	ConfidenceScore float64           `json:"confidence_score"`
	Suggestions     []string          `json:"suggestions"`
}

func parseStub(placeholder string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload textInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, parseResult{
			ParsedData:  map[string]string{"message": placeholder},
			Suggestions: []string{},
		})
	}
}

func ParseSurveyPlan(logg *logger.Logger) http.HandlerFunc {
	return parseStub("Survey plan parsing not yet implemented", logg)
}

func ParseDeedDocument(logg *logger.Logger) http.HandlerFunc {
	return parseStub("Deed parsing not yet implemented", logg)
}

func ParseApplicant(logg *logger.Logger) http.HandlerFunc {
	return parseStub("Applicant parsing not yet implemented", logg)
}

func TranslateSinhalaToEnglish(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload textInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{
			"translated_text": "Translation not yet implemented",
		})
	}
}

type addressInput struct {
	Address string `json:"address" validate:"required"`
}

type coordinatesInput struct {
	Latitude  float64 `json:"latitude" validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
}

type directionsInput struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
}

type staticMapInput struct {
	Latitude  float64 `json:"latitude" validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
	Zoom      int     `json:"zoom"`
	Size      string  `json:"size"`
}

func Geocode(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addressInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"address":           payload.Address,
			"latitude":          0.0,
			"longitude":         0.0,
			"formatted_address": "Geocoding not yet implemented",
			"place_id":          nil,
		})
	}
}

func ReverseGeocode(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload coordinatesInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"address":           "Reverse geocoding not yet implemented",
			"latitude":          payload.Latitude,
			"longitude":         payload.Longitude,
			"formatted_address": "Address lookup not implemented",
			"place_id":          nil,
		})
	}
}

func Directions(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload directionsInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"distance": "N/A",
			"duration": "N/A",
			"steps":    []string{},
		})
	}
}

// StaticMap answers a placeholder image body rather than the JSON
// envelope; the route is reserved for a real static map render.
func StaticMap(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload staticMapInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Static map generation not yet implemented"))
	}
}
