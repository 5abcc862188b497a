package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/malith-nethsiri/valuerpro-backend/api/responses"
	"github.com/malith-nethsiri/valuerpro-backend/api/validators"
	uploadsvc "github.com/malith-nethsiri/valuerpro-backend/internal/uploads"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/config"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/logger"
)

// multipartMemory caps how much of a multipart body is held in memory
// before spilling to temp files.
const multipartMemory = 8 << 20

// maxFilenameLen bounds the client-supplied name echoed back in results.
const maxFilenameLen = 255

// UploadSingle accepts one multipart file under the "file" field and
// stores it under a generated name.
func UploadSingle(svc uploadsvc.Service, cfg config.UploadConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := currentUserID(r); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, requestBodyLimit(cfg))
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			responses.WriteError(r.Context(), logg, w, multipartError(err))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "file is required"))
			return
		}
		defer file.Close()

		result, err := svc.SaveSingle(r.Context(), uploadsvc.Upload{
			Filename:    validators.SanitizeString(header.Filename, maxFilenameLen),
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Content:     file,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// UploadMultiple accepts up to the configured number of files under the
// "files" field. Individual failures are reported per file; the batch as
// a whole still succeeds.
func UploadMultiple(svc uploadsvc.Service, cfg config.UploadConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := currentUserID(r); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		batchLimit := requestBodyLimit(cfg) * int64(cfg.MaxBatchFiles)
		r.Body = http.MaxBytesReader(w, r.Body, batchLimit)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			responses.WriteError(r.Context(), logg, w, multipartError(err))
			return
		}

		if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "files are required"))
			return
		}

		headers := r.MultipartForm.File["files"]
		uploads := make([]uploadsvc.Upload, 0, len(headers))
		opened := make([]multipart.File, 0, len(headers))
		defer func() {
			for _, f := range opened {
				f.Close()
			}
		}()

		for _, header := range headers {
			file, err := header.Open()
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "open upload"))
				return
			}
			opened = append(opened, file)
			uploads = append(uploads, uploadsvc.Upload{
				Filename:    validators.SanitizeString(header.Filename, maxFilenameLen),
				Size:        header.Size,
				ContentType: header.Header.Get("Content-Type"),
				Content:     file,
			})
		}

		results, err := svc.SaveBatch(r.Context(), uploads)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, results)
	}
}

// requestBodyLimit leaves headroom above the per-file cap for multipart
// framing so the service, not the body reader, rejects oversized files.
func requestBodyLimit(cfg config.UploadConfig) int64 {
	return cfg.MaxFileSizeBytes() + 1<<20
}

func multipartError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return pkgerrors.New(pkgerrors.CodePayloadTooLarge, "File too large")
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form")
}
