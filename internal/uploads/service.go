package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/config"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
)

// Upload is one incoming file: its client-supplied name, declared size
// and content type, and content stream.
type Upload struct {
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
}

// Result describes one stored (or rejected) file. Rejected entries carry
// Error and Filename only.
type Result struct {
	FileURL  string `json:"file_url,omitempty"`
	Filename string `json:"filename"`
	FileSize int64  `json:"file_size,omitempty"`
	FileType string `json:"file_type,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Service defines the behavior needed by the upload controller.
type Service interface {
	SaveSingle(ctx context.Context, upload Upload) (*Result, error)
	SaveBatch(ctx context.Context, uploads []Upload) ([]Result, error)
}

type service struct {
	dir        string
	maxBytes   int64
	maxBatch   int
	extensions map[string]struct{}
}

// NewService constructs an upload service and ensures the storage
// directory exists.
func NewService(cfg config.UploadConfig) (Service, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	extensions := make(map[string]struct{}, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		extensions[strings.ToLower(strings.TrimSpace(ext))] = struct{}{}
	}

	return &service{
		dir:        cfg.Dir,
		maxBytes:   cfg.MaxFileSizeBytes(),
		maxBatch:   cfg.MaxBatchFiles,
		extensions: extensions,
	}, nil
}

func (s *service) SaveSingle(_ context.Context, upload Upload) (*Result, error) {
	result, err := s.save(upload)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SaveBatch stores up to the configured number of files. Individual
// failures become error entries in the result list; the batch carries on.
func (s *service) SaveBatch(_ context.Context, uploads []Upload) ([]Result, error) {
	if len(uploads) > s.maxBatch {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Too many files")
	}

	results := make([]Result, 0, len(uploads))
	for _, upload := range uploads {
		stored, err := s.save(upload)
		if err != nil {
			message := "Upload failed"
			if typed := pkgerrors.As(err); typed != nil {
				message = typed.Message()
			}
			results = append(results, Result{Error: message, Filename: upload.Filename})
			continue
		}
		results = append(results, *stored)
	}
	return results, nil
}

func (s *service) save(upload Upload) (*Result, error) {
	if upload.Size > s.maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodePayloadTooLarge, "File too large")
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if _, ok := s.extensions[ext]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "File type not allowed")
	}

	// The declared size is client-supplied; cap the read as well.
	content, err := io.ReadAll(io.LimitReader(upload.Content, s.maxBytes+1))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read upload")
	}
	if int64(len(content)) > s.maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodePayloadTooLarge, "File too large")
	}

	storedName := uuid.NewString() + ext
	path := filepath.Join(s.dir, storedName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write upload")
	}

	// Echo the declared content type; sniff only when the client sent
	// none.
	fileType := upload.ContentType
	if fileType == "" {
		fileType = mimetype.Detect(content).String()
	}

	return &Result{
		FileURL:  "/uploads/" + storedName,
		Filename: upload.Filename,
		FileSize: int64(len(content)),
		FileType: fileType,
	}, nil
}
