package photos

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
)

const notFoundMessage = "Photo not found"

// Service defines the behavior needed by the photos controller.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreatePhotoInput) (*PhotoDTO, error)
	ListByReport(ctx context.Context, reportID, userID uuid.UUID) ([]*PhotoDTO, error)
	Update(ctx context.Context, id, userID uuid.UUID, input UpdatePhotoInput) (*PhotoDTO, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type reportGuard interface {
	OwnedReportExists(ctx context.Context, reportID, userID uuid.UUID) error
}

type photoRepository interface {
	Create(ctx context.Context, photo *models.Photo) (*models.Photo, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]models.Photo, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Photo, error)
	Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Photo, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo    photoRepository
	reports reportGuard
}

// NewService constructs a photos service.
func NewService(repo photoRepository, reports reportGuard) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("photo repository is required")
	}
	if reports == nil {
		return nil, fmt.Errorf("report guard is required")
	}
	return &service{repo: repo, reports: reports}, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreatePhotoInput) (*PhotoDTO, error) {
	if err := s.reports.OwnedReportExists(ctx, input.ReportID, userID); err != nil {
		return nil, err
	}

	photoType, err := enums.ParsePhotoType(input.Type)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	photo, err := s.repo.Create(ctx, input.toModel(photoType))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create photo")
	}
	return FromModel(photo), nil
}

func (s *service) ListByReport(ctx context.Context, reportID, userID uuid.UUID) ([]*PhotoDTO, error) {
	if err := s.reports.OwnedReportExists(ctx, reportID, userID); err != nil {
		return nil, err
	}

	photos, err := s.repo.ListByReport(ctx, reportID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list photos")
	}

	dtos := make([]*PhotoDTO, 0, len(photos))
	for i := range photos {
		dtos = append(dtos, FromModel(&photos[i]))
	}
	return dtos, nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, input UpdatePhotoInput) (*PhotoDTO, error) {
	if input.Type != nil {
		if _, err := enums.ParsePhotoType(*input.Type); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
	}

	photo, err := s.repo.Update(ctx, id, userID, input.columns())
	if err != nil {
		return nil, s.asRepoError(err, "update photo")
	}
	return FromModel(photo), nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return s.asRepoError(err, "delete photo")
	}
	return nil
}

func (s *service) asRepoError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op)
}
