package legalaspects

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

const notFoundMessage = "Legal aspect not found"

// Service defines the behavior needed by the legal-aspects controller.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateLegalAspectInput) (*LegalAspectDTO, error)
	ListByReport(ctx context.Context, reportID, userID uuid.UUID) ([]*LegalAspectDTO, error)
	Update(ctx context.Context, id, userID uuid.UUID, input UpdateLegalAspectInput) (*LegalAspectDTO, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type reportGuard interface {
	OwnedReportExists(ctx context.Context, reportID, userID uuid.UUID) error
}

type legalAspectRepository interface {
	Create(ctx context.Context, aspect *models.LegalAspect) (*models.LegalAspect, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]models.LegalAspect, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.LegalAspect, error)
	Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.LegalAspect, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo    legalAspectRepository
	reports reportGuard
}

// NewService constructs a legal-aspects service.
func NewService(repo legalAspectRepository, reports reportGuard) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("legal aspect repository is required")
	}
	if reports == nil {
		return nil, fmt.Errorf("report guard is required")
	}
	return &service{repo: repo, reports: reports}, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateLegalAspectInput) (*LegalAspectDTO, error) {
	if err := s.reports.OwnedReportExists(ctx, input.ReportID, userID); err != nil {
		return nil, err
	}

	documentType, err := enums.ParseDocumentType(input.DocumentType)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	aspect, err := s.repo.Create(ctx, input.toModel(documentType))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create legal aspect")
	}
	return FromModel(aspect), nil
}

func (s *service) ListByReport(ctx context.Context, reportID, userID uuid.UUID) ([]*LegalAspectDTO, error) {
	if err := s.reports.OwnedReportExists(ctx, reportID, userID); err != nil {
		return nil, err
	}

	aspects, err := s.repo.ListByReport(ctx, reportID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list legal aspects")
	}

	dtos := make([]*LegalAspectDTO, 0, len(aspects))
	for i := range aspects {
		dtos = append(dtos, FromModel(&aspects[i]))
	}
	return dtos, nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, input UpdateLegalAspectInput) (*LegalAspectDTO, error) {
	if input.DocumentType != nil {
		if _, err := enums.ParseDocumentType(*input.DocumentType); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
	}

	aspect, err := s.repo.Update(ctx, id, userID, input.columns())
	if err != nil {
		return nil, s.asRepoError(err, "update legal aspect")
	}
	return FromModel(aspect), nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return s.asRepoError(err, "delete legal aspect")
	}
	return nil
}

func (s *service) asRepoError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op)
}
