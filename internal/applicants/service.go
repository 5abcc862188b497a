package applicants

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
)

const notFoundMessage = "Applicant not found"

// Service defines the behavior needed by the applicants controller.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateApplicantInput) (*ApplicantDTO, error)
	ListByReport(ctx context.Context, reportID, userID uuid.UUID) ([]*ApplicantDTO, error)
	Update(ctx context.Context, id, userID uuid.UUID, input UpdateApplicantInput) (*ApplicantDTO, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type reportGuard interface {
	OwnedReportExists(ctx context.Context, reportID, userID uuid.UUID) error
}

type applicantRepository interface {
	Create(ctx context.Context, applicant *models.Applicant) (*models.Applicant, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]models.Applicant, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Applicant, error)
	Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Applicant, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo    applicantRepository
	reports reportGuard
}

// NewService constructs an applicants service.
func NewService(repo applicantRepository, reports reportGuard) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("applicant repository is required")
	}
	if reports == nil {
		return nil, fmt.Errorf("report guard is required")
	}
	return &service{repo: repo, reports: reports}, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateApplicantInput) (*ApplicantDTO, error) {
	if err := s.reports.OwnedReportExists(ctx, input.ReportID, userID); err != nil {
		return nil, err
	}

	applicant, err := s.repo.Create(ctx, input.ToModel())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create applicant")
	}
	return FromModel(applicant), nil
}

func (s *service) ListByReport(ctx context.Context, reportID, userID uuid.UUID) ([]*ApplicantDTO, error) {
	if err := s.reports.OwnedReportExists(ctx, reportID, userID); err != nil {
		return nil, err
	}

	applicants, err := s.repo.ListByReport(ctx, reportID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list applicants")
	}

	dtos := make([]*ApplicantDTO, 0, len(applicants))
	for i := range applicants {
		dtos = append(dtos, FromModel(&applicants[i]))
	}
	return dtos, nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, input UpdateApplicantInput) (*ApplicantDTO, error) {
	applicant, err := s.repo.Update(ctx, id, userID, input.columns())
	if err != nil {
		return nil, s.asRepoError(err, "update applicant")
	}
	return FromModel(applicant), nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return s.asRepoError(err, "delete applicant")
	}
	return nil
}

func (s *service) asRepoError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op)
}
