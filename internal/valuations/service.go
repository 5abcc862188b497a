package valuations

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

const notFoundMessage = "Valuation not found"

// Service defines the behavior needed by the valuations controller.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateValuationInput) (*ValuationDTO, error)
	GetByReport(ctx context.Context, reportID, userID uuid.UUID) (*ValuationDTO, error)
	Update(ctx context.Context, id, userID uuid.UUID, input UpdateValuationInput) (*ValuationDTO, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type reportGuard interface {
	OwnedReportExists(ctx context.Context, reportID, userID uuid.UUID) error
}

type valuationRepository interface {
	Create(ctx context.Context, valuation *models.Valuation) (*models.Valuation, error)
	FindByReport(ctx context.Context, reportID uuid.UUID) (*models.Valuation, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Valuation, error)
	Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Valuation, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo    valuationRepository
	reports reportGuard
}

// NewService constructs a valuations service.
func NewService(repo valuationRepository, reports reportGuard) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("valuation repository is required")
	}
	if reports == nil {
		return nil, fmt.Errorf("report guard is required")
	}
	return &service{repo: repo, reports: reports}, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateValuationInput) (*ValuationDTO, error) {
	if err := s.reports.OwnedReportExists(ctx, input.ReportID, userID); err != nil {
		return nil, err
	}

	method, err := enums.ParseValuationMethod(input.PrimaryMethod)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	valuation, err := s.repo.Create(ctx, input.toModel(method))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create valuation")
	}
	return FromModel(valuation), nil
}

// GetByReport answers the singleton valuation for a report, nil when the
// report has none yet.
func (s *service) GetByReport(ctx context.Context, reportID, userID uuid.UUID) (*ValuationDTO, error) {
	if err := s.reports.OwnedReportExists(ctx, reportID, userID); err != nil {
		return nil, err
	}

	valuation, err := s.repo.FindByReport(ctx, reportID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load valuation")
	}
	return FromModel(valuation), nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, input UpdateValuationInput) (*ValuationDTO, error) {
	if input.PrimaryMethod != nil {
		if _, err := enums.ParseValuationMethod(*input.PrimaryMethod); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
	}

	valuation, err := s.repo.Update(ctx, id, userID, input.columns())
	if err != nil {
		return nil, s.asRepoError(err, "update valuation")
	}
	return FromModel(valuation), nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return s.asRepoError(err, "delete valuation")
	}
	return nil
}

func (s *service) asRepoError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op)
}
