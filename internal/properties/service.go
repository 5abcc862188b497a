package properties

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
)

const notFoundMessage = "Property not found"

// Service defines the behavior needed by the properties controller.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreatePropertyInput) (*PropertyDTO, error)
	GetByReport(ctx context.Context, reportID, userID uuid.UUID) (*PropertyDTO, error)
	Update(ctx context.Context, id, userID uuid.UUID, input UpdatePropertyInput) (*PropertyDTO, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// reportGuard verifies that a report exists and belongs to the caller.
type reportGuard interface {
	OwnedReportExists(ctx context.Context, reportID, userID uuid.UUID) error
}

type propertyRepository interface {
	Create(ctx context.Context, property *models.Property) (*models.Property, error)
	FindByReport(ctx context.Context, reportID uuid.UUID) (*models.Property, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Property, error)
	Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Property, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo    propertyRepository
	reports reportGuard
}

// NewService constructs a properties service.
func NewService(repo propertyRepository, reports reportGuard) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("property repository is required")
	}
	if reports == nil {
		return nil, fmt.Errorf("report guard is required")
	}
	return &service{repo: repo, reports: reports}, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreatePropertyInput) (*PropertyDTO, error) {
	if err := s.reports.OwnedReportExists(ctx, input.ReportID, userID); err != nil {
		return nil, err
	}

	property, err := s.repo.Create(ctx, input.toModel())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create property")
	}
	return FromModel(property), nil
}

// GetByReport answers the singleton property for a report, nil when the
// report has none yet.
func (s *service) GetByReport(ctx context.Context, reportID, userID uuid.UUID) (*PropertyDTO, error) {
	if err := s.reports.OwnedReportExists(ctx, reportID, userID); err != nil {
		return nil, err
	}

	property, err := s.repo.FindByReport(ctx, reportID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load property")
	}
	return FromModel(property), nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, input UpdatePropertyInput) (*PropertyDTO, error) {
	property, err := s.repo.Update(ctx, id, userID, input.columns())
	if err != nil {
		return nil, s.asRepoError(err, "update property")
	}
	return FromModel(property), nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return s.asRepoError(err, "delete property")
	}
	return nil
}

func (s *service) asRepoError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op)
}
