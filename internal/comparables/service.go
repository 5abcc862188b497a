package comparables

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

const notFoundMessage = "Comparable not found"

// Service defines the behavior needed by the comparables controller.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateComparableInput) (*ComparableDTO, error)
	ListByReport(ctx context.Context, reportID, userID uuid.UUID) ([]*ComparableDTO, error)
	Update(ctx context.Context, id, userID uuid.UUID, input UpdateComparableInput) (*ComparableDTO, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type reportGuard interface {
	OwnedReportExists(ctx context.Context, reportID, userID uuid.UUID) error
}

type comparableRepository interface {
	Create(ctx context.Context, comparable *models.Comparable) (*models.Comparable, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]models.Comparable, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Comparable, error)
	Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Comparable, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo    comparableRepository
	reports reportGuard
}

// NewService constructs a comparables service.
func NewService(repo comparableRepository, reports reportGuard) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("comparable repository is required")
	}
	if reports == nil {
		return nil, fmt.Errorf("report guard is required")
	}
	return &service{repo: repo, reports: reports}, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateComparableInput) (*ComparableDTO, error) {
	if err := s.reports.OwnedReportExists(ctx, input.ReportID, userID); err != nil {
		return nil, err
	}

	var similarity *enums.LocationSimilarity
	if input.LocationSimilarity != nil {
		parsed, err := enums.ParseLocationSimilarity(*input.LocationSimilarity)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
		similarity = &parsed
	}

	comparable, err := s.repo.Create(ctx, input.toModel(similarity))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create comparable")
	}
	return FromModel(comparable), nil
}

func (s *service) ListByReport(ctx context.Context, reportID, userID uuid.UUID) ([]*ComparableDTO, error) {
	if err := s.reports.OwnedReportExists(ctx, reportID, userID); err != nil {
		return nil, err
	}

	comparables, err := s.repo.ListByReport(ctx, reportID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list comparables")
	}

	dtos := make([]*ComparableDTO, 0, len(comparables))
	for i := range comparables {
		dtos = append(dtos, FromModel(&comparables[i]))
	}
	return dtos, nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, input UpdateComparableInput) (*ComparableDTO, error) {
	if input.LocationSimilarity != nil {
		if _, err := enums.ParseLocationSimilarity(*input.LocationSimilarity); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
	}

	comparable, err := s.repo.Update(ctx, id, userID, input.columns())
	if err != nil {
		return nil, s.asRepoError(err, "update comparable")
	}
	return FromModel(comparable), nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return s.asRepoError(err, "delete comparable")
	}
	return nil
}

func (s *service) asRepoError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op)
}
