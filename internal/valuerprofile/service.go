package valuerprofile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/internal/applicants"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
)

// Service defines the behavior needed by the valuer-profile controller.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error)
	Create(ctx context.Context, userID uuid.UUID, input CreateProfileInput) (*ProfileDTO, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*ProfileDTO, error)
	CreateApplicant(ctx context.Context, userID uuid.UUID, input applicants.CreateApplicantInput) (*applicants.ApplicantDTO, error)
}

type profileRepository interface {
	Create(ctx context.Context, profile *models.ValuerProfile) (*models.ValuerProfile, error)
	FindByUser(ctx context.Context, userID uuid.UUID) (*models.ValuerProfile, error)
	Update(ctx context.Context, userID uuid.UUID, updates map[string]any) (*models.ValuerProfile, error)
}

type applicantCreator interface {
	Create(ctx context.Context, userID uuid.UUID, input applicants.CreateApplicantInput) (*applicants.ApplicantDTO, error)
}

type service struct {
	repo      profileRepository
	applicant applicantCreator
}

// NewService constructs a valuer-profile service.
func NewService(repo profileRepository, applicant applicantCreator) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("profile repository is required")
	}
	if applicant == nil {
		return nil, fmt.Errorf("applicant service is required")
	}
	return &service{repo: repo, applicant: applicant}, nil
}

// Get answers the caller's profile, nil when none has been created yet.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error) {
	profile, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load profile")
	}
	return FromModel(profile), nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateProfileInput) (*ProfileDTO, error) {
	existing, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check profile")
	}
	if existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Profile already exists")
	}

	profile, err := s.repo.Create(ctx, input.toModel(userID))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create profile")
	}
	return FromModel(profile), nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*ProfileDTO, error) {
	profile, err := s.repo.Update(ctx, userID, input.columns())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update profile")
	}
	return FromModel(profile), nil
}

// CreateApplicant attaches an applicant to one of the caller's reports.
// Despite living under the profile routes, it copies nothing from the
// profile; the payload alone describes the applicant.
func (s *service) CreateApplicant(ctx context.Context, userID uuid.UUID, input applicants.CreateApplicantInput) (*applicants.ApplicantDTO, error) {
	return s.applicant.Create(ctx, userID, input)
}
