package valuerprofile

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
)

// Repository exposes valuer-profile persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a valuer-profile repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the caller's profile row.
func (r *Repository) Create(ctx context.Context, profile *models.ValuerProfile) (*models.ValuerProfile, error) {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// FindByUser returns the user's profile, or nil when none exists.
func (r *Repository) FindByUser(ctx context.Context, userID uuid.UUID) (*models.ValuerProfile, error) {
	var profile models.ValuerProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update applies the column map to the user's profile and returns the
// refreshed row. gorm.ErrRecordNotFound is returned when no profile exists.
func (r *Repository) Update(ctx context.Context, userID uuid.UUID, updates map[string]any) (*models.ValuerProfile, error) {
	profile, err := r.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, gorm.ErrRecordNotFound
	}

	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.ValuerProfile{}).
			Where("user_id = ?", userID).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByUser(ctx, userID)
}
