package properties

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
)

// Repository exposes property persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a properties repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new property row.
func (r *Repository) Create(ctx context.Context, property *models.Property) (*models.Property, error) {
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(property).Error; err != nil {
		return nil, err
	}
	return property, nil
}

// FindByReport returns the first property attached to the report, or nil
// when none exists. The caller verifies report ownership beforehand.
func (r *Repository) FindByReport(ctx context.Context, reportID uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at ASC").
		First(&property).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// FindOwned loads a property joined to its report, restricted to the owner.
func (r *Repository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).
		Joins("JOIN reports ON reports.id = properties.report_id").
		Where("properties.id = ? AND reports.user_id = ?", id, userID).
		First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Update applies the column map to an owned property and returns the
// refreshed row.
func (r *Repository) Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Property, error) {
	if _, err := r.FindOwned(ctx, id, userID); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.Property{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindOwned(ctx, id, userID)
}

// Delete removes an owned property row.
func (r *Repository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	property, err := r.FindOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(property).Error
}
