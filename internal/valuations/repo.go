package valuations

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
)

// Repository exposes valuation persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a valuations repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new valuation row.
func (r *Repository) Create(ctx context.Context, valuation *models.Valuation) (*models.Valuation, error) {
	if valuation.ID == uuid.Nil {
		valuation.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(valuation).Error; err != nil {
		return nil, err
	}
	return valuation, nil
}

// FindByReport returns the first valuation attached to the report, or nil
// when none exists. The caller verifies report ownership beforehand.
func (r *Repository) FindByReport(ctx context.Context, reportID uuid.UUID) (*models.Valuation, error) {
	var valuation models.Valuation
	err := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at ASC").
		First(&valuation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &valuation, nil
}

// FindOwned loads a valuation joined to its report, restricted to the owner.
func (r *Repository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Valuation, error) {
	var valuation models.Valuation
	err := r.db.WithContext(ctx).
		Joins("JOIN reports ON reports.id = valuations.report_id").
		Where("valuations.id = ? AND reports.user_id = ?", id, userID).
		First(&valuation).Error
	if err != nil {
		return nil, err
	}
	return &valuation, nil
}

// Update applies the column map to an owned valuation and returns the
// refreshed row.
func (r *Repository) Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Valuation, error) {
	if _, err := r.FindOwned(ctx, id, userID); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.Valuation{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindOwned(ctx, id, userID)
}

// Delete removes an owned valuation row.
func (r *Repository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	valuation, err := r.FindOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(valuation).Error
}
