package comparables

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
)

// Repository exposes comparable-sale persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a comparables repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new comparable row.
func (r *Repository) Create(ctx context.Context, comparable *models.Comparable) (*models.Comparable, error) {
	if comparable.ID == uuid.Nil {
		comparable.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(comparable).Error; err != nil {
		return nil, err
	}
	return comparable, nil
}

// ListByReport returns all comparables attached to the report. The caller
// verifies report ownership beforehand.
func (r *Repository) ListByReport(ctx context.Context, reportID uuid.UUID) ([]models.Comparable, error) {
	var comparables []models.Comparable
	err := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at ASC").
		Find(&comparables).Error
	if err != nil {
		return nil, err
	}
	return comparables, nil
}

// FindOwned loads a comparable joined to its report, restricted to the owner.
func (r *Repository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Comparable, error) {
	var comparable models.Comparable
	err := r.db.WithContext(ctx).
		Joins("JOIN reports ON reports.id = comparables.report_id").
		Where("comparables.id = ? AND reports.user_id = ?", id, userID).
		First(&comparable).Error
	if err != nil {
		return nil, err
	}
	return &comparable, nil
}

// Update applies the column map to an owned comparable and returns the
// refreshed row.
func (r *Repository) Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Comparable, error) {
	if _, err := r.FindOwned(ctx, id, userID); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.Comparable{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindOwned(ctx, id, userID)
}

// Delete removes an owned comparable row.
func (r *Repository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	comparable, err := r.FindOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(comparable).Error
}
