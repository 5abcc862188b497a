package legalaspects

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
)

// Repository exposes legal-aspect persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a legal-aspects repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new legal-aspect row.
func (r *Repository) Create(ctx context.Context, aspect *models.LegalAspect) (*models.LegalAspect, error) {
	if aspect.ID == uuid.Nil {
		aspect.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(aspect).Error; err != nil {
		return nil, err
	}
	return aspect, nil
}

// ListByReport returns all legal aspects attached to the report. The caller
// verifies report ownership beforehand.
func (r *Repository) ListByReport(ctx context.Context, reportID uuid.UUID) ([]models.LegalAspect, error) {
	var aspects []models.LegalAspect
	err := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at ASC").
		Find(&aspects).Error
	if err != nil {
		return nil, err
	}
	return aspects, nil
}

// FindOwned loads a legal aspect joined to its report, restricted to the owner.
func (r *Repository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.LegalAspect, error) {
	var aspect models.LegalAspect
	err := r.db.WithContext(ctx).
		Joins("JOIN reports ON reports.id = legal_aspects.report_id").
		Where("legal_aspects.id = ? AND reports.user_id = ?", id, userID).
		First(&aspect).Error
	if err != nil {
		return nil, err
	}
	return &aspect, nil
}

// Update applies the column map to an owned legal aspect and returns the
// refreshed row.
func (r *Repository) Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.LegalAspect, error) {
	if _, err := r.FindOwned(ctx, id, userID); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.LegalAspect{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindOwned(ctx, id, userID)
}

// Delete removes an owned legal-aspect row.
func (r *Repository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	aspect, err := r.FindOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(aspect).Error
}
