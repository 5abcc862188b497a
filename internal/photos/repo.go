package photos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
)

// Repository exposes photo persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a photos repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new photo row.
func (r *Repository) Create(ctx context.Context, photo *models.Photo) (*models.Photo, error) {
	if photo.ID == uuid.Nil {
		photo.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

// ListByReport returns all photos attached to the report in display order.
// The caller verifies report ownership beforehand.
func (r *Repository) ListByReport(ctx context.Context, reportID uuid.UUID) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("sequence_order ASC, created_at ASC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// FindOwned loads a photo joined to its report, restricted to the owner.
func (r *Repository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.WithContext(ctx).
		Joins("JOIN reports ON reports.id = photos.report_id").
		Where("photos.id = ? AND reports.user_id = ?", id, userID).
		First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// Update applies the column map to an owned photo and returns the
// refreshed row.
func (r *Repository) Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Photo, error) {
	if _, err := r.FindOwned(ctx, id, userID); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.Photo{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindOwned(ctx, id, userID)
}

// Delete removes an owned photo row.
func (r *Repository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	photo, err := r.FindOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(photo).Error
}
