package applicants

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
)

// Repository exposes applicant persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an applicants repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new applicant row.
func (r *Repository) Create(ctx context.Context, applicant *models.Applicant) (*models.Applicant, error) {
	if applicant.ID == uuid.Nil {
		applicant.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(applicant).Error; err != nil {
		return nil, err
	}
	return applicant, nil
}

// ListByReport returns all applicants attached to the report. The caller
// verifies report ownership beforehand.
func (r *Repository) ListByReport(ctx context.Context, reportID uuid.UUID) ([]models.Applicant, error) {
	var applicants []models.Applicant
	err := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at ASC").
		Find(&applicants).Error
	if err != nil {
		return nil, err
	}
	return applicants, nil
}

// FindOwned loads an applicant joined to its report, restricted to the owner.
func (r *Repository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Applicant, error) {
	var applicant models.Applicant
	err := r.db.WithContext(ctx).
		Joins("JOIN reports ON reports.id = applicants.report_id").
		Where("applicants.id = ? AND reports.user_id = ?", id, userID).
		First(&applicant).Error
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}

// Update applies the column map to an owned applicant and returns the
// refreshed row.
func (r *Repository) Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Applicant, error) {
	if _, err := r.FindOwned(ctx, id, userID); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.Applicant{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindOwned(ctx, id, userID)
}

// Delete removes an owned applicant row.
func (r *Repository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	applicant, err := r.FindOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(applicant).Error
}
