package reports

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/pagination"
)

// Repository exposes report persistence operations. Every lookup is scoped
// by the owning user so one valuer can never see another's reports.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reports repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new report and returns the persisted model.
func (r *Repository) Create(ctx context.Context, report *models.Report) (*models.Report, error) {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

// FindOwned loads a report by id, restricted to the given owner.
func (r *Repository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// List returns one page of the owner's reports plus the total count.
func (r *Repository) List(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]models.Report, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Report{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []models.Report
	err := query.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// Update applies the given column map to an owned report and returns the
// refreshed row. gorm.ErrRecordNotFound is returned when the report does
// not exist or belongs to someone else.
func (r *Repository) Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Report, error) {
	if _, err := r.FindOwned(ctx, id, userID); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.Report{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindOwned(ctx, id, userID)
}

// Delete removes an owned report. Child rows go with it via the cascading
// foreign keys on report_id.
func (r *Repository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Report{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
