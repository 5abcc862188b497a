package reports

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	dbtypes "github.com/malith-nethsiri/valuerpro-backend/pkg/db/types"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/pagination"
)

func setupReportsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_fk=1"), &gorm.Config{})
	require.NoError(t, err)

	for _, ddl := range []string{
		`
CREATE TABLE IF NOT EXISTS reports (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  reference_number TEXT,
  purpose TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'draft',
  bank_name TEXT,
  bank_branch TEXT,
  inspection_date DATETIME,
  valuation_date DATETIME,
  report_date DATETIME,
  generated_files TEXT NOT NULL DEFAULT '[]',
  user_id TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`
CREATE TABLE IF NOT EXISTS photos (
  id TEXT PRIMARY KEY,
  report_id TEXT NOT NULL REFERENCES reports (id) ON DELETE CASCADE,
  file_url TEXT NOT NULL,
  filename TEXT NOT NULL,
  type TEXT NOT NULL,
  sequence_order INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME
);`,
		`
CREATE TABLE IF NOT EXISTS applicants (
  id TEXT PRIMARY KEY,
  report_id TEXT NOT NULL REFERENCES reports (id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  contact_numbers TEXT NOT NULL DEFAULT '[]',
  created_at DATETIME,
  updated_at DATETIME
);`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func seedReport(t *testing.T, repo *Repository, userID uuid.UUID, title string) *models.Report {
	t.Helper()

	report, err := repo.Create(context.Background(), &models.Report{
		Title:          title,
		Purpose:        enums.ReportPurposeMortgage,
		Status:         enums.ReportStatusDraft,
		GeneratedFiles: dbtypes.StringList{},
		UserID:         userID,
	})
	require.NoError(t, err)
	return report
}

func TestRepositoryCreateAssignsID(t *testing.T) {
	repo := NewRepository(setupReportsTestDB(t))
	userID := uuid.New()

	report := seedReport(t, repo, userID, "Colombo residence")

	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.Equal(t, userID, report.UserID)
}

func TestRepositoryFindOwnedScopesByUser(t *testing.T) {
	repo := NewRepository(setupReportsTestDB(t))
	ownerID := uuid.New()
	report := seedReport(t, repo, ownerID, "Kandy bungalow")

	found, err := repo.FindOwned(context.Background(), report.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, report.ID, found.ID)

	_, err = repo.FindOwned(context.Background(), report.ID, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListCountsOnlyOwnRows(t *testing.T) {
	repo := NewRepository(setupReportsTestDB(t))
	ownerID := uuid.New()
	otherID := uuid.New()

	for i := 0; i < 3; i++ {
		seedReport(t, repo, ownerID, "own")
	}
	seedReport(t, repo, otherID, "foreign")

	rows, total, err := repo.List(context.Background(), ownerID, pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, rows, 2)
}

func TestRepositoryUpdateAppliesColumnMap(t *testing.T) {
	repo := NewRepository(setupReportsTestDB(t))
	ownerID := uuid.New()
	report := seedReport(t, repo, ownerID, "Before")

	updated, err := repo.Update(context.Background(), report.ID, ownerID, map[string]any{
		"title":  "After",
		"status": enums.ReportStatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, enums.ReportStatusInProgress, updated.Status)

	_, err = repo.Update(context.Background(), report.ID, uuid.New(), map[string]any{"title": "Hijack"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDeleteScopesByUser(t *testing.T) {
	repo := NewRepository(setupReportsTestDB(t))
	ownerID := uuid.New()
	report := seedReport(t, repo, ownerID, "Disposable")

	err := repo.Delete(context.Background(), report.ID, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.Delete(context.Background(), report.ID, ownerID))

	_, err = repo.FindOwned(context.Background(), report.ID, ownerID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDeleteCascadesToChildren(t *testing.T) {
	db := setupReportsTestDB(t)
	repo := NewRepository(db)
	ownerID := uuid.New()
	report := seedReport(t, repo, ownerID, "With children")

	require.NoError(t, db.Exec(
		`INSERT INTO photos (id, report_id, file_url, filename, type) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), report.ID, "/uploads/front.png", "front.png", "exterior",
	).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO applicants (id, report_id, name) VALUES (?, ?, ?)`,
		uuid.NewString(), report.ID, "A. Perera",
	).Error)

	require.NoError(t, repo.Delete(context.Background(), report.ID, ownerID))

	var photoCount, applicantCount int64
	require.NoError(t, db.Table("photos").Where("report_id = ?", report.ID).Count(&photoCount).Error)
	require.NoError(t, db.Table("applicants").Where("report_id = ?", report.ID).Count(&applicantCount).Error)
	assert.Zero(t, photoCount, "photos must be removed with their report")
	assert.Zero(t, applicantCount, "applicants must be removed with their report")
}
