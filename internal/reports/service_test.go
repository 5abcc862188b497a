package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/pagination"
)

type stubReportRepo struct {
	reports   map[uuid.UUID]*models.Report
	updates   map[string]any
	createErr error
	updateErr error
}

func newStubReportRepo(seed ...*models.Report) *stubReportRepo {
	repo := &stubReportRepo{reports: map[uuid.UUID]*models.Report{}}
	for _, report := range seed {
		repo.reports[report.ID] = report
	}
	return repo
}

func (s *stubReportRepo) Create(_ context.Context, report *models.Report) (*models.Report, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.reports[report.ID] = report
	return report, nil
}

func (s *stubReportRepo) FindOwned(_ context.Context, id, userID uuid.UUID) (*models.Report, error) {
	report, ok := s.reports[id]
	if !ok || report.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return report, nil
}

func (s *stubReportRepo) List(_ context.Context, userID uuid.UUID, params pagination.Params) ([]models.Report, int64, error) {
	var owned []models.Report
	for _, report := range s.reports {
		if report.UserID == userID {
			owned = append(owned, *report)
		}
	}
	total := int64(len(owned))

	start := params.Offset()
	if start > len(owned) {
		start = len(owned)
	}
	end := start + params.Limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[start:end], total, nil
}

func (s *stubReportRepo) Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Report, error) {
	report, err := s.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	s.updates = updates
	if title, ok := updates["title"].(string); ok {
		report.Title = title
	}
	if status, ok := updates["status"].(string); ok {
		report.Status = enums.ReportStatus(status)
	}
	return report, nil
}

func (s *stubReportRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.FindOwned(ctx, id, userID); err != nil {
		return err
	}
	delete(s.reports, id)
	return nil
}

func buildService(t *testing.T, repo *stubReportRepo) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func draftReport(userID uuid.UUID) *models.Report {
	return &models.Report{
		ID:      uuid.New(),
		Title:   "Colombo residence",
		Purpose: enums.ReportPurposeMortgage,
		Status:  enums.ReportStatusDraft,
		UserID:  userID,
	}
}

func TestCreateReportDefaultsToDraft(t *testing.T) {
	repo := newStubReportRepo()
	svc := buildService(t, repo)
	userID := uuid.New()

	dto, err := svc.Create(context.Background(), userID, CreateReportInput{
		Title:   "Kandy bungalow",
		Purpose: "mortgage",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Status != enums.ReportStatusDraft {
		t.Fatalf("new reports must start as draft, got %s", dto.Status)
	}
	if dto.UserID != userID {
		t.Fatalf("report not attributed to creator")
	}
	if dto.GeneratedFiles == nil {
		t.Fatal("generated_files must serialize as an empty list, not null")
	}
}

func TestCreateReportRejectsUnknownPurpose(t *testing.T) {
	svc := buildService(t, newStubReportRepo())

	_, err := svc.Create(context.Background(), uuid.New(), CreateReportInput{
		Title:   "bad purpose",
		Purpose: "speculation",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateReportDuplicateReferenceConflicts(t *testing.T) {
	repo := newStubReportRepo()
	repo.createErr = errors.New(`duplicate key value violates unique constraint "idx_reports_reference_number"`)
	svc := buildService(t, repo)

	_, err := svc.Create(context.Background(), uuid.New(), CreateReportInput{
		Title:   "duplicate ref",
		Purpose: "mortgage",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict for duplicate reference number, got %v", err)
	}
}

func TestUpdateReportDuplicateReferenceConflicts(t *testing.T) {
	owner := uuid.New()
	report := draftReport(owner)
	repo := newStubReportRepo(report)
	repo.updateErr = errors.New("UNIQUE constraint failed: reports.reference_number")
	svc := buildService(t, repo)

	ref := "VR-2025-001"
	_, err := svc.Update(context.Background(), report.ID, owner, UpdateReportInput{ReferenceNumber: &ref})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict for duplicate reference number, got %v", err)
	}
}

func TestGetHidesForeignReports(t *testing.T) {
	owner := uuid.New()
	report := draftReport(owner)
	svc := buildService(t, newStubReportRepo(report))

	if _, err := svc.Get(context.Background(), report.ID, owner); err != nil {
		t.Fatalf("owner get: %v", err)
	}

	_, err := svc.Get(context.Background(), report.ID, uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign report, got %v", err)
	}
	if typed.Message() != notFoundMessage {
		t.Fatalf("ownership failures must look like missing reports, got %q", typed.Message())
	}
}

func TestListPaginates(t *testing.T) {
	userID := uuid.New()
	repo := newStubReportRepo()
	for i := 0; i < 25; i++ {
		repo.Create(context.Background(), draftReport(userID))
	}
	repo.Create(context.Background(), draftReport(uuid.New()))
	svc := buildService(t, repo)

	resp, err := svc.List(context.Background(), userID, pagination.Params{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if resp.Total != 25 {
		t.Fatalf("expected 25 owned reports, got %d", resp.Total)
	}
	if resp.Pages != 3 {
		t.Fatalf("expected 3 pages, got %d", resp.Pages)
	}
	if len(resp.Items) != 5 {
		t.Fatalf("expected 5 items on the last page, got %d", len(resp.Items))
	}
	if resp.Page != 3 || resp.PerPage != 10 {
		t.Fatalf("page metadata wrong: %+v", resp)
	}
}

func TestListNormalizesParams(t *testing.T) {
	svc := buildService(t, newStubReportRepo())

	resp, err := svc.List(context.Background(), uuid.New(), pagination.Params{Page: 0, Limit: 0})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if resp.Page != 1 || resp.PerPage != pagination.DefaultLimit {
		t.Fatalf("expected defaults, got page=%d per_page=%d", resp.Page, resp.PerPage)
	}
	if resp.Items == nil {
		t.Fatal("items must serialize as an empty list, not null")
	}
}

func TestUpdateWritesOnlyProvidedFields(t *testing.T) {
	owner := uuid.New()
	report := draftReport(owner)
	repo := newStubReportRepo(report)
	svc := buildService(t, repo)

	status := "completed"
	dto, err := svc.Update(context.Background(), report.ID, owner, UpdateReportInput{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.Status != enums.ReportStatusCompleted {
		t.Fatalf("status not applied, got %s", dto.Status)
	}
	if len(repo.updates) != 1 {
		t.Fatalf("only the provided field should be written, got %v", repo.updates)
	}
	if _, ok := repo.updates["title"]; ok {
		t.Fatal("absent fields must not be touched")
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	owner := uuid.New()
	report := draftReport(owner)
	svc := buildService(t, newStubReportRepo(report))

	status := "archived"
	_, err := svc.Update(context.Background(), report.ID, owner, UpdateReportInput{Status: &status})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteScopedToOwner(t *testing.T) {
	owner := uuid.New()
	report := draftReport(owner)
	repo := newStubReportRepo(report)
	svc := buildService(t, repo)

	err := svc.Delete(context.Background(), report.ID, uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign delete, got %v", err)
	}

	if err := svc.Delete(context.Background(), report.ID, owner); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if len(repo.reports) != 0 {
		t.Fatal("report should be gone")
	}
}

func TestGeneratePDFPlaceholder(t *testing.T) {
	owner := uuid.New()
	report := draftReport(owner)
	svc := buildService(t, newStubReportRepo(report))

	resp, err := svc.GeneratePDF(context.Background(), report.ID, owner)
	if err != nil {
		t.Fatalf("generate pdf: %v", err)
	}
	if resp.Format != "pdf" {
		t.Fatalf("unexpected format %q", resp.Format)
	}

	_, err = svc.GenerateDocx(context.Background(), report.ID, uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("generation must be ownership checked, got %v", err)
	}
}
