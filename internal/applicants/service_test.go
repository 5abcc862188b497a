package applicants

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
)

type stubApplicantRepo struct {
	applicants map[uuid.UUID]*models.Applicant
	ownerOf    map[uuid.UUID]uuid.UUID
}

func newStubApplicantRepo() *stubApplicantRepo {
	return &stubApplicantRepo{
		applicants: map[uuid.UUID]*models.Applicant{},
		ownerOf:    map[uuid.UUID]uuid.UUID{},
	}
}

func (s *stubApplicantRepo) Create(_ context.Context, applicant *models.Applicant) (*models.Applicant, error) {
	s.applicants[applicant.ID] = applicant
	return applicant, nil
}

func (s *stubApplicantRepo) ListByReport(_ context.Context, reportID uuid.UUID) ([]models.Applicant, error) {
	var out []models.Applicant
	for _, applicant := range s.applicants {
		if applicant.ReportID == reportID {
			out = append(out, *applicant)
		}
	}
	return out, nil
}

func (s *stubApplicantRepo) FindOwned(_ context.Context, id, userID uuid.UUID) (*models.Applicant, error) {
	applicant, ok := s.applicants[id]
	if !ok || s.ownerOf[id] != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return applicant, nil
}

func (s *stubApplicantRepo) Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Applicant, error) {
	applicant, err := s.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if name, ok := updates["name"].(string); ok {
		applicant.Name = name
	}
	return applicant, nil
}

func (s *stubApplicantRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.FindOwned(ctx, id, userID); err != nil {
		return err
	}
	delete(s.applicants, id)
	return nil
}

type allowGuard struct {
	reportID uuid.UUID
	userID   uuid.UUID
}

func (g allowGuard) OwnedReportExists(_ context.Context, reportID, userID uuid.UUID) error {
	if reportID == g.reportID && userID == g.userID {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "Report not found")
}

func TestCreateApplicantChecksOwnership(t *testing.T) {
	reportID, userID := uuid.New(), uuid.New()
	svc, err := NewService(newStubApplicantRepo(), allowGuard{reportID: reportID, userID: userID})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	dto, err := svc.Create(context.Background(), userID, CreateApplicantInput{
		ReportID: reportID,
		Name:     "K. Perera",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.ContactNumbers == nil {
		t.Fatal("contact_numbers must serialize as an empty list, not null")
	}

	_, err = svc.Create(context.Background(), uuid.New(), CreateApplicantInput{
		ReportID: reportID,
		Name:     "intruder",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign report, got %v", err)
	}
}

func TestUpdateAndDeleteApplicant(t *testing.T) {
	reportID, userID := uuid.New(), uuid.New()
	repo := newStubApplicantRepo()
	applicant := &models.Applicant{ID: uuid.New(), ReportID: reportID, Name: "before"}
	repo.applicants[applicant.ID] = applicant
	repo.ownerOf[applicant.ID] = userID

	svc, err := NewService(repo, allowGuard{reportID: reportID, userID: userID})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	name := "after"
	dto, err := svc.Update(context.Background(), applicant.ID, userID, UpdateApplicantInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.Name != name {
		t.Fatalf("name not applied, got %q", dto.Name)
	}

	err = svc.Delete(context.Background(), applicant.ID, uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound || typed.Message() != notFoundMessage {
		t.Fatalf("expected %q, got %v", notFoundMessage, err)
	}

	if err := svc.Delete(context.Background(), applicant.ID, userID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}
