package properties

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
)

type stubPropertyRepo struct {
	properties map[uuid.UUID]*models.Property
	ownerOf    map[uuid.UUID]uuid.UUID // property id -> report owner
	updates    map[string]any
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{
		properties: map[uuid.UUID]*models.Property{},
		ownerOf:    map[uuid.UUID]uuid.UUID{},
	}
}

func (s *stubPropertyRepo) Create(_ context.Context, property *models.Property) (*models.Property, error) {
	s.properties[property.ID] = property
	return property, nil
}

func (s *stubPropertyRepo) FindByReport(_ context.Context, reportID uuid.UUID) (*models.Property, error) {
	for _, property := range s.properties {
		if property.ReportID == reportID {
			return property, nil
		}
	}
	return nil, nil
}

func (s *stubPropertyRepo) FindOwned(_ context.Context, id, userID uuid.UUID) (*models.Property, error) {
	property, ok := s.properties[id]
	if !ok || s.ownerOf[id] != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return property, nil
}

func (s *stubPropertyRepo) Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Property, error) {
	property, err := s.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	s.updates = updates
	if address, ok := updates["address"].(string); ok {
		property.Address = &address
	}
	return property, nil
}

func (s *stubPropertyRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.FindOwned(ctx, id, userID); err != nil {
		return err
	}
	delete(s.properties, id)
	return nil
}

// allowGuard admits a fixed (report, user) pair and 404s everything else.
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

func TestCreateRequiresOwnedReport(t *testing.T) {
	reportID, userID := uuid.New(), uuid.New()
	repo := newStubPropertyRepo()
	svc, err := NewService(repo, allowGuard{reportID: reportID, userID: userID})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Create(context.Background(), uuid.New(), CreatePropertyInput{ReportID: reportID})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("foreign user must see not found, got %v", err)
	}
	if typed.Message() != "Report not found" {
		t.Fatalf("ownership failures must cite the report, got %q", typed.Message())
	}

	dto, err := svc.Create(context.Background(), userID, CreatePropertyInput{ReportID: reportID})
	if err != nil {
		t.Fatalf("owner create: %v", err)
	}
	if dto.ReportID != reportID {
		t.Fatalf("property not attached to report")
	}
	if dto.DeedNumbers == nil {
		t.Fatal("deed_numbers must serialize as an empty list, not null")
	}
}

func TestGetByReportReturnsNilWhenAbsent(t *testing.T) {
	reportID, userID := uuid.New(), uuid.New()
	svc, err := NewService(newStubPropertyRepo(), allowGuard{reportID: reportID, userID: userID})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	dto, err := svc.GetByReport(context.Background(), reportID, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if dto != nil {
		t.Fatalf("expected nil singleton, got %+v", dto)
	}
}

func TestUpdateAppliesOnlyProvidedColumns(t *testing.T) {
	reportID, userID := uuid.New(), uuid.New()
	repo := newStubPropertyRepo()
	property := &models.Property{ID: uuid.New(), ReportID: reportID}
	repo.properties[property.ID] = property
	repo.ownerOf[property.ID] = userID

	svc, err := NewService(repo, allowGuard{reportID: reportID, userID: userID})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	address := "12 Temple Road, Kandy"
	dto, err := svc.Update(context.Background(), property.ID, userID, UpdatePropertyInput{Address: &address})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.Address == nil || *dto.Address != address {
		t.Fatalf("address not applied")
	}
	if len(repo.updates) != 1 {
		t.Fatalf("only address should be written, got %v", repo.updates)
	}
}

func TestUpdateForeignPropertyIsNotFound(t *testing.T) {
	reportID, userID := uuid.New(), uuid.New()
	repo := newStubPropertyRepo()
	property := &models.Property{ID: uuid.New(), ReportID: reportID}
	repo.properties[property.ID] = property
	repo.ownerOf[property.ID] = userID

	svc, err := NewService(repo, allowGuard{reportID: reportID, userID: userID})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Update(context.Background(), property.ID, uuid.New(), UpdatePropertyInput{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != notFoundMessage {
		t.Fatalf("expected %q, got %q", notFoundMessage, typed.Message())
	}
}

func TestDeleteScopedToOwner(t *testing.T) {
	reportID, userID := uuid.New(), uuid.New()
	repo := newStubPropertyRepo()
	property := &models.Property{ID: uuid.New(), ReportID: reportID}
	repo.properties[property.ID] = property
	repo.ownerOf[property.ID] = userID

	svc, err := NewService(repo, allowGuard{reportID: reportID, userID: userID})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	if err := svc.Delete(context.Background(), property.ID, uuid.New()); pkgerrors.As(err) == nil {
		t.Fatalf("foreign delete must fail, got %v", err)
	}
	if err := svc.Delete(context.Background(), property.ID, userID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if len(repo.properties) != 0 {
		t.Fatal("property should be gone")
	}
}
