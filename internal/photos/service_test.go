package photos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
)

type stubPhotoRepo struct {
	photos  map[uuid.UUID]*models.Photo
	ownerOf map[uuid.UUID]uuid.UUID
}

func newStubPhotoRepo() *stubPhotoRepo {
	return &stubPhotoRepo{
		photos:  map[uuid.UUID]*models.Photo{},
		ownerOf: map[uuid.UUID]uuid.UUID{},
	}
}

func (s *stubPhotoRepo) Create(_ context.Context, photo *models.Photo) (*models.Photo, error) {
	s.photos[photo.ID] = photo
	return photo, nil
}

func (s *stubPhotoRepo) ListByReport(_ context.Context, reportID uuid.UUID) ([]models.Photo, error) {
	var out []models.Photo
	for _, photo := range s.photos {
		if photo.ReportID == reportID {
			out = append(out, *photo)
		}
	}
	return out, nil
}

func (s *stubPhotoRepo) FindOwned(_ context.Context, id, userID uuid.UUID) (*models.Photo, error) {
	photo, ok := s.photos[id]
	if !ok || s.ownerOf[id] != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return photo, nil
}

func (s *stubPhotoRepo) Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Photo, error) {
	photo, err := s.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if caption, ok := updates["caption"].(string); ok {
		photo.Caption = &caption
	}
	return photo, nil
}

func (s *stubPhotoRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.FindOwned(ctx, id, userID); err != nil {
		return err
	}
	delete(s.photos, id)
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

func TestCreatePhotoParsesType(t *testing.T) {
	reportID, userID := uuid.New(), uuid.New()
	svc, err := NewService(newStubPhotoRepo(), allowGuard{reportID: reportID, userID: userID})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	dto, err := svc.Create(context.Background(), userID, CreatePhotoInput{
		ReportID: reportID,
		FileURL:  "/uploads/abc.jpg",
		Filename: "front.jpg",
		Type:     "exterior",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Type != enums.PhotoTypeExterior {
		t.Fatalf("unexpected type %s", dto.Type)
	}
	if dto.SequenceOrder != 0 {
		t.Fatalf("sequence order should default to 0, got %d", dto.SequenceOrder)
	}

	_, err = svc.Create(context.Background(), userID, CreatePhotoInput{
		ReportID: reportID,
		FileURL:  "/uploads/def.jpg",
		Filename: "x.jpg",
		Type:     "panorama",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreatePhotoChecksReportOwnership(t *testing.T) {
	reportID, userID := uuid.New(), uuid.New()
	svc, err := NewService(newStubPhotoRepo(), allowGuard{reportID: reportID, userID: userID})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Create(context.Background(), uuid.New(), CreatePhotoInput{
		ReportID: reportID,
		FileURL:  "/uploads/abc.jpg",
		Filename: "front.jpg",
		Type:     "exterior",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign report, got %v", err)
	}
}

func TestDeletePhotoScopedToOwner(t *testing.T) {
	reportID, userID := uuid.New(), uuid.New()
	repo := newStubPhotoRepo()
	photo := &models.Photo{ID: uuid.New(), ReportID: reportID, Type: enums.PhotoTypeInterior}
	repo.photos[photo.ID] = photo
	repo.ownerOf[photo.ID] = userID

	svc, err := NewService(repo, allowGuard{reportID: reportID, userID: userID})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	err = svc.Delete(context.Background(), photo.ID, uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound || typed.Message() != notFoundMessage {
		t.Fatalf("expected %q, got %v", notFoundMessage, err)
	}

	if err := svc.Delete(context.Background(), photo.ID, userID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}
