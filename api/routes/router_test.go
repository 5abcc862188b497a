package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/malith-nethsiri/valuerpro-backend/internal/applicants"
	"github.com/malith-nethsiri/valuerpro-backend/internal/auth"
	"github.com/malith-nethsiri/valuerpro-backend/internal/comparables"
	"github.com/malith-nethsiri/valuerpro-backend/internal/legalaspects"
	"github.com/malith-nethsiri/valuerpro-backend/internal/photos"
	"github.com/malith-nethsiri/valuerpro-backend/internal/properties"
	"github.com/malith-nethsiri/valuerpro-backend/internal/reports"
	"github.com/malith-nethsiri/valuerpro-backend/internal/uploads"
	"github.com/malith-nethsiri/valuerpro-backend/internal/users"
	"github.com/malith-nethsiri/valuerpro-backend/internal/valuations"
	"github.com/malith-nethsiri/valuerpro-backend/internal/valuerprofile"
	pkgAuth "github.com/malith-nethsiri/valuerpro-backend/pkg/auth"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/config"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/logger"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/pagination"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubUserLoader struct{}

func (stubUserLoader) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	return &models.User{ID: id, IsActive: true}, nil
}

type stubAuthService struct{}

func (stubAuthService) Register(context.Context, auth.RegisterRequest) (*users.UserDTO, error) {
	return &users.UserDTO{}, nil
}

func (stubAuthService) Login(context.Context, auth.LoginRequest) (*auth.LoginResponse, error) {
	return &auth.LoginResponse{TokenType: "bearer"}, nil
}

func (stubAuthService) CurrentUser(context.Context, uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{}, nil
}

type stubReportService struct{}

func (stubReportService) Create(context.Context, uuid.UUID, reports.CreateReportInput) (*reports.ReportDTO, error) {
	return &reports.ReportDTO{}, nil
}

func (stubReportService) List(context.Context, uuid.UUID, pagination.Params) (*reports.ListResponse, error) {
	return &reports.ListResponse{Items: []*reports.ReportDTO{}}, nil
}

func (stubReportService) Get(context.Context, uuid.UUID, uuid.UUID) (*reports.ReportDTO, error) {
	return &reports.ReportDTO{}, nil
}

func (stubReportService) Update(context.Context, uuid.UUID, uuid.UUID, reports.UpdateReportInput) (*reports.ReportDTO, error) {
	return &reports.ReportDTO{}, nil
}

func (stubReportService) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (stubReportService) GeneratePDF(context.Context, uuid.UUID, uuid.UUID) (*reports.GenerateFileResponse, error) {
	return &reports.GenerateFileResponse{}, nil
}

func (stubReportService) GenerateDocx(context.Context, uuid.UUID, uuid.UUID) (*reports.GenerateFileResponse, error) {
	return &reports.GenerateFileResponse{}, nil
}

func (stubReportService) OwnedReportExists(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type stubPropertyService struct{}

func (stubPropertyService) Create(context.Context, uuid.UUID, properties.CreatePropertyInput) (*properties.PropertyDTO, error) {
	return &properties.PropertyDTO{}, nil
}

func (stubPropertyService) GetByReport(context.Context, uuid.UUID, uuid.UUID) (*properties.PropertyDTO, error) {
	return nil, nil
}

func (stubPropertyService) Update(context.Context, uuid.UUID, uuid.UUID, properties.UpdatePropertyInput) (*properties.PropertyDTO, error) {
	return &properties.PropertyDTO{}, nil
}

func (stubPropertyService) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type stubValuationService struct{}

func (stubValuationService) Create(context.Context, uuid.UUID, valuations.CreateValuationInput) (*valuations.ValuationDTO, error) {
	return &valuations.ValuationDTO{}, nil
}

func (stubValuationService) GetByReport(context.Context, uuid.UUID, uuid.UUID) (*valuations.ValuationDTO, error) {
	return nil, nil
}

func (stubValuationService) Update(context.Context, uuid.UUID, uuid.UUID, valuations.UpdateValuationInput) (*valuations.ValuationDTO, error) {
	return &valuations.ValuationDTO{}, nil
}

func (stubValuationService) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type stubComparableService struct{}

func (stubComparableService) Create(context.Context, uuid.UUID, comparables.CreateComparableInput) (*comparables.ComparableDTO, error) {
	return &comparables.ComparableDTO{}, nil
}

func (stubComparableService) ListByReport(context.Context, uuid.UUID, uuid.UUID) ([]*comparables.ComparableDTO, error) {
	return []*comparables.ComparableDTO{}, nil
}

func (stubComparableService) Update(context.Context, uuid.UUID, uuid.UUID, comparables.UpdateComparableInput) (*comparables.ComparableDTO, error) {
	return &comparables.ComparableDTO{}, nil
}

func (stubComparableService) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type stubPhotoService struct{}

func (stubPhotoService) Create(context.Context, uuid.UUID, photos.CreatePhotoInput) (*photos.PhotoDTO, error) {
	return &photos.PhotoDTO{}, nil
}

func (stubPhotoService) ListByReport(context.Context, uuid.UUID, uuid.UUID) ([]*photos.PhotoDTO, error) {
	return []*photos.PhotoDTO{}, nil
}

func (stubPhotoService) Update(context.Context, uuid.UUID, uuid.UUID, photos.UpdatePhotoInput) (*photos.PhotoDTO, error) {
	return &photos.PhotoDTO{}, nil
}

func (stubPhotoService) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type stubLegalAspectService struct{}

func (stubLegalAspectService) Create(context.Context, uuid.UUID, legalaspects.CreateLegalAspectInput) (*legalaspects.LegalAspectDTO, error) {
	return &legalaspects.LegalAspectDTO{}, nil
}

func (stubLegalAspectService) ListByReport(context.Context, uuid.UUID, uuid.UUID) ([]*legalaspects.LegalAspectDTO, error) {
	return []*legalaspects.LegalAspectDTO{}, nil
}

func (stubLegalAspectService) Update(context.Context, uuid.UUID, uuid.UUID, legalaspects.UpdateLegalAspectInput) (*legalaspects.LegalAspectDTO, error) {
	return &legalaspects.LegalAspectDTO{}, nil
}

func (stubLegalAspectService) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type stubApplicantService struct{}

func (stubApplicantService) Create(context.Context, uuid.UUID, applicants.CreateApplicantInput) (*applicants.ApplicantDTO, error) {
	return &applicants.ApplicantDTO{}, nil
}

func (stubApplicantService) ListByReport(context.Context, uuid.UUID, uuid.UUID) ([]*applicants.ApplicantDTO, error) {
	return []*applicants.ApplicantDTO{}, nil
}

func (stubApplicantService) Update(context.Context, uuid.UUID, uuid.UUID, applicants.UpdateApplicantInput) (*applicants.ApplicantDTO, error) {
	return &applicants.ApplicantDTO{}, nil
}

func (stubApplicantService) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type stubProfileService struct{}

func (stubProfileService) Get(context.Context, uuid.UUID) (*valuerprofile.ProfileDTO, error) {
	return nil, nil
}

func (stubProfileService) Create(context.Context, uuid.UUID, valuerprofile.CreateProfileInput) (*valuerprofile.ProfileDTO, error) {
	return &valuerprofile.ProfileDTO{}, nil
}

func (stubProfileService) Update(context.Context, uuid.UUID, valuerprofile.UpdateProfileInput) (*valuerprofile.ProfileDTO, error) {
	return &valuerprofile.ProfileDTO{}, nil
}

func (stubProfileService) CreateApplicant(context.Context, uuid.UUID, applicants.CreateApplicantInput) (*applicants.ApplicantDTO, error) {
	return &applicants.ApplicantDTO{}, nil
}

type stubUploadService struct{}

func (stubUploadService) SaveSingle(context.Context, uploads.Upload) (*uploads.Result, error) {
	return &uploads.Result{}, nil
}

func (stubUploadService) SaveBatch(context.Context, []uploads.Upload) ([]uploads.Result, error) {
	return []uploads.Result{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "issuer",
			ExpirationMinutes: 60,
		},
		Upload: config.UploadConfig{
			Dir:               "uploads",
			MaxFileSizeMB:     10,
			AllowedExtensions: []string{".jpg", ".png", ".pdf"},
			MaxBatchFiles:     10,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		nil, // redis
		nil, // metrics
		nil, // metrics handler
		stubUserLoader{},
		stubAuthService{},
		stubReportService{},
		stubPropertyService{},
		stubValuationService{},
		stubComparableService{},
		stubPhotoService{},
		stubLegalAspectService{},
		stubApplicantService{},
		stubProfileService{},
		stubUploadService{},
	)
}

func buildToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "valuer@example.com",
		JTI:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLiveIsPublic(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestProtectedGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, path := range []string{
		"/api/v1/reports",
		"/api/v1/properties?report_id=" + uuid.NewString(),
		"/api/v1/valuer-profile",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s got %d", path, resp.Code)
		}
	}
}

func TestProtectedGroupAcceptsValidJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestStubGroupsRequireAuth(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, path := range []string{
		"/api/v1/ocr/extract_text",
		"/api/v1/ai/parse_survey_plan",
		"/api/v1/maps/geocode",
	} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s got %d", path, resp.Code)
		}
	}
}

func TestAuthMeRequiresToken(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestLogoutIsPublic(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
