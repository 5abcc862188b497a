package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/internal/users"
	pkgAuth "github.com/malith-nethsiri/valuerpro-backend/pkg/auth"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/config"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/security"
)

type stubUserRepo struct {
	byEmail   map[string]*models.User
	byID      map[uuid.UUID]*models.User
	created   []users.CreateUserDTO
	createErr error
}

func newStubUserRepo(seed ...*models.User) *stubUserRepo {
	repo := &stubUserRepo{
		byEmail: map[string]*models.User{},
		byID:    map[uuid.UUID]*models.User{},
	}
	for _, u := range seed {
		repo.byEmail[u.Email] = u
		repo.byID[u.ID] = u
	}
	return repo
}

func (s *stubUserRepo) Create(_ context.Context, dto users.CreateUserDTO) (*models.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, dto)
	user := dto.ToModel()
	s.byEmail[user.Email] = user
	s.byID[user.ID] = user
	return user, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "valuerpro", ExpirationMinutes: 30}
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordConfig())
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func buildTestService(t *testing.T, repo *stubUserRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		JWTConfig:      testJWTConfig(),
		PasswordConfig: testPasswordConfig(),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestRegisterCreatesUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := buildTestService(t, repo)

	fullName := "Test Valuer"
	dto, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "New.Valuer@Example.com",
		Password: "long-enough-password",
		FullName: &fullName,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if dto.Email != "new.valuer@example.com" {
		t.Fatalf("email should be lowercased, got %q", dto.Email)
	}
	if !dto.IsActive {
		t.Fatal("new accounts should be active")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 create call, got %d", len(repo.created))
	}
	if strings.Contains(repo.created[0].PasswordHash, "long-enough-password") {
		t.Fatal("password must not be stored in the clear")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	existing := &models.User{ID: uuid.New(), Email: "taken@example.com", IsActive: true}
	svc := buildTestService(t, newStubUserRepo(existing))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "long-enough-password",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestRegisterDuplicateEmailRaceConflicts(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = errors.New(`duplicate key value violates unique constraint "idx_users_email"`)
	svc := buildTestService(t, repo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "racer@example.com",
		Password: "long-enough-password",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict when the insert loses the race, got %v", err)
	}
	if typed.Message() != "Email already registered" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestLoginReturnsBearerToken(t *testing.T) {
	password := "login-secret-pass"
	user := &models.User{
		ID:           uuid.New(),
		Email:        "valuer@example.com",
		PasswordHash: mustHashPassword(t, password),
		IsActive:     true,
	}
	svc := buildTestService(t, newStubUserRepo(user))

	resp, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: password})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("expected bearer token type, got %q", resp.TokenType)
	}
	if resp.User == nil || resp.User.ID != user.ID {
		t.Fatal("login response must include the public user")
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("token carries wrong user id")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Email:        "valuer@example.com",
		PasswordHash: mustHashPassword(t, "correct-password"),
		IsActive:     true,
	}
	svc := buildTestService(t, newStubUserRepo(user))

	_, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: "wrong-password"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if typed.Message() != invalidCredentialsMessage {
		t.Fatalf("credential failures must use the generic message, got %q", typed.Message())
	}
}

func TestLoginRejectsUnknownEmailWithSameMessage(t *testing.T) {
	svc := buildTestService(t, newStubUserRepo())

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if typed.Message() != invalidCredentialsMessage {
		t.Fatalf("unknown emails must not be distinguishable, got %q", typed.Message())
	}
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	password := "inactive-pass-123"
	user := &models.User{
		ID:           uuid.New(),
		Email:        "inactive@example.com",
		PasswordHash: mustHashPassword(t, password),
		IsActive:     false,
	}
	svc := buildTestService(t, newStubUserRepo(user))

	_, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: password})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestCurrentUser(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "me@example.com", IsActive: true}
	svc := buildTestService(t, newStubUserRepo(user))

	dto, err := svc.CurrentUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if dto.ID != user.ID {
		t.Fatalf("unexpected user %s", dto.ID)
	}

	_, err = svc.CurrentUser(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for missing user, got %v", err)
	}
}
