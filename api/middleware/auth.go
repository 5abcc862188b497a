package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/malith-nethsiri/valuerpro-backend/api/responses"
	pkgAuth "github.com/malith-nethsiri/valuerpro-backend/pkg/auth"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/config"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/logger"
)

// UserLoader resolves the account behind a token so deleted or deactivated
// users are rejected even while their token is still fresh.
type UserLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Auth validates a bearer token and seeds the request context with the caller.
func Auth(cfg config.JWTConfig, users UserLoader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}
			if claims.UserID == uuid.Nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid token"))
				return
			}

			if users != nil {
				user, err := users.FindByID(r.Context(), claims.UserID)
				if err != nil {
					responses.WriteError(r.Context(), logg, w, err)
					return
				}
				if user == nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid token"))
					return
				}
				if !user.IsActive {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "account is inactive"))
					return
				}
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID.String())

			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
