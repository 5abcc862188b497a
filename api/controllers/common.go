package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/malith-nethsiri/valuerpro-backend/api/middleware"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
)

// currentUserID extracts the authenticated user from the request context.
// The auth middleware guarantees it for protected routes; a miss means the
// route was wired without it.
func currentUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user context")
	}
	return userID, nil
}
