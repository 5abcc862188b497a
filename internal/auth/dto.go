package auth

import (
	"github.com/malith-nethsiri/valuerpro-backend/internal/users"
)

// RegisterRequest contains the payload required for creating an account.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName *string `json:"full_name,omitempty"`
}

// LoginRequest carries the credentials from the form-encoded login body.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse is the OAuth2-style token payload returned on login.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	User        *users.UserDTO `json:"user"`
}
