package auth

import (
	"github.com/google/uuid"

	"github.com/mestore/mestore-backend/pkg/enums"
)

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserSummary describes the authenticated user returned after login.
type UserSummary struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Username string         `json:"username"`
	Role     enums.UserRole `json:"role"`
}

// LoginResponse contains the token and user produced by a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}
