package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/mestore/mestore-backend/internal/access"
	"github.com/mestore/mestore-backend/pkg/enums"
	pkgerrors "github.com/mestore/mestore-backend/pkg/errors"
)

type contextKey string

const (
	ctxUserID contextKey = "user_id"
	ctxRole   contextKey = "actor_role"
)

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

func RoleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRole).(string); ok {
		return v
	}
	return ""
}

// WithUserID injects the user identifier into the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUserID, userID)
}

// WithRole injects the actor role into the context.
func WithRole(ctx context.Context, role string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxRole, role)
}

// PrincipalFromContext rebuilds the authenticated principal seeded by Auth.
func PrincipalFromContext(ctx context.Context) (access.Principal, error) {
	rawID := UserIDFromContext(ctx)
	rawRole := RoleFromContext(ctx)
	if rawID == "" || rawRole == "" {
		return access.Principal{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return access.Principal{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid principal")
	}
	role := enums.UserRole(rawRole)
	if !role.IsValid() {
		return access.Principal{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid principal")
	}
	return access.Principal{ID: id, Role: role}, nil
}
