package api

import (
	"context"

	"github.com/klypso/agency-backend/models"
)

type keyType string

const userKey keyType = "user"

// ctxWithUser adds the authenticated user to the context
func ctxWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// userFromCtx retrieves the authenticated user from the context, or nil for
// anonymous callers.
func userFromCtx(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// isAdminCtx reports whether the context carries an admin user.
func isAdminCtx(ctx context.Context) bool {
	user := userFromCtx(ctx)
	return user != nil && user.IsAdmin
}
