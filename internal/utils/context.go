// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, HTTP response writing,
// JWT token generation and validation, and random storage-name generation.
package utils

import (
	"context"

	"github.com/vaantra/vaantra-server/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the context key under which the authentication middleware
// stores the resolved [models.User] of the current request.
const UserCtxKey contextKey = "user"

// UserFromContext returns the authenticated user attached to ctx by the
// authentication middleware. The second return value is false when no user
// is present (unauthenticated request or middleware not applied).
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
