// Package reqctx holds the typed request-scoped values shared by the
// transport layer, usecases and the log handler.
package reqctx

import (
	"context"

	"github.com/ErlanBelekov/jobboard/internal/domain"
	"github.com/google/uuid"
)

type requestIDKey struct{}

type userKey struct{}

// NewRequestID generates a random UUID v4 request ID.
func NewRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a copy of ctx with the request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID extracts the request ID from ctx. Returns "" if absent.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithUser attaches the authenticated user to ctx.
func WithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// User returns the authenticated user, or false when the request never
// passed the auth middleware.
func User(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey{}).(*domain.User)
	return u, ok && u != nil
}
