package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

var identityKey = contextKey{}

// ErrNoIdentity is returned when no identity is bound to the context.
var ErrNoIdentity = errors.New("auth: no identity in context")

// WithIdentity binds an authenticated identity to the context.
// Middleware calls this after a successful token parse.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom retrieves the authenticated identity from the context.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// MustIdentity retrieves the identity, panicking if absent. Use only in
// handlers behind the auth middleware, which guarantees the identity exists.
func MustIdentity(ctx context.Context) Identity {
	id, ok := IdentityFrom(ctx)
	if !ok {
		panic("auth: identity not found in context")
	}
	return id
}
