package ctxutil

import (
	"context"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

type ctxKey string

const (
	scopeKey     ctxKey = "scope"
	requestIDKey ctxKey = "request_id"
)

// WithScope stores the active owner scope in the context. Collaborators that
// thread identity ambiently (auth sets it on login/logout) use this;
// repositories always take the scope as an explicit parameter.
func WithScope(ctx context.Context, s domain.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, s)
}

// ScopeFromCtx extracts the owner scope from the context.
// Returns the guest scope and false if none was set.
func ScopeFromCtx(ctx context.Context) (domain.Scope, bool) {
	s, ok := ctx.Value(scopeKey).(domain.Scope)
	if !ok {
		return domain.GuestScope(), false
	}
	return s, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
