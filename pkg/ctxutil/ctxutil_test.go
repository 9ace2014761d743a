package ctxutil

import (
	"context"
	"testing"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/domain"
)

func TestWithScope_And_ScopeFromCtx(t *testing.T) {
	t.Parallel()

	s := domain.UserScope("user-a")
	ctx := WithScope(context.Background(), s)

	got, ok := ScopeFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for stored scope")
	}
	if got != s {
		t.Fatalf("expected %s, got %s", s, got)
	}
}

func TestScopeFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := ScopeFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if !got.IsGuest() {
		t.Fatalf("expected guest scope, got %s", got)
	}
}

func TestScopeFromCtx_GuestStored(t *testing.T) {
	t.Parallel()

	ctx := WithScope(context.Background(), domain.GuestScope())

	got, ok := ScopeFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true when guest scope was stored explicitly")
	}
	if !got.IsGuest() {
		t.Fatalf("expected guest scope, got %s", got)
	}
}

func TestScopeFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("scope"), "user-a")

	got, ok := ScopeFromCtx(ctx)
	if ok {
		t.Fatal("expected ok=false for wrong type")
	}
	if !got.IsGuest() {
		t.Fatalf("expected guest scope, got %s", got)
	}
}

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	got := RequestIDFromCtx(ctx)
	if got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got := RequestIDFromCtx(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("request_id"), 12345)

	got := RequestIDFromCtx(ctx)
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}
