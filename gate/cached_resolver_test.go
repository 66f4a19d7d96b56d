package gate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingResolver struct {
	calls atomic.Int64
	inner ProfileResolver
	fail  atomic.Bool
}

func (r *countingResolver) Resolve(ctx context.Context, userID string) (Profile, error) {
	r.calls.Add(1)
	if r.fail.Load() {
		return nil, errors.New("rbac api down")
	}
	return r.inner.Resolve(ctx, userID)
}

func TestCachedResolverCaches(t *testing.T) {
	static := NewStaticResolver()
	static.Set("u1", NewStaticProfile("cashier", PermOrdersCreate))
	counting := &countingResolver{inner: static}
	cached := NewCachedResolver(counting, time.Minute)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := cached.Resolve(ctx, "u1"); err != nil {
			t.Fatalf("resolve: %v", err)
		}
	}
	if got := counting.calls.Load(); got != 1 {
		t.Fatalf("expected 1 upstream call, got %d", got)
	}

	cached.Invalidate("u1")
	if _, err := cached.Resolve(ctx, "u1"); err != nil {
		t.Fatalf("resolve after invalidate: %v", err)
	}
	if got := counting.calls.Load(); got != 2 {
		t.Fatalf("expected refetch after invalidate, got %d calls", got)
	}
}

func TestCachedResolverServesStaleOnError(t *testing.T) {
	static := NewStaticResolver()
	static.Set("u1", NewStaticProfile("cashier", PermOrdersCreate))
	counting := &countingResolver{inner: static}
	cached := NewCachedResolver(counting, -time.Second) // entries expire immediately

	ctx := context.Background()
	if _, err := cached.Resolve(ctx, "u1"); err != nil {
		t.Fatalf("prime cache: %v", err)
	}

	counting.fail.Store(true)
	profile, err := cached.Resolve(ctx, "u1")
	if err != nil {
		t.Fatalf("expected stale profile, got error %v", err)
	}
	if profile == nil || !profile.HasPermission(PermOrdersCreate) {
		t.Fatal("stale profile should still carry its permissions")
	}

	// No cached entry at all -> error propagates.
	if _, err := cached.Resolve(ctx, "u2"); err == nil {
		t.Fatal("expected error for uncached user while upstream is down")
	}
}
