package gate

import (
	"context"
	"sync"
	"time"
)

// CachedResolver wraps a ProfileResolver with TTL-based caching so repeated
// permission checks inside one command batch hit the RBAC API at most once.
type CachedResolver struct {
	inner ProfileResolver
	cache map[string]*cacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

type cacheEntry struct {
	profile   Profile
	expiresAt time.Time
}

// NewCachedResolver wraps a resolver with caching. ttl is how long a resolved
// profile is trusted before being re-fetched.
func NewCachedResolver(inner ProfileResolver, ttl time.Duration) *CachedResolver {
	return &CachedResolver{inner: inner, cache: make(map[string]*cacheEntry), ttl: ttl}
}

// Resolve returns the profile for the given user, using the cache when fresh.
func (r *CachedResolver) Resolve(ctx context.Context, userID string) (Profile, error) {
	r.mu.RLock()
	entry, ok := r.cache[userID]
	r.mu.RUnlock()

	if ok && time.Now().Before(entry.expiresAt) {
		return entry.profile, nil
	}

	profile, err := r.inner.Resolve(ctx, userID)
	if err != nil {
		// A stale entry beats refusing every command while the backend is
		// briefly unreachable.
		if ok {
			return entry.profile, nil
		}
		return nil, err
	}

	r.mu.Lock()
	r.cache[userID] = &cacheEntry{profile: profile, expiresAt: time.Now().Add(r.ttl)}
	r.mu.Unlock()

	return profile, nil
}

// Invalidate removes a user from the cache. Call it after changing that
// user's role assignments.
func (r *CachedResolver) Invalidate(userID string) {
	r.mu.Lock()
	delete(r.cache, userID)
	r.mu.Unlock()
}

// InvalidateAll clears the cache. Call it after editing role permissions.
func (r *CachedResolver) InvalidateAll() {
	r.mu.Lock()
	r.cache = make(map[string]*cacheEntry)
	r.mu.Unlock()
}
