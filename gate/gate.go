package gate

import (
	"context"
	"errors"
)

// Sentinel errors returned by Gate.Authorize.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoProfile    = errors.New("no profile resolved for user")
)

// Gate is the client-side authorization checkpoint. CLI commands declare the
// permission they need; the gate resolves the user's profile (normally via
// the cached RBAC resolver) and answers before anything touches the network.
type Gate struct {
	resolver ProfileResolver
}

// New creates a Gate backed by the given resolver.
func New(resolver ProfileResolver) *Gate {
	return &Gate{resolver: resolver}
}

// Authorize returns nil when userID holds the requested permission.
// An empty user ID (nobody signed in) is always unauthorized.
func (g *Gate) Authorize(ctx context.Context, userID string, requested Permission) error {
	if userID == "" {
		return ErrUnauthorized
	}
	profile, err := g.resolver.Resolve(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrNoProfile
	}
	if !profile.HasPermission(requested) {
		return ErrUnauthorized
	}
	return nil
}

// Can is a convenience wrapper returning bool instead of error.
func (g *Gate) Can(ctx context.Context, userID string, requested Permission) bool {
	return g.Authorize(ctx, userID, requested) == nil
}
