// Package policy wires the client-side gate to the backend's RBAC data.
package policy

import (
	"context"

	"github.com/thuysan/seapos/gate"
	"github.com/thuysan/seapos/internal/models"
)

// PermissionSource is the slice of the API client the resolver needs.
type PermissionSource interface {
	UserPermissions(ctx context.Context, userID string) ([]models.Permission, error)
}

// APIProfileResolver resolves a user's effective permissions from the RBAC
// API. It implements gate.ProfileResolver; wrap it in a gate.CachedResolver
// so a command batch hits the network at most once.
type APIProfileResolver struct {
	source PermissionSource
}

func NewAPIProfileResolver(source PermissionSource) *APIProfileResolver {
	return &APIProfileResolver{source: source}
}

// Resolve fetches the user's permissions and adapts them to a gate profile.
func (r *APIProfileResolver) Resolve(ctx context.Context, userID string) (gate.Profile, error) {
	perms, err := r.source.UserPermissions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &apiProfileAdapter{userID: userID, permissions: perms}, nil
}

// apiProfileAdapter wraps backend permission records as a gate.Profile.
type apiProfileAdapter struct {
	userID      string
	permissions []models.Permission
}

func (a *apiProfileAdapter) Name() string { return a.userID }

// HasPermission checks the requested permission against the backend records,
// wildcard rules included.
func (a *apiProfileAdapter) HasPermission(requested gate.Permission) bool {
	for _, p := range a.permissions {
		if toGatePermission(p).Matches(requested) {
			return true
		}
	}
	return false
}

// Permissions returns all backend permissions in gate form.
func (a *apiProfileAdapter) Permissions() []gate.Permission {
	out := make([]gate.Permission, len(a.permissions))
	for i, p := range a.permissions {
		out[i] = toGatePermission(p)
	}
	return out
}

// toGatePermission prefers the backend codename when it is already in
// module:action form, otherwise composes it from the parts.
func toGatePermission(p models.Permission) gate.Permission {
	if mod, act := gate.Permission(p.Codename).Parse(); mod != "" && act != "" {
		return gate.Permission(p.Codename)
	}
	return gate.NewPermission(p.Module, p.Action)
}
