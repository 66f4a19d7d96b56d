package gate

import "context"

// Profile is the resolved permission set of a signed-in user.
type Profile interface {
	Name() string
	HasPermission(p Permission) bool
	Permissions() []Permission
}

// ProfileResolver turns a user ID into a Profile. The production resolver
// asks the RBAC API; tests use StaticResolver.
type ProfileResolver interface {
	Resolve(ctx context.Context, userID string) (Profile, error)
}

// StaticProfile is an in-memory Profile, used by tests and for the offline
// fallback when the RBAC API is unreachable but a cached profile exists.
type StaticProfile struct {
	name        string
	permissions map[Permission]bool
}

// NewStaticProfile creates a profile holding the given permissions.
func NewStaticProfile(name string, permissions ...Permission) *StaticProfile {
	p := &StaticProfile{name: name, permissions: make(map[Permission]bool, len(permissions))}
	for _, perm := range permissions {
		p.permissions[perm] = true
	}
	return p
}

func (p *StaticProfile) Name() string { return p.name }

// HasPermission checks the requested permission with wildcard matching.
func (p *StaticProfile) HasPermission(requested Permission) bool {
	for perm := range p.permissions {
		if perm.Matches(requested) {
			return true
		}
	}
	return false
}

// Permissions returns all permissions held by this profile.
func (p *StaticProfile) Permissions() []Permission {
	perms := make([]Permission, 0, len(p.permissions))
	for perm := range p.permissions {
		perms = append(perms, perm)
	}
	return perms
}

// StaticResolver maps user IDs to fixed profiles.
type StaticResolver struct {
	profiles map[string]Profile
}

func NewStaticResolver() *StaticResolver {
	return &StaticResolver{profiles: make(map[string]Profile)}
}

// Set assigns a profile to a user.
func (r *StaticResolver) Set(userID string, profile Profile) {
	r.profiles[userID] = profile
}

// Resolve returns the profile for the given user, or nil when unknown.
func (r *StaticResolver) Resolve(_ context.Context, userID string) (Profile, error) {
	return r.profiles[userID], nil
}
