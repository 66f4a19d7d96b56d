// Package gate answers "may this user run this command" on the client, so an
// operator without the right role is refused locally before any network call.
// The backend remains the real enforcement point; this gate only mirrors it.
package gate

import "strings"

// Permission is an allowed action on a backend module, in the backend's
// codename form "module:action" (e.g. "seafood:create", "rbac:assign").
type Permission string

// NewPermission builds a permission from module and action.
func NewPermission(module, action string) Permission {
	return Permission(module + ":" + action)
}

// Parse splits a permission into module and action.
func (p Permission) Parse() (module, action string) {
	parts := strings.SplitN(string(p), ":", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

// Wildcards for super permissions
const (
	WildcardAll                 = "*"
	PermissionSuperAdmin Permission = "*:*"
)

// Matches checks whether this held permission satisfies a requested one.
// "*:*" matches everything; "seafood:*" matches every seafood action.
func (p Permission) Matches(requested Permission) bool {
	if p == PermissionSuperAdmin {
		return true
	}
	if p == requested {
		return true
	}
	mod, act := p.Parse()
	reqMod, _ := requested.Parse()
	return mod == reqMod && act == WildcardAll
}

// Permissions the POS client cares about, matching the backend catalog.
const (
	PermSeafoodView   Permission = "seafood:view"
	PermSeafoodCreate Permission = "seafood:create"
	PermSeafoodUpdate Permission = "seafood:update"
	PermSeafoodDelete Permission = "seafood:delete"
	PermOrdersView    Permission = "orders:view"
	PermOrdersCreate  Permission = "orders:create"
	PermOrdersUpdate  Permission = "orders:update"
	PermRBACView      Permission = "rbac:view"
	PermRBACManage    Permission = "rbac:manage"
	PermUsersView     Permission = "users:view"
	PermStatsView     Permission = "stats:view"
)
