package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/thuysan/seapos/gate"
	"github.com/thuysan/seapos/internal/models"
)

type fakeSource struct {
	perms map[string][]models.Permission
	err   error
}

func (f *fakeSource) UserPermissions(_ context.Context, userID string) ([]models.Permission, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.perms[userID], nil
}

func TestResolveBuildsProfile(t *testing.T) {
	src := &fakeSource{perms: map[string][]models.Permission{
		"u1": {
			{Codename: "orders:create", Module: "orders", Action: "create"},
			{Codename: "seafood_view", Module: "seafood", Action: "view"}, // non-colon codename
		},
	}}
	r := NewAPIProfileResolver(src)

	profile, err := r.Resolve(context.Background(), "u1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !profile.HasPermission(gate.PermOrdersCreate) {
		t.Fatal("expected orders:create from codename")
	}
	if !profile.HasPermission(gate.PermSeafoodView) {
		t.Fatal("expected seafood:view composed from module/action")
	}
	if profile.HasPermission(gate.PermRBACManage) {
		t.Fatal("unexpected rbac:manage")
	}
	if len(profile.Permissions()) != 2 {
		t.Fatalf("expected 2 permissions, got %d", len(profile.Permissions()))
	}
}

func TestResolveWildcardFromBackend(t *testing.T) {
	src := &fakeSource{perms: map[string][]models.Permission{
		"admin": {{Codename: "*:*", Module: "*", Action: "*"}},
	}}
	r := NewAPIProfileResolver(src)
	profile, err := r.Resolve(context.Background(), "admin")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !profile.HasPermission(gate.PermRBACManage) || !profile.HasPermission(gate.PermSeafoodDelete) {
		t.Fatal("superadmin wildcard should cover everything")
	}
}

func TestResolvePropagatesError(t *testing.T) {
	src := &fakeSource{err: errors.New("rbac api down")}
	r := NewAPIProfileResolver(src)
	if _, err := r.Resolve(context.Background(), "u1"); err == nil {
		t.Fatal("expected error")
	}
}
