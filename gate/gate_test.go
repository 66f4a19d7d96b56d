package gate

import (
	"context"
	"errors"
	"testing"
)

func TestAuthorize(t *testing.T) {
	r := NewStaticResolver()
	r.Set("u1", NewStaticProfile("cashier", PermOrdersCreate, PermSeafoodView))
	g := New(r)

	ctx := context.Background()
	if err := g.Authorize(ctx, "u1", PermOrdersCreate); err != nil {
		t.Fatalf("expected allowed, got %v", err)
	}
	if err := g.Authorize(ctx, "u1", PermRBACManage); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := g.Authorize(ctx, "", PermSeafoodView); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("anonymous user must be unauthorized, got %v", err)
	}
	if err := g.Authorize(ctx, "ghost", PermSeafoodView); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile for unknown user, got %v", err)
	}
}

func TestCanWithWildcards(t *testing.T) {
	r := NewStaticResolver()
	r.Set("admin", NewStaticProfile("admin", PermissionSuperAdmin))
	r.Set("stock", NewStaticProfile("stock", NewPermission("seafood", "*")))
	g := New(r)

	ctx := context.Background()
	if !g.Can(ctx, "admin", PermRBACManage) {
		t.Fatal("superadmin should pass any check")
	}
	if !g.Can(ctx, "stock", PermSeafoodDelete) {
		t.Fatal("module wildcard should cover all seafood actions")
	}
	if g.Can(ctx, "stock", PermOrdersCreate) {
		t.Fatal("module wildcard must not leak into other modules")
	}
}
