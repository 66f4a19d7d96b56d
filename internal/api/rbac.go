package api

import (
	"context"
	"net/url"

	"github.com/thuysan/seapos/internal/models"
)

func (c *Client) ListRoles(ctx context.Context) ([]models.Role, error) {
	var out []models.Role
	if err := c.get(ctx, "/api/rbac/roles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRole(ctx context.Context, id string) (*models.Role, error) {
	var out models.Role
	if err := c.get(ctx, "/api/rbac/roles/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRole(ctx context.Context, req models.CreateRoleRequest) (*models.Role, error) {
	var out models.Role
	if err := c.post(ctx, "/api/rbac/roles", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRole(ctx context.Context, id string, req models.UpdateRoleRequest) (*models.Role, error) {
	var out models.Role
	if err := c.put(ctx, "/api/rbac/roles/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRole soft-deletes by default; hard removes the row entirely.
func (c *Client) DeleteRole(ctx context.Context, id string, hard bool) error {
	q := url.Values{}
	if hard {
		q.Set("hard_delete", "true")
	}
	return c.delete(ctx, "/api/rbac/roles/"+id, q)
}

func (c *Client) RolePermissions(ctx context.Context, roleID string) ([]models.Permission, error) {
	var out []models.Permission
	if err := c.get(ctx, "/api/rbac/roles/"+roleID+"/permissions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignPermissionsToRole replaces the role's permission set.
func (c *Client) AssignPermissionsToRole(ctx context.Context, roleID string, permissionIDs []string) error {
	body := map[string][]string{"permission_ids": permissionIDs}
	return c.put(ctx, "/api/rbac/roles/"+roleID+"/permissions", body, nil)
}

func (c *Client) ListPermissions(ctx context.Context) ([]models.Permission, error) {
	var out []models.Permission
	if err := c.get(ctx, "/api/rbac/permissions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePermission(ctx context.Context, req models.CreatePermissionRequest) (*models.Permission, error) {
	var out models.Permission
	if err := c.post(ctx, "/api/rbac/permissions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePermission(ctx context.Context, id string, patch map[string]any) (*models.Permission, error) {
	var out models.Permission
	if err := c.put(ctx, "/api/rbac/permissions/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePermission(ctx context.Context, id string, hard bool) error {
	q := url.Values{}
	if hard {
		q.Set("hard_delete", "true")
	}
	return c.delete(ctx, "/api/rbac/permissions/"+id, q)
}

func (c *Client) AssignRoleToUser(ctx context.Context, userID, roleID string) error {
	body := map[string]string{"user_id": userID, "role_id": roleID}
	return c.post(ctx, "/api/rbac/user-roles", body, nil)
}

func (c *Client) BulkAssignRoleToUsers(ctx context.Context, userIDs []string, roleID string) error {
	body := map[string]any{"user_ids": userIDs, "role_id": roleID}
	return c.post(ctx, "/api/rbac/user-roles/bulk-assign-users", body, nil)
}

// UserPermissions resolves the effective permission codenames of one user.
// The client-side gate builds its profile from this.
func (c *Client) UserPermissions(ctx context.Context, userID string) ([]models.Permission, error) {
	var out []models.Permission
	if err := c.get(ctx, "/api/rbac/user-roles/"+userID+"/permissions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RoleStats(ctx context.Context) (*models.RoleStats, error) {
	var out models.RoleStats
	if err := c.get(ctx, "/api/rbac/stats/roles", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PermissionStats(ctx context.Context) (*models.PermissionStats, error) {
	var out models.PermissionStats
	if err := c.get(ctx, "/api/rbac/stats/permissions", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UserRoleStats(ctx context.Context) (*models.UserRoleStats, error) {
	var out models.UserRoleStats
	if err := c.get(ctx, "/api/rbac/stats/user-roles", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
