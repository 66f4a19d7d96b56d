package cli

import (
	"context"
	"errors"
	"flag"
	"strings"

	"github.com/thuysan/seapos/gate"
	"github.com/thuysan/seapos/internal/models"
)

func (a *App) cmdRBAC(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: posctl rbac roles|permissions|role-permissions|assign|stats ...")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "roles":
		return a.rbacRoles(ctx, rest)
	case "permissions":
		return a.rbacPermissions(ctx, rest)
	case "role-permissions":
		return a.rbacRolePermissions(ctx, rest)
	case "assign":
		return a.rbacAssign(ctx, rest)
	case "stats":
		return a.rbacStats(ctx)
	default:
		return errors.New("usage: posctl rbac roles|permissions|role-permissions|assign|stats ...")
	}
}

func (a *App) rbacRoles(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		if err := a.requirePermission(ctx, gate.PermRBACView); err != nil {
			return a.fail(err)
		}
		roles, err := a.client.ListRoles(ctx)
		if err != nil {
			return a.fail(err)
		}
		a.renderRoles(roles)
		return nil
	case "show":
		if len(rest) != 1 {
			return errors.New("usage: posctl rbac roles show <id>")
		}
		if err := a.requirePermission(ctx, gate.PermRBACView); err != nil {
			return a.fail(err)
		}
		role, err := a.client.GetRole(ctx, rest[0])
		if err != nil {
			return a.fail(err)
		}
		a.renderRoles([]models.Role{*role})
		perms, err := a.client.RolePermissions(ctx, role.ID)
		if err != nil {
			return a.fail(err)
		}
		a.renderPermissions(perms)
		return nil
	case "create":
		fs := flag.NewFlagSet("rbac roles create", flag.ContinueOnError)
		var req models.CreateRoleRequest
		fs.StringVar(&req.Name, "name", "", "role name")
		fs.StringVar(&req.Slug, "slug", "", "role slug")
		fs.StringVar(&req.Description, "desc", "", "description")
		fs.IntVar(&req.Level, "level", 0, "role level, higher outranks lower")
		fs.StringVar(&req.Color, "color", "#6b7280", "display color")
		perms := fs.String("permissions", "", "comma-separated permission ids")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if req.Name == "" || req.Slug == "" {
			return errors.New("rbac roles create: -name and -slug are required")
		}
		if *perms != "" {
			req.PermissionIDs = strings.Split(*perms, ",")
		}
		if err := a.requirePermission(ctx, gate.PermRBACManage); err != nil {
			return a.fail(err)
		}
		role, err := a.client.CreateRole(ctx, req)
		if err != nil {
			return a.fail(err)
		}
		a.printf("Created role %s (%s)\n", role.Slug, role.ID)
		return nil
	case "update":
		if len(rest) < 1 {
			return errors.New("usage: posctl rbac roles update <id> [flags]")
		}
		id := rest[0]
		fs := flag.NewFlagSet("rbac roles update", flag.ContinueOnError)
		var req models.UpdateRoleRequest
		fs.StringVar(&req.Name, "name", "", "role name")
		fs.StringVar(&req.Slug, "slug", "", "role slug")
		fs.StringVar(&req.Description, "desc", "", "description")
		level := fs.Int("level", -1, "role level")
		fs.StringVar(&req.Color, "color", "", "display color")
		if err := fs.Parse(rest[1:]); err != nil {
			return err
		}
		if *level >= 0 {
			req.Level = level
		}
		if err := a.requirePermission(ctx, gate.PermRBACManage); err != nil {
			return a.fail(err)
		}
		role, err := a.client.UpdateRole(ctx, id, req)
		if err != nil {
			return a.fail(err)
		}
		a.printf("Updated role %s\n", role.Slug)
		return nil
	case "delete":
		fs := flag.NewFlagSet("rbac roles delete", flag.ContinueOnError)
		hard := fs.Bool("hard", false, "remove the row instead of deactivating")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return errors.New("usage: posctl rbac roles delete [-hard] <id>")
		}
		if err := a.requirePermission(ctx, gate.PermRBACManage); err != nil {
			return a.fail(err)
		}
		if err := a.client.DeleteRole(ctx, fs.Arg(0), *hard); err != nil {
			return a.fail(err)
		}
		a.println("Deleted.")
		return nil
	default:
		return errors.New("usage: posctl rbac roles list|show|create|update|delete ...")
	}
}

func (a *App) rbacPermissions(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		if err := a.requirePermission(ctx, gate.PermRBACView); err != nil {
			return a.fail(err)
		}
		perms, err := a.client.ListPermissions(ctx)
		if err != nil {
			return a.fail(err)
		}
		a.renderPermissions(perms)
		return nil
	case "create":
		fs := flag.NewFlagSet("rbac permissions create", flag.ContinueOnError)
		var req models.CreatePermissionRequest
		fs.StringVar(&req.Name, "name", "", "permission name")
		fs.StringVar(&req.Module, "module", "", "module, e.g. seafood")
		fs.StringVar(&req.Action, "action", "", "action, e.g. create")
		fs.StringVar(&req.Description, "desc", "", "description")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if req.Module == "" || req.Action == "" {
			return errors.New("rbac permissions create: -module and -action are required")
		}
		req.Codename = req.Module + ":" + req.Action
		if req.Name == "" {
			req.Name = req.Codename
		}
		if err := a.requirePermission(ctx, gate.PermRBACManage); err != nil {
			return a.fail(err)
		}
		perm, err := a.client.CreatePermission(ctx, req)
		if err != nil {
			return a.fail(err)
		}
		a.printf("Created permission %s (%s)\n", perm.Codename, perm.ID)
		return nil
	case "update":
		if len(rest) < 1 {
			return errors.New("usage: posctl rbac permissions update <id> [-name N] [-desc D]")
		}
		id := rest[0]
		fs := flag.NewFlagSet("rbac permissions update", flag.ContinueOnError)
		name := fs.String("name", "", "permission name")
		desc := fs.String("desc", "", "description")
		if err := fs.Parse(rest[1:]); err != nil {
			return err
		}
		patch := map[string]any{}
		if *name != "" {
			patch["name"] = *name
		}
		if *desc != "" {
			patch["description"] = *desc
		}
		if len(patch) == 0 {
			return errors.New("rbac permissions update: nothing to change")
		}
		if err := a.requirePermission(ctx, gate.PermRBACManage); err != nil {
			return a.fail(err)
		}
		perm, err := a.client.UpdatePermission(ctx, id, patch)
		if err != nil {
			return a.fail(err)
		}
		a.printf("Updated permission %s\n", perm.Codename)
		return nil
	case "delete":
		fs := flag.NewFlagSet("rbac permissions delete", flag.ContinueOnError)
		hard := fs.Bool("hard", false, "remove the row instead of deactivating")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return errors.New("usage: posctl rbac permissions delete [-hard] <id>")
		}
		if err := a.requirePermission(ctx, gate.PermRBACManage); err != nil {
			return a.fail(err)
		}
		if err := a.client.DeletePermission(ctx, fs.Arg(0), *hard); err != nil {
			return a.fail(err)
		}
		a.println("Deleted.")
		return nil
	default:
		return errors.New("usage: posctl rbac permissions list|create|update|delete ...")
	}
}

// rbacRolePermissions shows or replaces the permission set of one role.
func (a *App) rbacRolePermissions(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: posctl rbac role-permissions <role-id> [-set id1,id2,...]")
	}
	roleID, rest := args[0], args[1:]
	fs := flag.NewFlagSet("rbac role-permissions", flag.ContinueOnError)
	set := fs.String("set", "", "comma-separated permission ids to assign (replaces the set)")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	if *set != "" {
		if err := a.requirePermission(ctx, gate.PermRBACManage); err != nil {
			return a.fail(err)
		}
		ids := strings.Split(*set, ",")
		if err := a.client.AssignPermissionsToRole(ctx, roleID, ids); err != nil {
			return a.fail(err)
		}
		a.printf("Assigned %d permissions.\n", len(ids))
		return nil
	}
	if err := a.requirePermission(ctx, gate.PermRBACView); err != nil {
		return a.fail(err)
	}
	perms, err := a.client.RolePermissions(ctx, roleID)
	if err != nil {
		return a.fail(err)
	}
	a.renderPermissions(perms)
	return nil
}

// rbacAssign grants a role to one user, or to many with -users.
func (a *App) rbacAssign(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rbac assign", flag.ContinueOnError)
	user := fs.String("user", "", "user id")
	users := fs.String("users", "", "comma-separated user ids (bulk)")
	role := fs.String("role", "", "role id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *role == "" || (*user == "" && *users == "") {
		return errors.New("usage: posctl rbac assign -role <id> (-user <id> | -users <id1,id2>)")
	}
	if err := a.requirePermission(ctx, gate.PermRBACManage); err != nil {
		return a.fail(err)
	}
	if *users != "" {
		ids := strings.Split(*users, ",")
		if err := a.client.BulkAssignRoleToUsers(ctx, ids, *role); err != nil {
			return a.fail(err)
		}
		a.printf("Assigned role to %d users.\n", len(ids))
	} else {
		if err := a.client.AssignRoleToUser(ctx, *user, *role); err != nil {
			return a.fail(err)
		}
		a.println("Assigned.")
	}
	// Effective permissions changed; drop the cached profiles.
	a.invalidateProfiles()
	return nil
}

func (a *App) rbacStats(ctx context.Context) error {
	if err := a.requirePermission(ctx, gate.PermRBACView); err != nil {
		return a.fail(err)
	}
	roleStats, err := a.client.RoleStats(ctx)
	if err != nil {
		return a.fail(err)
	}
	permStats, err := a.client.PermissionStats(ctx)
	if err != nil {
		return a.fail(err)
	}
	userStats, err := a.client.UserRoleStats(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Roles:       %d total, %d active\n", roleStats.TotalRoles, roleStats.ActiveRoles)
	a.printf("Permissions: %d total\n", permStats.TotalPermissions)
	for mod, n := range permStats.ByModule {
		a.printf("  %s: %d\n", mod, n)
	}
	a.printf("Assignments: %d\n", userStats.TotalAssignments)
	for role, n := range userStats.UsersByRole {
		a.printf("  %s: %d users\n", role, n)
	}
	return nil
}
