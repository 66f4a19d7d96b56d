package cli

import (
	"context"
	"fmt"
)

const usage = `posctl - seafood POS terminal

Usage:
  posctl login -email <email> [-password <password>]
  posctl logout
  posctl register -email <email> -password <password> [-name <name>] [-phone <phone>]
  posctl whoami

  posctl pos                     interactive point-of-sale shell
  posctl dashboard [-watch]      sales counters (30s refresh with -watch)

  posctl products  list|get|create|update|delete ...
  posctl categories list|create|update|delete ...
  posctl imports   sources|add-source|batches|add-batch ...
  posctl orders    list|show|update|update-item|mark-weighed|mark-shipped|export-pdf|cancel ...
  posctl rbac      roles|permissions|role-permissions|assign ...
  posctl users     list
`

// Run dispatches one command invocation.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("%s", usage)
		return nil
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, rest)
	case "logout":
		return a.cmdLogout(ctx)
	case "register":
		return a.cmdRegister(ctx, rest)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "pos":
		return a.cmdPOS(ctx)
	case "dashboard":
		return a.cmdDashboard(ctx, rest)
	case "products":
		return a.cmdProducts(ctx, rest)
	case "categories":
		return a.cmdCategories(ctx, rest)
	case "imports":
		return a.cmdImports(ctx, rest)
	case "orders":
		return a.cmdOrders(ctx, rest)
	case "rbac":
		return a.cmdRBAC(ctx, rest)
	case "users":
		return a.cmdUsers(ctx, rest)
	case "help", "-h", "--help":
		a.printf("%s", usage)
		return nil
	default:
		a.printf("%s", usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}
