package cli

import (
	"context"
	"flag"
	"strconv"

	"github.com/thuysan/seapos/gate"
	"github.com/thuysan/seapos/internal/dashboard"
	"github.com/thuysan/seapos/internal/models"
)

// cmdDashboard prints the sales counters once, or keeps refreshing with
// -watch until interrupted.
func (a *App) cmdDashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	watch := fs.Bool("watch", false, "keep refreshing on the configured interval")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requirePermission(ctx, gate.PermStatsView); err != nil {
		return a.fail(err)
	}

	poller := dashboard.NewPoller(a.client, a.cfg.Dashboard.PollInterval, a.logger)
	render := func(s dashboard.Snapshot) {
		a.printf("-- %s --\n", s.FetchedAt.Format("15:04:05"))
		a.renderStats(s.Stats)
		limit := len(s.RecentOrders)
		if limit > 10 {
			limit = 10
		}
		a.renderOrders(s.RecentOrders[:limit])
		a.println()
	}

	if !*watch {
		stats, err := a.client.DashboardStats(ctx)
		if err != nil {
			return a.fail(err)
		}
		a.renderStats(*stats)
		if top, err := a.client.ProductStats(ctx, 5); err == nil && len(top) > 0 {
			a.println("Top sellers:")
			rows := make([][]string, 0, len(top))
			for _, p := range top {
				rows = append(rows, []string{
					p.Name, models.FormatWeight(p.TotalWeight),
					models.FormatCurrency(p.TotalAmount),
					strconv.Itoa(p.OrderCount),
				})
			}
			a.renderTable([]string{"PRODUCT", "SOLD", "REVENUE", "ORDERS"}, rows)
		}
		return nil
	}
	poller.Run(ctx, render)
	return nil
}
