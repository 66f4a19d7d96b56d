package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/thuysan/seapos/internal/models"
	"github.com/thuysan/seapos/internal/pos"
)

// renderTable prints rows in aligned columns. This is the terminal stand-in
// for the old HTML tables.
func (a *App) renderTable(header []string, rows [][]string) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	_ = w.Flush()
}

func (a *App) renderProducts(products []models.Product) {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		avg := "-"
		if p.AvgUnitWeight > 0 {
			avg = models.FormatWeight(p.AvgUnitWeight)
		}
		rows = append(rows, []string{
			p.Code, p.Name, p.UnitType, avg,
			models.FormatCurrency(p.CurrentPrice),
			models.FormatWeight(p.StockQuantity),
			p.Status,
		})
	}
	a.renderTable([]string{"CODE", "NAME", "UNIT", "AVG WT", "PRICE/KG", "STOCK", "STATUS"}, rows)
}

func (a *App) renderOrders(orders []models.Order) {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.OrderCode, o.CustomerPhone, o.CustomerName,
			models.FormatCurrency(o.TotalAmount),
			o.PaymentStatus, o.Status,
			o.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	a.renderTable([]string{"CODE", "PHONE", "CUSTOMER", "TOTAL", "PAYMENT", "STATUS", "CREATED"}, rows)
}

func (a *App) renderOrderDetail(o *models.Order) {
	a.printf("%s  %s  %s\n", o.OrderCode, o.Status, o.PaymentStatus)
	if o.CustomerName != "" || o.CustomerPhone != "" {
		a.printf("%s  %s  %s\n", o.CustomerName, o.CustomerPhone, o.CustomerAddress)
	}
	rows := make([][]string, 0, len(o.Items))
	for _, it := range o.Items {
		name := it.SeafoodID
		if it.Seafood != nil {
			name = it.Seafood.Name
		}
		qty := "-"
		if it.Quantity != nil {
			qty = fmt.Sprintf("%g", *it.Quantity)
		}
		rows = append(rows, []string{
			name, qty, models.FormatWeight(it.Weight),
			models.FormatCurrency(it.UnitPrice),
			models.FormatCurrency(it.Weight * it.UnitPrice),
			it.Notes,
		})
	}
	a.renderTable([]string{"ITEM", "QTY", "WEIGHT", "PRICE/KG", "AMOUNT", "NOTES"}, rows)
	a.printf("Subtotal: %s\n", models.FormatCurrency(o.Subtotal))
	a.printf("Discount: %s\n", models.FormatCurrency(o.DiscountAmount))
	a.printf("Total:    %s\n", models.FormatCurrency(o.TotalAmount))
}

// renderCart shows the in-progress order with live totals, recomputed on
// every call.
func (a *App) renderCart(d *pos.Draft) {
	lines := d.Cart.Lines()
	if len(lines) == 0 {
		a.println(a.T("cart_empty"))
		return
	}
	rows := make([][]string, 0, len(lines))
	for i, l := range lines {
		qty := "-"
		if l.Quantity != nil {
			qty = fmt.Sprintf("%g", *l.Quantity)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1), l.Product.Name, qty,
			models.FormatWeight(l.Weight),
			models.FormatCurrency(l.UnitPrice),
			models.FormatCurrency(l.Subtotal()),
			l.Note,
		})
	}
	a.renderTable([]string{"#", "ITEM", "QTY", "WEIGHT", "PRICE/KG", "AMOUNT", "NOTE"}, rows)

	t := d.Totals()
	a.printf("Subtotal: %s\n", models.FormatCurrency(t.Subtotal))
	a.printf("Discount: %s\n", models.FormatCurrency(t.Discount))
	a.printf("Total:    %s\n", models.FormatCurrency(t.Total))
}

func (a *App) renderStats(s models.DashboardStats) {
	a.renderTable(
		[]string{"PRODUCTS", "STOCK VALUE", "TODAY ORDERS", "TODAY REVENUE", "LOW STOCK"},
		[][]string{{
			fmt.Sprintf("%d", s.TotalProducts),
			models.FormatCurrency(s.TotalStockValue),
			fmt.Sprintf("%d", s.TodayOrders),
			models.FormatCurrency(s.TodayRevenue),
			fmt.Sprintf("%d", s.LowStockProducts),
		}},
	)
}

func (a *App) renderRoles(roles []models.Role) {
	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, []string{r.Slug, r.Name, fmt.Sprintf("%d", r.Level), r.Description})
	}
	a.renderTable([]string{"SLUG", "NAME", "LEVEL", "DESCRIPTION"}, rows)
}

func (a *App) renderPermissions(perms []models.Permission) {
	rows := make([][]string, 0, len(perms))
	for _, p := range perms {
		rows = append(rows, []string{p.Codename, p.Module, p.Action, p.Name})
	}
	a.renderTable([]string{"CODENAME", "MODULE", "ACTION", "NAME"}, rows)
}

func (a *App) renderUsers(users []models.User) {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		roles := make([]string, 0, len(u.Roles))
		for _, r := range u.Roles {
			roles = append(roles, r.Slug)
		}
		active := "yes"
		if !u.IsActive {
			active = "no"
		}
		rows = append(rows, []string{u.Email, u.FullName, strings.Join(roles, ","), active})
	}
	a.renderTable([]string{"EMAIL", "NAME", "ROLES", "ACTIVE"}, rows)
}
