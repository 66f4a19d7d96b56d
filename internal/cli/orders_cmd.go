package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/thuysan/seapos/gate"
	"github.com/thuysan/seapos/internal/api"
)

func (a *App) cmdOrders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: posctl orders list|show|update|update-item|mark-weighed|mark-shipped|export-pdf|cancel ...")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return a.ordersList(ctx, rest)
	case "show":
		return a.ordersShow(ctx, rest)
	case "update":
		return a.ordersUpdate(ctx, rest)
	case "update-item":
		return a.ordersUpdateItem(ctx, rest)
	case "mark-weighed":
		return a.ordersTransition(ctx, rest, "mark-weighed")
	case "mark-shipped":
		return a.ordersTransition(ctx, rest, "mark-shipped")
	case "export-pdf":
		return a.ordersExportPDF(ctx, rest)
	case "cancel":
		return a.ordersCancel(ctx, rest)
	default:
		return errors.New("usage: posctl orders list|show|update-item|mark-weighed|mark-shipped|export-pdf|cancel ...")
	}
}

func (a *App) ordersList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders list", flag.ContinueOnError)
	status := fs.String("status", "", "filter by status")
	phone := fs.String("phone", "", "filter by customer phone")
	limit := fs.Int("limit", 0, "max orders to return")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requirePermission(ctx, gate.PermOrdersView); err != nil {
		return a.fail(err)
	}
	orders, err := a.client.ListOrders(ctx, api.OrderFilter{
		Status: *status, CustomerPhone: *phone, Limit: *limit,
	})
	if err != nil {
		return a.fail(err)
	}
	a.renderOrders(orders)
	return nil
}

func (a *App) ordersShow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: posctl orders show <id>")
	}
	if err := a.requirePermission(ctx, gate.PermOrdersView); err != nil {
		return a.fail(err)
	}
	o, err := a.client.GetOrder(ctx, args[0])
	if err != nil {
		return a.fail(err)
	}
	a.renderOrderDetail(o)
	return nil
}

// ordersUpdate patches top-level order fields. Only the flags given end up in
// the request so the backend keeps everything else.
func (a *App) ordersUpdate(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: posctl orders update <id> [-status S] [-payment-status S] [-paid N] [-notes T]")
	}
	orderID, rest := args[0], args[1:]
	fs := flag.NewFlagSet("orders update", flag.ContinueOnError)
	status := fs.String("status", "", "order status")
	payStatus := fs.String("payment-status", "", "payment status: paid or unpaid")
	paid := fs.Float64("paid", -1, "paid amount in VND")
	notes := fs.String("notes", "", "order notes")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	patch := map[string]any{}
	if *status != "" {
		patch["status"] = *status
	}
	if *payStatus != "" {
		patch["payment_status"] = *payStatus
	}
	if *paid >= 0 {
		patch["paid_amount"] = *paid
	}
	if *notes != "" {
		patch["notes"] = *notes
	}
	if len(patch) == 0 {
		return errors.New("orders update: nothing to change")
	}
	if err := a.requirePermission(ctx, gate.PermOrdersUpdate); err != nil {
		return a.fail(err)
	}
	o, err := a.client.UpdateOrder(ctx, orderID, patch)
	if err != nil {
		return a.fail(err)
	}
	a.renderOrderDetail(o)
	return nil
}

// ordersUpdateItem records the actual scale reading for one line of a pending
// order, optionally with a corrected price and a photo of the scale.
func (a *App) ordersUpdateItem(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: posctl orders update-item <order-id> -item <item-id> [-weight N] [-price N] [-image URL]")
	}
	orderID, rest := args[0], args[1:]
	fs := flag.NewFlagSet("orders update-item", flag.ContinueOnError)
	itemID := fs.String("item", "", "order item id")
	weight := fs.Float64("weight", -1, "weighed amount in kg")
	price := fs.Float64("price", -1, "unit price in VND per kg")
	image := fs.String("image", "", "weight photo URL")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	if *itemID == "" {
		return errors.New("orders update-item: -item is required")
	}
	update := api.ItemUpdate{ItemID: *itemID, WeightImageURL: *image}
	if *weight >= 0 {
		update.Weight = weight
	}
	if *price >= 0 {
		update.UnitPrice = price
	}
	if err := a.requirePermission(ctx, gate.PermOrdersUpdate); err != nil {
		return a.fail(err)
	}
	o, err := a.client.UpdateOrderItem(ctx, orderID, update)
	if err != nil {
		return a.fail(err)
	}
	a.renderOrderDetail(o)
	return nil
}

func (a *App) ordersTransition(ctx context.Context, args []string, step string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: posctl orders %s <id>", step)
	}
	if err := a.requirePermission(ctx, gate.PermOrdersUpdate); err != nil {
		return a.fail(err)
	}
	mark := a.client.MarkWeighed
	if step == "mark-shipped" {
		mark = a.client.MarkShipped
	}
	order, err := mark(ctx, args[0])
	if err != nil {
		return a.fail(err)
	}
	a.printf("%s -> %s\n", order.OrderCode, order.Status)
	return nil
}

func (a *App) ordersExportPDF(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders export-pdf", flag.ContinueOnError)
	out := fs.String("o", "", "output file (defaults to <order-id>.pdf)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: posctl orders export-pdf [-o file] <id>")
	}
	orderID := fs.Arg(0)
	if err := a.requirePermission(ctx, gate.PermOrdersView); err != nil {
		return a.fail(err)
	}
	path := *out
	if path == "" {
		path = orderID + ".pdf"
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := a.client.ExportPDF(ctx, orderID, f); err != nil {
		os.Remove(path)
		return a.fail(err)
	}
	a.printf("Saved %s\n", path)
	return nil
}

func (a *App) ordersCancel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: posctl orders cancel <id>")
	}
	if err := a.requirePermission(ctx, gate.PermOrdersUpdate); err != nil {
		return a.fail(err)
	}
	if err := a.client.CancelOrder(ctx, args[0]); err != nil {
		return a.fail(err)
	}
	a.println("Cancelled.")
	return nil
}
