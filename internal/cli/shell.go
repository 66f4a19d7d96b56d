package cli

import (
	"bufio"
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/thuysan/seapos/gate"
	"github.com/thuysan/seapos/httpx"
	"github.com/thuysan/seapos/internal/api"
	"github.com/thuysan/seapos/internal/models"
	"github.com/thuysan/seapos/internal/pos"
	"github.com/thuysan/seapos/internal/store"
)

const shellHelp = `POS commands:
  ls [search]            browse the catalog (optionally filtered)
  cat <category-id>      filter catalog by category
  refresh                re-fetch the catalog from the backend
  pick <code|id>         toggle a product in the selection
  qty <code|id> <n>      set selection quantity (piece/box)
  wt <code|id> <kg>      set selection weight
  note <code|id> <text>  set selection note
  sel                    show the current selection
  add                    move the selection into the cart
  buy <code|id>          single-tap add, skipping the selection
  cart                   show the cart and totals
  eqty <#> <n>           edit cart line quantity
  ewt <#> <kg>           edit cart line weight
  enote <#> <text>       edit cart line note
  rm <#>                 remove a cart line
  empty                  clear the cart
  phone|name|addr <v>    customer fields
  pay <method>           payment method (cash, transfer, card)
  paid|unpaid            payment status
  disc <amount>          discount in VND
  onote <text>           order note
  hold [label]           park this order for later
  drafts                 list parked orders
  recall <id>            resume a parked order
  checkout               submit the order
  help                   this text
  quit                   leave the shell
`

// posShell is one cashier session: a catalog snapshot, the picker selection
// and the order draft, driven line by line.
type posShell struct {
	app       *App
	catalog   pos.Catalog
	selection *pos.Selection
	draft     *pos.Draft

	// processing guards checkout the way the submit button disabled itself:
	// a second checkout while one is in flight is refused outright.
	processing bool
}

// cmdPOS gates, loads a catalog and runs the shell loop until quit or EOF.
func (a *App) cmdPOS(ctx context.Context) error {
	if err := a.requirePermission(ctx, gate.PermOrdersCreate); err != nil {
		return a.fail(err)
	}
	sh := &posShell{
		app:       a,
		selection: pos.NewSelection(),
		draft:     pos.NewDraft(),
	}
	if err := sh.loadCatalog(ctx); err != nil {
		return err
	}
	a.printf("%d products loaded. Type 'help' for commands.\n", len(sh.catalog))

	scanner := bufio.NewScanner(a.in)
	for {
		a.printf("pos> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		sh.dispatch(ctx, line)
	}
}

// loadCatalog prefers a live fetch and falls back to the cached snapshot so
// the counter can keep selling through a backend blip.
func (sh *posShell) loadCatalog(ctx context.Context) error {
	products, err := sh.app.client.ListProducts(ctx, api.ProductFilter{Status: "available"})
	if err != nil {
		cached, fetchedAt, cacheErr := sh.app.store.LoadCatalog()
		if cacheErr != nil {
			sh.app.println(sh.app.T("load_failed"))
			return err
		}
		sh.app.logger.Warn("catalog fetch failed, using cache",
			zap.Error(err), zap.Time("cached_at", fetchedAt))
		sh.catalog = cached
		return nil
	}
	sh.catalog = products
	if err := sh.app.store.SaveCatalog(products); err != nil {
		sh.app.logger.Warn("catalog cache write failed", zap.Error(err))
	}
	return nil
}

func (sh *posShell) dispatch(ctx context.Context, line string) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	a := sh.app

	switch cmd {
	case "help":
		a.printf("%s", shellHelp)
	case "ls":
		a.renderProducts(sh.catalog.Filter(arg, ""))
	case "cat":
		a.renderProducts(sh.catalog.Filter("", arg))
	case "refresh":
		if err := sh.loadCatalog(ctx); err == nil {
			a.printf("%d products.\n", len(sh.catalog))
		}
	case "pick":
		p, ok := sh.findProduct(arg)
		if !ok {
			a.println("no such product:", arg)
			return
		}
		sh.selection.Toggle(p)
		sh.showSelection()
	case "qty":
		sh.editSelection(arg, func(id string, v float64) { sh.selection.SetQuantity(id, v) })
	case "wt":
		sh.editSelection(arg, func(id string, v float64) { sh.selection.SetWeight(id, v) })
	case "note":
		ref, text, _ := strings.Cut(arg, " ")
		if p, ok := sh.findProduct(ref); ok {
			sh.selection.SetNote(p.ID, text)
		}
	case "sel":
		sh.showSelection()
	case "add":
		sh.addSelection()
	case "buy":
		p, ok := sh.findProduct(arg)
		if !ok {
			a.println("no such product:", arg)
			return
		}
		sh.draft.Cart.AddProduct(p)
		a.renderCart(sh.draft)
	case "cart":
		a.renderCart(sh.draft)
	case "eqty":
		sh.editCart(arg, sh.draft.Cart.UpdateQuantity)
	case "ewt":
		sh.editCart(arg, sh.draft.Cart.UpdateWeight)
	case "enote":
		idxStr, text, _ := strings.Cut(arg, " ")
		if idx, err := strconv.Atoi(idxStr); err == nil {
			sh.draft.Cart.UpdateNote(idx-1, text)
			a.renderCart(sh.draft)
		}
	case "rm":
		if idx, err := strconv.Atoi(arg); err == nil {
			sh.draft.Cart.Remove(idx - 1)
			a.renderCart(sh.draft)
		}
	case "empty":
		sh.draft.Cart.Clear()
		a.println(a.T("cart_empty"))
	case "phone":
		sh.draft.CustomerPhone = arg
	case "name":
		sh.draft.CustomerName = arg
	case "addr":
		sh.draft.CustomerAddress = arg
	case "pay":
		sh.draft.PaymentMethod = arg
	case "paid":
		sh.draft.PaymentStatus = models.PaymentPaid
	case "unpaid":
		sh.draft.PaymentStatus = models.PaymentUnpaid
	case "disc":
		if v, err := strconv.ParseFloat(arg, 64); err == nil {
			sh.draft.Discount = v
			a.renderCart(sh.draft)
		}
	case "onote":
		sh.draft.Notes = arg
	case "hold":
		sh.hold(arg)
	case "drafts":
		sh.listDrafts()
	case "recall":
		sh.recall(arg)
	case "checkout":
		sh.checkout(ctx)
	default:
		a.println("unknown command; 'help' lists them")
	}
}

// findProduct accepts either a product code or an ID, code first since that
// is what's printed on the labels.
func (sh *posShell) findProduct(ref string) (models.Product, bool) {
	for _, p := range sh.catalog {
		if strings.EqualFold(p.Code, ref) {
			return p, true
		}
	}
	return sh.catalog.FindByID(ref)
}

func (sh *posShell) editSelection(arg string, set func(id string, v float64)) {
	ref, valStr, _ := strings.Cut(arg, " ")
	p, ok := sh.findProduct(ref)
	if !ok || !sh.selection.Has(p.ID) {
		sh.app.println("not in selection:", ref)
		return
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(valStr), 64)
	if err != nil {
		sh.app.println("not a number:", valStr)
		return
	}
	set(p.ID, v)
	sh.showSelection()
}

func (sh *posShell) editCart(arg string, update func(index int, v float64)) {
	idxStr, valStr, _ := strings.Cut(arg, " ")
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		sh.app.println("not a line number:", idxStr)
		return
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(valStr), 64)
	if err != nil {
		sh.app.println("not a number:", valStr)
		return
	}
	update(idx-1, v)
	sh.app.renderCart(sh.draft)
}

func (sh *posShell) showSelection() {
	entries := sh.selection.Entries()
	if len(entries) == 0 {
		sh.app.println(sh.app.T("select_at_least_one"))
		return
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Product.Code, e.Product.Name,
			strconv.FormatFloat(e.Quantity, 'g', -1, 64),
			models.FormatWeight(e.Weight),
			models.FormatCurrency(e.Product.CurrentPrice),
			e.Note,
		})
	}
	sh.app.renderTable([]string{"CODE", "NAME", "QTY", "WEIGHT", "PRICE/KG", "NOTE"}, rows)
}

func (sh *posShell) addSelection() {
	a := sh.app
	err := sh.draft.Cart.AddSelection(sh.selection)
	switch {
	case err == nil:
		sh.selection.Clear()
		a.renderCart(sh.draft)
	case errors.Is(err, pos.ErrEmptySelection):
		a.println(a.T("select_at_least_one"))
	default:
		var iw *pos.InvalidWeightError
		if errors.As(err, &iw) {
			a.println(a.Tf("enter_weight_for", strings.Join(iw.Names, ", ")))
		} else {
			a.println(err.Error())
		}
	}
}

func (sh *posShell) hold(label string) {
	a := sh.app
	if sh.draft.Cart.Len() == 0 {
		a.println(a.T("cart_empty"))
		return
	}
	if label == "" {
		label = sh.draft.CustomerPhone
	}
	id, err := a.store.HoldDraft(sh.draft, label)
	if err != nil {
		a.println(err.Error())
		return
	}
	sh.draft = pos.NewDraft()
	a.println(a.Tf("draft_held", id))
}

func (sh *posShell) listDrafts() {
	a := sh.app
	drafts, err := a.store.ListHeldDrafts()
	if err != nil {
		a.println(err.Error())
		return
	}
	rows := make([][]string, 0, len(drafts))
	for _, d := range drafts {
		rows = append(rows, []string{d.ID, d.Label, d.CreatedAt.Format("15:04:05")})
	}
	a.renderTable([]string{"ID", "LABEL", "HELD AT"}, rows)
}

func (sh *posShell) recall(id string) {
	a := sh.app
	d, err := a.store.RecallDraft(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			a.println("no such draft:", id)
		} else {
			a.println(err.Error())
		}
		return
	}
	if sh.draft.Cart.Len() > 0 {
		// Park the order in progress rather than losing it.
		if _, err := a.store.HoldDraft(sh.draft, sh.draft.CustomerPhone); err != nil {
			a.println(err.Error())
			return
		}
	}
	sh.draft = d
	a.println(a.Tf("draft_recalled", id))
	a.renderCart(sh.draft)
}

// checkout validates locally, refuses re-entry while a submit is in flight
// and resets the draft only after the backend accepted the order.
func (sh *posShell) checkout(ctx context.Context) {
	a := sh.app
	if sh.processing {
		a.println(a.T("processing"))
		return
	}
	if v := sh.draft.Validate(); !v.Empty() {
		for _, field := range v.Fields() {
			a.println(a.Tf("validation_failed", field+" "+a.T(v[field])))
		}
		return
	}

	sh.processing = true
	defer func() { sh.processing = false }()

	a.println(a.T("processing"))
	order, err := a.client.CreateOrder(ctx, sh.draft.Payload(), sh.draft.IdempotencyKey)
	if err != nil {
		detail := err.Error()
		if apiErr, ok := httpx.AsAPIError(err); ok {
			detail = apiErr.Detail
		}
		a.println(a.Tf("order_failed", detail))
		return
	}
	a.println(a.Tf("order_success", order.OrderCode))
	a.renderOrderDetail(order)
	sh.draft.Reset()

	// The sale changed stock levels; refresh so the next picks show them.
	if err := sh.loadCatalog(ctx); err != nil {
		a.logger.Warn("post-checkout catalog refresh failed", zap.Error(err))
	}
}
