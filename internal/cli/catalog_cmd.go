package cli

import (
	"context"
	"errors"
	"flag"
	"strings"

	"github.com/thuysan/seapos/gate"
	"github.com/thuysan/seapos/internal/api"
	"github.com/thuysan/seapos/internal/models"
)

func (a *App) cmdProducts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: posctl products list|get|create|update|delete ...")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return a.productsList(ctx, rest)
	case "get":
		return a.productsGet(ctx, rest)
	case "create":
		return a.productsCreate(ctx, rest)
	case "update":
		return a.productsUpdate(ctx, rest)
	case "delete":
		return a.productsDelete(ctx, rest)
	default:
		return errors.New("usage: posctl products list|get|create|update|delete ...")
	}
}

func (a *App) productsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products list", flag.ContinueOnError)
	category := fs.String("category", "", "filter by category id")
	status := fs.String("status", "", "filter by status")
	search := fs.String("search", "", "search by name or code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requirePermission(ctx, gate.PermSeafoodView); err != nil {
		return a.fail(err)
	}
	products, err := a.client.ListProducts(ctx, api.ProductFilter{
		CategoryID: *category, Status: *status, Search: *search,
	})
	if err != nil {
		return a.fail(err)
	}
	a.renderProducts(products)
	return nil
}

func (a *App) productsGet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: posctl products get <id>")
	}
	if err := a.requirePermission(ctx, gate.PermSeafoodView); err != nil {
		return a.fail(err)
	}
	p, err := a.client.GetProduct(ctx, args[0])
	if err != nil {
		return a.fail(err)
	}
	a.renderProducts([]models.Product{*p})
	if p.Description != "" {
		a.println(p.Description)
	}
	return nil
}

func productFlags(fs *flag.FlagSet, p *models.Product) {
	fs.StringVar(&p.Code, "code", p.Code, "product code")
	fs.StringVar(&p.Name, "name", p.Name, "product name")
	fs.StringVar(&p.CategoryID, "category", p.CategoryID, "category id")
	fs.StringVar(&p.UnitType, "unit", p.UnitType, "unit type: kg, piece or box")
	fs.Float64Var(&p.AvgUnitWeight, "avg-weight", p.AvgUnitWeight, "average unit weight in kg (piece/box)")
	fs.Float64Var(&p.CurrentPrice, "price", p.CurrentPrice, "price per kg in VND")
	fs.Float64Var(&p.StockQuantity, "stock", p.StockQuantity, "stock in kg")
	fs.StringVar(&p.Origin, "origin", p.Origin, "origin")
	fs.StringVar(&p.Status, "status", p.Status, "status")
	fs.StringVar(&p.Description, "desc", p.Description, "description")
}

func (a *App) productsCreate(ctx context.Context, args []string) error {
	p := models.Product{UnitType: models.UnitKg, Status: "available"}
	fs := flag.NewFlagSet("products create", flag.ContinueOnError)
	productFlags(fs, &p)
	tags := fs.String("tags", "", "comma-separated tags")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if p.Code == "" || p.Name == "" {
		return errors.New("products create: -code and -name are required")
	}
	if *tags != "" {
		p.Tags = strings.Split(*tags, ",")
	}
	if err := a.requirePermission(ctx, gate.PermSeafoodCreate); err != nil {
		return a.fail(err)
	}
	created, err := a.client.CreateProduct(ctx, p)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Created %s (%s)\n", created.Name, created.ID)
	return nil
}

func (a *App) productsUpdate(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: posctl products update <id> [flags]")
	}
	id, rest := args[0], args[1:]
	if err := a.requirePermission(ctx, gate.PermSeafoodUpdate); err != nil {
		return a.fail(err)
	}
	// Start from the current record so unset flags keep their value.
	current, err := a.client.GetProduct(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	p := *current
	fs := flag.NewFlagSet("products update", flag.ContinueOnError)
	productFlags(fs, &p)
	if err := fs.Parse(rest); err != nil {
		return err
	}
	updated, err := a.client.UpdateProduct(ctx, id, p)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Updated %s\n", updated.Name)
	return nil
}

func (a *App) productsDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: posctl products delete <id>")
	}
	if err := a.requirePermission(ctx, gate.PermSeafoodDelete); err != nil {
		return a.fail(err)
	}
	if err := a.client.DeleteProduct(ctx, args[0]); err != nil {
		return a.fail(err)
	}
	a.println("Deleted.")
	return nil
}

func (a *App) cmdCategories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: posctl categories list|create|update|delete ...")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		if err := a.requirePermission(ctx, gate.PermSeafoodView); err != nil {
			return a.fail(err)
		}
		cats, err := a.client.ListCategories(ctx)
		if err != nil {
			return a.fail(err)
		}
		rows := make([][]string, 0, len(cats))
		for _, c := range cats {
			rows = append(rows, []string{c.Slug, c.Name, c.Description})
		}
		a.renderTable([]string{"SLUG", "NAME", "DESCRIPTION"}, rows)
		return nil
	case "create":
		fs := flag.NewFlagSet("categories create", flag.ContinueOnError)
		var c models.Category
		fs.StringVar(&c.Name, "name", "", "category name")
		fs.StringVar(&c.Slug, "slug", "", "category slug")
		fs.StringVar(&c.Description, "desc", "", "description")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if c.Name == "" {
			return errors.New("categories create: -name is required")
		}
		if err := a.requirePermission(ctx, gate.PermSeafoodCreate); err != nil {
			return a.fail(err)
		}
		created, err := a.client.CreateCategory(ctx, c)
		if err != nil {
			return a.fail(err)
		}
		a.printf("Created %s (%s)\n", created.Name, created.ID)
		return nil
	case "update":
		if len(rest) < 1 {
			return errors.New("usage: posctl categories update <id> [flags]")
		}
		id := rest[0]
		fs := flag.NewFlagSet("categories update", flag.ContinueOnError)
		var c models.Category
		fs.StringVar(&c.Name, "name", "", "category name")
		fs.StringVar(&c.Slug, "slug", "", "category slug")
		fs.StringVar(&c.Description, "desc", "", "description")
		if err := fs.Parse(rest[1:]); err != nil {
			return err
		}
		if err := a.requirePermission(ctx, gate.PermSeafoodUpdate); err != nil {
			return a.fail(err)
		}
		updated, err := a.client.UpdateCategory(ctx, id, c)
		if err != nil {
			return a.fail(err)
		}
		a.printf("Updated %s\n", updated.Name)
		return nil
	case "delete":
		if len(rest) != 1 {
			return errors.New("usage: posctl categories delete <id>")
		}
		if err := a.requirePermission(ctx, gate.PermSeafoodDelete); err != nil {
			return a.fail(err)
		}
		if err := a.client.DeleteCategory(ctx, rest[0]); err != nil {
			return a.fail(err)
		}
		a.println("Deleted.")
		return nil
	default:
		return errors.New("usage: posctl categories list|create|update|delete ...")
	}
}

func (a *App) cmdImports(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: posctl imports sources|add-source|batches|add-batch ...")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "add-source":
		fs := flag.NewFlagSet("imports add-source", flag.ContinueOnError)
		var src models.ImportSource
		fs.StringVar(&src.Name, "name", "", "supplier name")
		fs.StringVar(&src.SourceType, "type", "supplier", "source type")
		fs.StringVar(&src.Notes, "notes", "", "notes")
		phone := fs.String("phone", "", "contact phone")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if src.Name == "" {
			return errors.New("imports add-source: -name is required")
		}
		if *phone != "" {
			src.ContactInfo = map[string]any{"phone": *phone}
		}
		if err := a.requirePermission(ctx, gate.PermSeafoodCreate); err != nil {
			return a.fail(err)
		}
		created, err := a.client.CreateImportSource(ctx, src)
		if err != nil {
			return a.fail(err)
		}
		a.printf("Created source %s (%s)\n", created.Name, created.ID)
		return nil
	case "add-batch":
		fs := flag.NewFlagSet("imports add-batch", flag.ContinueOnError)
		var b models.ImportBatch
		fs.StringVar(&b.SeafoodID, "product", "", "product id")
		fs.StringVar(&b.BatchCode, "code", "", "batch code")
		fs.StringVar(&b.ImportSourceID, "source", "", "import source id")
		fs.StringVar(&b.ImportDate, "date", "", "import date (YYYY-MM-DD)")
		fs.Float64Var(&b.ImportPrice, "import-price", 0, "import price per kg in VND")
		fs.Float64Var(&b.SellPrice, "sell-price", 0, "sell price per kg in VND")
		fs.Float64Var(&b.TotalWeight, "weight", 0, "total weight in kg")
		fs.StringVar(&b.Notes, "notes", "", "notes")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if b.SeafoodID == "" || b.TotalWeight <= 0 {
			return errors.New("imports add-batch: -product and a positive -weight are required")
		}
		if err := a.requirePermission(ctx, gate.PermSeafoodCreate); err != nil {
			return a.fail(err)
		}
		created, err := a.client.CreateImportBatch(ctx, b)
		if err != nil {
			return a.fail(err)
		}
		a.printf("Created batch %s (%s)\n", created.BatchCode, created.ID)
		return nil
	case "sources":
		if err := a.requirePermission(ctx, gate.PermSeafoodView); err != nil {
			return a.fail(err)
		}
		sources, err := a.client.ListImportSources(ctx)
		if err != nil {
			return a.fail(err)
		}
		rows := make([][]string, 0, len(sources))
		for _, s := range sources {
			rows = append(rows, []string{s.Name, s.SourceType, s.Notes})
		}
		a.renderTable([]string{"NAME", "TYPE", "NOTES"}, rows)
		return nil
	case "batches":
		fs := flag.NewFlagSet("imports batches", flag.ContinueOnError)
		seafoodID := fs.String("product", "", "filter by product id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := a.requirePermission(ctx, gate.PermSeafoodView); err != nil {
			return a.fail(err)
		}
		batches, err := a.client.ListImportBatches(ctx, *seafoodID)
		if err != nil {
			return a.fail(err)
		}
		rows := make([][]string, 0, len(batches))
		for _, b := range batches {
			name := b.SeafoodID
			if b.Seafood != nil {
				name = b.Seafood.Name
			}
			rows = append(rows, []string{
				b.BatchCode, name, b.ImportDate,
				models.FormatWeight(b.TotalWeight),
				models.FormatWeight(b.RemainingWeight),
				models.FormatCurrency(b.ImportPrice),
				b.Status,
			})
		}
		a.renderTable([]string{"BATCH", "PRODUCT", "DATE", "TOTAL", "REMAINING", "IMPORT PRICE", "STATUS"}, rows)
		return nil
	default:
		return errors.New("usage: posctl imports sources|add-source|batches|add-batch ...")
	}
}
