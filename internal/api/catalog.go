package api

import (
	"context"
	"net/url"

	"github.com/thuysan/seapos/internal/models"
)

// ProductFilter narrows the product listing server-side. Zero values are
// omitted from the query.
type ProductFilter struct {
	CategoryID string
	Status     string
	Search     string
}

func (f ProductFilter) query() url.Values {
	q := url.Values{}
	if f.CategoryID != "" {
		q.Set("category_id", f.CategoryID)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return q
}

func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	var out []models.Product
	if err := c.get(ctx, "/api/seafood/products", filter.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var out models.Product
	if err := c.get(ctx, "/api/seafood/products/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.post(ctx, "/api/seafood/products", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.put(ctx, "/api/seafood/products/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/seafood/products/"+id, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.get(ctx, "/api/seafood/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, cat models.Category) (*models.Category, error) {
	var out models.Category
	if err := c.post(ctx, "/api/seafood/categories", cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, cat models.Category) (*models.Category, error) {
	var out models.Category
	if err := c.put(ctx, "/api/seafood/categories/"+id, cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/seafood/categories/"+id, nil)
}

// Import sources and batches back the goods-intake screens.

func (c *Client) ListImportSources(ctx context.Context) ([]models.ImportSource, error) {
	var out []models.ImportSource
	if err := c.get(ctx, "/api/seafood/import-sources", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateImportSource(ctx context.Context, src models.ImportSource) (*models.ImportSource, error) {
	var out models.ImportSource
	if err := c.post(ctx, "/api/seafood/import-sources", src, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListImportBatches(ctx context.Context, seafoodID string) ([]models.ImportBatch, error) {
	q := url.Values{}
	if seafoodID != "" {
		q.Set("seafood_id", seafoodID)
	}
	var out []models.ImportBatch
	if err := c.get(ctx, "/api/seafood/import-batches", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateImportBatch(ctx context.Context, b models.ImportBatch) (*models.ImportBatch, error) {
	var out models.ImportBatch
	if err := c.post(ctx, "/api/seafood/import-batches", b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
