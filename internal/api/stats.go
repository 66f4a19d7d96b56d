package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/thuysan/seapos/internal/models"
)

// DashboardStats fetches the aggregate counters for the landing dashboard.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.get(ctx, "/api/seafood/stats/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProductStats returns the best-selling products, limited to the top n.
func (c *Client) ProductStats(ctx context.Context, limit int) ([]models.ProductStat, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []models.ProductStat
	if err := c.get(ctx, "/api/seafood/stats/products", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
