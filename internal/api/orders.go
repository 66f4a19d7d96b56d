package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/thuysan/seapos/internal/models"
)

// OrderFilter narrows the order listing server-side.
type OrderFilter struct {
	Status        string
	CustomerPhone string
	Limit         int
}

func (f OrderFilter) query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.CustomerPhone != "" {
		q.Set("customer_phone", f.CustomerPhone)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

func (c *Client) ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	var out []models.Order
	if err := c.get(ctx, "/api/seafood/orders", filter.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var out models.Order
	if err := c.get(ctx, "/api/seafood/orders/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrder submits a draft. idempotencyKey lets the backend drop a
// duplicate caused by a repeated submit of the same draft; pass the draft's
// key, not a fresh one per attempt.
func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest, idempotencyKey string) (*models.Order, error) {
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{headerIdempotencyKey: idempotencyKey}
	}
	var out models.Order
	if err := c.request(ctx, http.MethodPost, "/api/seafood/orders", nil, req, &out, headers); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id string, patch map[string]any) (*models.Order, error) {
	var out models.Order
	if err := c.put(ctx, "/api/seafood/orders/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelOrder deletes (cancels) a pending order.
func (c *Client) CancelOrder(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/seafood/orders/"+id, nil)
}

// ItemUpdate adjusts one order item after weighing. The backend takes these
// as query parameters, not a JSON body.
type ItemUpdate struct {
	ItemID         string
	Weight         *float64
	UnitPrice      *float64
	WeightImageURL string
}

func (u ItemUpdate) query() url.Values {
	q := url.Values{}
	q.Set("item_id", u.ItemID)
	if u.Weight != nil {
		q.Set("weight", strconv.FormatFloat(*u.Weight, 'f', -1, 64))
	}
	if u.UnitPrice != nil {
		q.Set("unit_price", strconv.FormatFloat(*u.UnitPrice, 'f', -1, 64))
	}
	if u.WeightImageURL != "" {
		q.Set("weight_image_url", u.WeightImageURL)
	}
	return q
}

func (c *Client) UpdateOrderItem(ctx context.Context, orderID string, update ItemUpdate) (*models.Order, error) {
	var out models.Order
	path := "/api/seafood/orders/" + orderID + "/update-item"
	if err := c.request(ctx, http.MethodPost, path, update.query(), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MarkWeighed(ctx context.Context, orderID string) (*models.Order, error) {
	var out models.Order
	if err := c.post(ctx, "/api/seafood/orders/"+orderID+"/mark-weighed", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MarkShipped(ctx context.Context, orderID string) (*models.Order, error) {
	var out models.Order
	if err := c.post(ctx, "/api/seafood/orders/"+orderID+"/mark-shipped", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportPDF streams the order's PDF into w. The PDF is rendered server-side;
// the client only saves the bytes.
func (c *Client) ExportPDF(ctx context.Context, orderID string, w io.Writer) error {
	u := c.baseURL + "/api/seafood/orders/" + orderID + "/export-pdf"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("export pdf: HTTP %d", resp.StatusCode)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("save pdf: %w", err)
	}
	return nil
}
