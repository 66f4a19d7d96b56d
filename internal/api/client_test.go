package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thuysan/seapos/httpx"
	"github.com/thuysan/seapos/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, nil)
}

func TestLoginInstallsToken(t *testing.T) {
	var sawAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "chi@shop.vn", body["email"])
		_ = json.NewEncoder(w).Encode(models.LoginResponse{
			AccessToken: "tok-123",
			User:        models.User{ID: "u1", Email: "chi@shop.vn"},
		})
	})
	mux.HandleFunc("GET /api/users/me", func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1"})
	})

	c := newTestClient(t, mux)
	ctx := context.Background()
	res, err := c.Login(ctx, "chi@shop.vn", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-123", res.AccessToken)
	require.Equal(t, "u1", res.User.ID)

	_, err = c.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", sawAuth)
}

func TestBackendDetailSurfaces(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/seafood/orders", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"insufficient stock for Cá hồi"}`))
	})

	c := newTestClient(t, mux)
	_, err := c.CreateOrder(context.Background(), models.CreateOrderRequest{}, "")
	apiErr, ok := httpx.AsAPIError(err)
	require.True(t, ok, "expected APIError, got %v", err)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "insufficient stock for Cá hồi", apiErr.Detail)
}

func TestListProductsQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/seafood/products", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "cat-1", q.Get("category_id"))
		require.Equal(t, "active", q.Get("status"))
		require.Equal(t, "tôm", q.Get("search"))
		_ = json.NewEncoder(w).Encode([]models.Product{{ID: "p1", Name: "Tôm sú"}})
	})

	c := newTestClient(t, mux)
	got, err := c.ListProducts(context.Background(), ProductFilter{CategoryID: "cat-1", Status: "active", Search: "tôm"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Tôm sú", got[0].Name)
}

func TestCreateOrderSendsIdempotencyKey(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/seafood/orders", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "draft-key-1", r.Header.Get("Idempotency-Key"))
		var req models.CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "0901234567", req.CustomerPhone)
		require.Len(t, req.Items, 1)
		require.Nil(t, req.Items[0].Quantity)
		_ = json.NewEncoder(w).Encode(models.Order{ID: "o1", OrderCode: "DH-001"})
	})

	c := newTestClient(t, mux)
	order, err := c.CreateOrder(context.Background(), models.CreateOrderRequest{
		CustomerPhone: "0901234567",
		Items:         []models.OrderItem{{SeafoodID: "p1", Weight: 1.5, UnitPrice: 200000}},
	}, "draft-key-1")
	require.NoError(t, err)
	require.Equal(t, "DH-001", order.OrderCode)
}

func TestUpdateOrderItemQueryParams(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/seafood/orders/o1/update-item", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "it1", q.Get("item_id"))
		require.Equal(t, "1.42", q.Get("weight"))
		require.Equal(t, "210000", q.Get("unit_price"))
		_ = json.NewEncoder(w).Encode(models.Order{ID: "o1"})
	})

	c := newTestClient(t, mux)
	weight, price := 1.42, 210000.0
	_, err := c.UpdateOrderItem(context.Background(), "o1", ItemUpdate{ItemID: "it1", Weight: &weight, UnitPrice: &price})
	require.NoError(t, err)
}

func TestDeleteRoleHard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/rbac/roles/r1", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "true", r.URL.Query().Get("hard_delete"))
		w.WriteHeader(http.StatusNoContent)
	})

	c := newTestClient(t, mux)
	require.NoError(t, c.DeleteRole(context.Background(), "r1", true))
}

func TestExportPDFStreamsBytes(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake")
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/seafood/orders/o1/export-pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	})

	c := newTestClient(t, mux)
	var buf bytes.Buffer
	require.NoError(t, c.ExportPDF(context.Background(), "o1", &buf))
	require.Equal(t, pdf, buf.Bytes())
}

func TestMarkWeighedAndShipped(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/seafood/orders/o1/mark-weighed", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Order{ID: "o1", Status: models.OrderWeighed})
	})
	mux.HandleFunc("POST /api/seafood/orders/o1/mark-shipped", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.Order{ID: "o1", Status: models.OrderShipped})
	})

	c := newTestClient(t, mux)
	o, err := c.MarkWeighed(context.Background(), "o1")
	require.NoError(t, err)
	require.Equal(t, models.OrderWeighed, o.Status)

	o, err = c.MarkShipped(context.Background(), "o1")
	require.NoError(t, err)
	require.Equal(t, models.OrderShipped, o.Status)
}
