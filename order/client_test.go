package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CSINCE90/retail-project/models"
	"github.com/CSINCE90/retail-project/models/enum"
)

func newTestClient(t *testing.T, token TokenProvider, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, token, zap.NewNop())
}

func testCart() models.Cart {
	return models.Cart{
		Items: []models.LineItem{
			{
				Product:            models.ProductSummary{ID: 1, PriceCents: 2999},
				Quantity:           2,
				SelectedAttributes: map[string]string{"size": "M"},
			},
			{Product: models.ProductSummary{ID: 2, PriceCents: 3499}, Quantity: 1},
		},
		TotalItems:    3,
		SubtotalCents: 9497,
	}
}

func TestCreateFromCart(t *testing.T) {
	c := newTestClient(t, func() string { return "tok-123" }, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		var req createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 2)
		assert.Equal(t, int64(1), req.Items[0].ProductID)
		assert.Equal(t, int64(2), req.Items[0].Quantity)
		assert.Equal(t, "M", req.Items[0].SelectedAttributes["size"])

		json.NewEncoder(w).Encode(models.Order{
			ID:            501,
			Status:        enum.OrderStatusPending,
			TotalItems:    3,
			SubtotalCents: 9497,
			TotalCents:    9497,
		})
	})

	got, err := c.CreateFromCart(context.Background(), testCart())
	require.NoError(t, err)
	assert.Equal(t, int64(501), got.ID)
	assert.Equal(t, enum.OrderStatusPending, got.Status)
}

func TestCreateFromCartRejectsEmptyCart(t *testing.T) {
	c := NewClient("http://unused", nil, zap.NewNop())

	_, err := c.CreateFromCart(context.Background(), models.Cart{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestGetNotFound(t *testing.T) {
	c := newTestClient(t, nil, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
