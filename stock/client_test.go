package stock

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

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zap.NewNop())
}

func TestGetStock(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock/7", r.URL.Path)
		json.NewEncoder(w).Encode(models.Stock{
			ID:                1,
			ProductID:         7,
			AvailableQuantity: 40,
			ReservedQuantity:  2,
			PhysicalQuantity:  42,
			MinimumQuantity:   5,
		})
	})

	got, err := c.GetStock(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(40), got.AvailableQuantity)
	assert.False(t, got.IsLowStock)
}

func TestGetStockNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.GetStock(context.Background(), 7)
	assert.ErrorIs(t, err, ErrStockNotFound)
}

func TestAdjustStock(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/stock/7/adjust", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "IN", body["movementType"])
		assert.Equal(t, float64(10), body["quantity"])

		json.NewEncoder(w).Encode(models.Stock{ProductID: 7, AvailableQuantity: 50})
	})

	got, err := c.AdjustStock(context.Background(), AdjustStockParams{
		ProductID:     7,
		MovementType:  enum.StockMovementIn,
		Quantity:      10,
		ReferenceType: enum.StockReferenceManual,
		Notes:         "restock",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), got.AvailableQuantity)
}

func TestAdjustStockRejectsInvalidParams(t *testing.T) {
	c := NewClient("http://unused", zap.NewNop())

	cases := []struct {
		name   string
		params AdjustStockParams
	}{
		{"missing_product", AdjustStockParams{MovementType: enum.StockMovementIn, Quantity: 1}},
		{"zero_quantity", AdjustStockParams{ProductID: 1, MovementType: enum.StockMovementIn}},
		{"bad_movement", AdjustStockParams{ProductID: 1, MovementType: "RESERVE", Quantity: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.AdjustStock(context.Background(), tc.params)
			assert.Error(t, err)
		})
	}
}

func TestUpdateMinimumQuantity(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/admin/stock/7/minimum-quantity", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(8), body["minimumQuantity"])

		json.NewEncoder(w).Encode(models.Stock{ProductID: 7, MinimumQuantity: 8})
	})

	got, err := c.UpdateMinimumQuantity(context.Background(), UpdateMinimumQuantityParams{
		ProductID:       7,
		MinimumQuantity: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.MinimumQuantity)
}

func TestUpdateMinimumQuantityRejectsInvalidParams(t *testing.T) {
	c := NewClient("http://unused", zap.NewNop())

	_, err := c.UpdateMinimumQuantity(context.Background(), UpdateMinimumQuantityParams{MinimumQuantity: 5})
	assert.Error(t, err)

	_, err = c.UpdateMinimumQuantity(context.Background(), UpdateMinimumQuantityParams{ProductID: 7, MinimumQuantity: -1})
	assert.Error(t, err)
}

func TestListMovements(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock/7/movements", r.URL.Path)
		json.NewEncoder(w).Encode([]models.StockMovement{
			{ID: 2, ProductID: 7, MovementType: enum.StockMovementOut, Quantity: 1, ReferenceType: enum.StockReferenceOrder},
			{ID: 1, ProductID: 7, MovementType: enum.StockMovementIn, Quantity: 10, ReferenceType: enum.StockReferencePurchase},
		})
	})

	movements, err := c.ListMovements(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, enum.StockMovementOut, movements[0].MovementType)
	assert.Equal(t, int64(10), movements[1].Quantity)
}

func TestListLowStockAlerts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/stock/alerts", r.URL.Path)
		json.NewEncoder(w).Encode([]models.LowStockAlert{
			{ID: 1, ProductID: 7, CurrentQuantity: 2, MinimumQuantity: 5},
		})
	})

	alerts, err := c.ListLowStockAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, int64(7), alerts[0].ProductID)
}
