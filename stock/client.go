// Package stock is the typed REST client for the inventory service, used by
// the admin stock console. Reservation and alerting logic live entirely in
// the backend; this client only moves validated requests and typed responses.
package stock

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/CSINCE90/retail-project/models"
)

const defaultTimeout = 10 * time.Second

var ErrStockNotFound = errors.New("stock: not found")

type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
	logger   *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: defaultTimeout},
		validate: validator.New(),
		logger:   logger,
	}
}

// GetStock returns the inventory row for a product.
func (c *Client) GetStock(ctx context.Context, productID int64) (*models.Stock, error) {
	var out models.Stock
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/stock/%d", productID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdjustStock applies a manual inventory movement and returns the updated row.
func (c *Client) AdjustStock(ctx context.Context, params AdjustStockParams) (*models.Stock, error) {
	if err := c.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("invalid stock adjustment: %w", err)
	}

	var out models.Stock
	path := fmt.Sprintf("/api/admin/stock/%d/adjust", params.ProductID)
	if err := c.do(ctx, http.MethodPost, path, params, &out); err != nil {
		return nil, err
	}

	c.logger.Info("Stock adjusted",
		zap.Int64("product_id", params.ProductID),
		zap.String("movement_type", string(params.MovementType)),
		zap.Int64("quantity", params.Quantity))

	return &out, nil
}

// UpdateMinimumQuantity sets the low-stock threshold for a product.
func (c *Client) UpdateMinimumQuantity(ctx context.Context, params UpdateMinimumQuantityParams) (*models.Stock, error) {
	if err := c.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("invalid minimum quantity update: %w", err)
	}

	var out models.Stock
	path := fmt.Sprintf("/api/admin/stock/%d/minimum-quantity", params.ProductID)
	if err := c.do(ctx, http.MethodPut, path, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMovements returns the inventory ledger for a product, newest first.
func (c *Client) ListMovements(ctx context.Context, productID int64) ([]models.StockMovement, error) {
	var out []models.StockMovement
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/stock/%d/movements", productID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLowStockAlerts returns the open low-stock alerts.
func (c *Client) ListLowStockAlerts(ctx context.Context) ([]models.LowStockAlert, error) {
	var out []models.LowStockAlert
	if err := c.do(ctx, http.MethodGet, "/api/admin/stock/alerts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode stock request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build stock request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Stock request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("stock request %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrStockNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("stock request %s: unexpected status %d: %s", path, resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode stock response %s: %w", path, err)
	}

	return nil
}
