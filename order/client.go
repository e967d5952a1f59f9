// Package order is the typed REST client for the order service. Checkout
// posts the local cart snapshot as an order draft; the backend owns pricing
// revalidation, stock reservation and payment.
package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/CSINCE90/retail-project/models"
)

const defaultTimeout = 15 * time.Second

var (
	ErrOrderNotFound = errors.New("order: not found")
	ErrEmptyCart     = errors.New("order: cart is empty")
)

// TokenProvider supplies the bearer token for authenticated order calls.
// The auth refresh flow is owned elsewhere; a nil provider sends no token.
type TokenProvider func() string

type Client struct {
	baseURL string
	http    *http.Client
	token   TokenProvider
	logger  *zap.Logger
}

func NewClient(baseURL string, token TokenProvider, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		token:   token,
		logger:  logger,
	}
}

type createOrderRequest struct {
	Items []createOrderItem `json:"items"`
}

type createOrderItem struct {
	ProductID          int64             `json:"productId"`
	Quantity           int64             `json:"quantity"`
	SelectedAttributes map[string]string `json:"selectedAttributes,omitempty"`
}

// CreateFromCart submits the cart as a new order. Only product identity,
// quantity and attribute selections are sent; the backend reprices from its
// own catalog rather than trusting client-side cents.
func (c *Client) CreateFromCart(ctx context.Context, cart models.Cart) (*models.Order, error) {
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	req := createOrderRequest{Items: make([]createOrderItem, len(cart.Items))}
	for i, item := range cart.Items {
		req.Items[i] = createOrderItem{
			ProductID:          item.Product.ID,
			Quantity:           item.Quantity,
			SelectedAttributes: item.SelectedAttributes,
		}
	}

	var out models.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &out); err != nil {
		return nil, err
	}

	c.logger.Info("Order created",
		zap.Int64("order_id", out.ID),
		zap.Int64("total_items", out.TotalItems),
		zap.Int64("total_cents", out.TotalCents))

	return &out, nil
}

// Get fetches a single order.
func (c *Client) Get(ctx context.Context, id int64) (*models.Order, error) {
	var out models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns the caller's orders, newest first.
func (c *Client) List(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode order request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Order request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("order request %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrOrderNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("order request %s: unexpected status %d: %s", path, resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode order response %s: %w", path, err)
	}

	return nil
}
