// Package catalog is the typed REST client for the product and category
// services. Product snapshot lookups go through an optional Redis
// read-through cache so repeated card renders do not hammer the backend.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/CSINCE90/retail-project/models"
)

const (
	defaultTimeout  = 10 * time.Second
	productCacheTTL = 30 * time.Minute
)

var (
	ErrNotFound          = errors.New("catalog: not found")
	ErrProductNotFound   = errors.New("catalog: product not found")
	ErrInsufficientStock = errors.New("catalog: insufficient stock")
	ErrProductInactive   = errors.New("catalog: product not active")
)

type Client struct {
	baseURL string
	http    *http.Client
	cache   *redis.Client
	logger  *zap.Logger
}

// NewClient builds a catalog client. cache may be nil to disable the product
// snapshot cache.
func NewClient(baseURL string, cache *redis.Client, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		cache:   cache,
		logger:  logger,
	}
}

// GetProduct fetches the product snapshot used as a cart line, trying the
// cache first. Decoding ignores the detail fields the cart never reads.
func (c *Client) GetProduct(ctx context.Context, id int64) (*models.ProductSummary, error) {
	cacheKey := fmt.Sprintf("product:%d", id)

	if c.cache != nil {
		data, err := c.cache.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var product models.ProductSummary
			if err := json.Unmarshal(data, &product); err == nil {
				return &product, nil
			}
			c.invalidate(ctx, cacheKey)
		} else if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Failed to read product cache", zap.Error(err))
		}
	}

	var product models.ProductSummary
	if err := c.getJSON(ctx, fmt.Sprintf("/api/products/%d", id), &product); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
		}
		return nil, err
	}

	if c.cache != nil {
		if data, err := json.Marshal(&product); err == nil {
			if err := c.cache.Set(ctx, cacheKey, data, productCacheTTL).Err(); err != nil {
				c.logger.Warn("Failed to cache product", zap.Error(err))
			}
		}
	}

	return &product, nil
}

// GetProductBySlug resolves a product through its URL slug.
func (c *Client) GetProductBySlug(ctx context.Context, slug string) (*models.ProductSummary, error) {
	var product models.ProductSummary
	if err := c.getJSON(ctx, "/api/products/slug/"+slug, &product); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, slug)
		}
		return nil, err
	}
	return &product, nil
}

// ValidateStock checks that the product is active and, when it tracks
// inventory, that the requested quantity is available. The cart aggregate
// itself never clamps; this is the caller-side guard the UI relies on.
func (c *Client) ValidateStock(ctx context.Context, productID, requested int64) error {
	product, err := c.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	return CheckAvailability(product, requested)
}

// CheckAvailability applies the active and stock-ceiling rules to an already
// resolved product snapshot. Untracked inventory never blocks.
func CheckAvailability(product *models.ProductSummary, requested int64) error {
	if !product.IsActive {
		return fmt.Errorf("%w: %d", ErrProductInactive, product.ID)
	}
	if product.TrackInventory && product.StockQuantity < requested {
		return fmt.Errorf("%w: product %d has %d, requested %d",
			ErrInsufficientStock, product.ID, product.StockQuantity, requested)
	}
	return nil
}

// InvalidateProduct drops the cached snapshot; called when a stock event
// arrives so the next lookup sees the fresh ceiling.
func (c *Client) InvalidateProduct(ctx context.Context, id int64) {
	if c.cache == nil {
		return
	}
	c.invalidate(ctx, fmt.Sprintf("product:%d", id))
}

// ListCategories fetches the active categories as a flat list.
func (c *Client) ListCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	if err := c.getJSON(ctx, "/api/categories/active", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoryTree fetches the flat category list and resolves parent links into
// a tree, roots first.
func (c *Client) CategoryTree(ctx context.Context) ([]*models.CategoryTree, error) {
	categories, err := c.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return buildCategoryTree(categories), nil
}

func buildCategoryTree(categories []*models.Category) []*models.CategoryTree {
	nodes := make(map[int64]*models.CategoryTree, len(categories))
	var roots []*models.CategoryTree

	for _, cat := range categories {
		node := &models.CategoryTree{Category: cat}
		nodes[cat.ID] = node
		if cat.ParentID == nil {
			roots = append(roots, node)
		}
	}

	for _, cat := range categories {
		if cat.ParentID == nil {
			continue
		}
		if parent, ok := nodes[*cat.ParentID]; ok {
			parent.Children = append(parent.Children, nodes[cat.ID])
		}
	}

	return roots
}

func (c *Client) invalidate(ctx context.Context, key string) {
	if err := c.cache.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("Failed to invalidate catalog cache", zap.String("key", key), zap.Error(err))
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Catalog request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("catalog request %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("catalog request %s: unexpected status %d: %s", path, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response %s: %w", path, err)
	}

	return nil
}
