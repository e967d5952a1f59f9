// Package retail wires the client-side cart aggregate together with the
// typed service clients the storefront consumes: product catalog, inventory
// and orders. The cart itself stays a local, optimistic cache of intent;
// every remote concern goes through one of the clients.
package retail

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/CSINCE90/retail-project/cart"
	"github.com/CSINCE90/retail-project/catalog"
	"github.com/CSINCE90/retail-project/models"
	"github.com/CSINCE90/retail-project/models/enum"
	"github.com/CSINCE90/retail-project/order"
	"github.com/CSINCE90/retail-project/stock"
)

type Service interface {
	Cart() models.Cart
	AddItemToCart(ctx context.Context, productID, quantity int64, attrs map[string]string) (models.Cart, error)
	RemoveItemFromCart(ctx context.Context, productID int64) models.Cart
	UpdateCartItemQuantity(ctx context.Context, productID, quantity int64) models.Cart
	ClearCart(ctx context.Context) models.Cart
	CartItemQuantity(productID int64) int64

	GetProduct(ctx context.Context, id int64) (*models.ProductSummary, error)
	CategoryTree(ctx context.Context) ([]*models.CategoryTree, error)

	GetStock(ctx context.Context, productID int64) (*models.Stock, error)
	AdjustStock(ctx context.Context, params stock.AdjustStockParams) (*models.Stock, error)
	UpdateMinimumStock(ctx context.Context, params stock.UpdateMinimumQuantityParams) (*models.Stock, error)
	StockMovements(ctx context.Context, productID int64) ([]models.StockMovement, error)
	LowStockAlerts(ctx context.Context) ([]models.LowStockAlert, error)

	Checkout(ctx context.Context) (*models.Order, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}

type service struct {
	store   *cart.Store
	catalog *catalog.Client
	stock   *stock.Client
	orders  *order.Client

	eventManager *EventManager
	workerPool   *WorkerPool

	logger *zap.Logger
}

// NewService wires the store and clients to the event plumbing. natsConn may
// be nil, which disables event publishing and stock-event subscriptions.
func NewService(
	store *cart.Store, catalogClient *catalog.Client, stockClient *stock.Client, orderClient *order.Client,
	natsConn *nats.Conn,
	logger *zap.Logger) Service {
	s := &service{
		store:   store,
		catalog: catalogClient,
		stock:   stockClient,
		orders:  orderClient,
		logger:  logger,
	}
	s.eventManager = NewEventManager(natsConn, logger)
	s.workerPool = NewWorkerPool(4, s, logger)
	s.registerStockEventHandlers()

	if err := s.eventManager.SubscribeToStockEvents(s.workerPool); err != nil {
		logger.Error("Failed to subscribe to stock events", zap.Error(err))
	}

	return s
}

// Cart returns a snapshot of the current cart state.
func (s *service) Cart() models.Cart {
	return s.store.Snapshot()
}

// AddItemToCart resolves the product snapshot through the catalog, guards the
// stock ceiling the way the UI does, then merges the item into the cart. The
// aggregate itself never clamps; this check is owned by the caller layer.
func (s *service) AddItemToCart(ctx context.Context, productID, quantity int64, attrs map[string]string) (models.Cart, error) {
	if quantity == 0 {
		quantity = 1
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return models.Cart{}, fmt.Errorf("failed to resolve product %d: %w", productID, err)
	}

	requested := s.store.ItemQuantity(productID) + quantity
	if err := catalog.CheckAvailability(product, requested); err != nil {
		return models.Cart{}, err
	}

	snapshot := s.store.AddItem(ctx, *product, quantity, attrs)
	s.publishCartEvent(enum.CartEventItemAdded, productID, quantity, snapshot)

	return snapshot, nil
}

func (s *service) RemoveItemFromCart(ctx context.Context, productID int64) models.Cart {
	snapshot := s.store.RemoveItem(ctx, productID)
	s.publishCartEvent(enum.CartEventItemRemoved, productID, 0, snapshot)
	return snapshot
}

func (s *service) UpdateCartItemQuantity(ctx context.Context, productID, quantity int64) models.Cart {
	snapshot := s.store.UpdateQuantity(ctx, productID, quantity)
	s.publishCartEvent(enum.CartEventQuantityUpdated, productID, quantity, snapshot)
	return snapshot
}

func (s *service) ClearCart(ctx context.Context) models.Cart {
	snapshot := s.store.Clear(ctx)
	s.publishCartEvent(enum.CartEventCleared, 0, 0, snapshot)
	return snapshot
}

func (s *service) CartItemQuantity(productID int64) int64 {
	return s.store.ItemQuantity(productID)
}

func (s *service) GetProduct(ctx context.Context, id int64) (*models.ProductSummary, error) {
	return s.catalog.GetProduct(ctx, id)
}

func (s *service) CategoryTree(ctx context.Context) ([]*models.CategoryTree, error) {
	return s.catalog.CategoryTree(ctx)
}

func (s *service) GetStock(ctx context.Context, productID int64) (*models.Stock, error) {
	return s.stock.GetStock(ctx, productID)
}

func (s *service) AdjustStock(ctx context.Context, params stock.AdjustStockParams) (*models.Stock, error) {
	return s.stock.AdjustStock(ctx, params)
}

func (s *service) UpdateMinimumStock(ctx context.Context, params stock.UpdateMinimumQuantityParams) (*models.Stock, error) {
	return s.stock.UpdateMinimumQuantity(ctx, params)
}

func (s *service) StockMovements(ctx context.Context, productID int64) ([]models.StockMovement, error) {
	return s.stock.ListMovements(ctx, productID)
}

func (s *service) LowStockAlerts(ctx context.Context) ([]models.LowStockAlert, error) {
	return s.stock.ListLowStockAlerts(ctx)
}

// Checkout posts the current cart to the order service and clears the cart on
// success.
func (s *service) Checkout(ctx context.Context) (*models.Order, error) {
	snapshot := s.store.Snapshot()

	newOrder, err := s.orders.CreateFromCart(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	cleared := s.store.Clear(ctx)
	s.publishCartEvent(enum.CartEventCleared, 0, 0, cleared)

	return newOrder, nil
}

func (s *service) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	return s.orders.Get(ctx, id)
}

func (s *service) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

func (s *service) publishCartEvent(eventType enum.CartEventType, productID, quantity int64, snapshot models.Cart) {
	event := models.NewCartEvent(eventType, productID, quantity, snapshot)
	if err := s.eventManager.PublishCartEvent(event); err != nil {
		s.logger.Warn("Failed to publish cart event",
			zap.String("type", string(eventType)),
			zap.Error(err))
	}
}
