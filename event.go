package retail

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/CSINCE90/retail-project/models"
	"github.com/CSINCE90/retail-project/models/enum"
)

const (
	cartEventSubjectPrefix = "cart.client.event."
	stockEventSubject      = "stock.service.event.>"
)

type EventHandler func(context.Context, *models.StockEvent) error

// EventManager publishes cart activity to NATS and dispatches incoming stock
// service events to registered handlers. A nil connection turns it into a
// no-op so the library works without a broker.
type EventManager struct {
	natsConn *nats.Conn
	handlers map[enum.StockMovementType]EventHandler
	logger   *zap.Logger
}

func NewEventManager(natsConn *nats.Conn, logger *zap.Logger) *EventManager {
	return &EventManager{
		natsConn: natsConn,
		handlers: make(map[enum.StockMovementType]EventHandler),
		logger:   logger,
	}
}

func (em *EventManager) RegisterHandler(movementType enum.StockMovementType, handler EventHandler) {
	em.handlers[movementType] = handler
}

func (em *EventManager) GetHandler(movementType enum.StockMovementType) (EventHandler, bool) {
	handler, exists := em.handlers[movementType]
	return handler, exists
}

// PublishCartEvent emits one cart mutation to cart.client.event.<type>.
func (em *EventManager) PublishCartEvent(event *models.CartEvent) error {
	if em.natsConn == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return em.natsConn.Publish(cartEventSubjectPrefix+string(event.Type), data)
}

// SubscribeToStockEvents feeds stock service events through the worker pool.
func (em *EventManager) SubscribeToStockEvents(wp *WorkerPool) error {
	if em.natsConn == nil {
		return nil
	}

	_, err := em.natsConn.Subscribe(stockEventSubject, func(msg *nats.Msg) {
		var event models.StockEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			em.logger.Error("Failed to unmarshal stock event", zap.Error(err))
			return
		}

		wp.Submit(context.Background(), &event)
	})

	return err
}

func (s *service) registerStockEventHandlers() {
	eventHandlers := map[enum.StockMovementType]EventHandler{
		enum.StockMovementIn:         s.handleStockChanged,
		enum.StockMovementOut:        s.handleStockChanged,
		enum.StockMovementReserve:    s.handleStockChanged,
		enum.StockMovementRelease:    s.handleStockChanged,
		enum.StockMovementTransfer:   s.handleStockChanged,
		enum.StockMovementAdjustment: s.handleStockChanged,
		enum.StockMovementReturn:     s.handleStockChanged,
	}

	for movementType, handler := range eventHandlers {
		s.eventManager.RegisterHandler(movementType, handler)
	}
}

// ProcessStockEvent is called by the worker pool for each stock event.
func (s *service) ProcessStockEvent(ctx context.Context, event *models.StockEvent) error {
	handler, exists := s.eventManager.GetHandler(event.MovementType)
	if !exists {
		s.logger.Warn("No handler for stock event", zap.String("movement_type", string(event.MovementType)))
		return nil
	}

	return handler(ctx, event)
}

// handleStockChanged drops the cached product snapshot so the next catalog
// lookup picks up the fresh stock ceiling.
func (s *service) handleStockChanged(ctx context.Context, event *models.StockEvent) error {
	s.catalog.InvalidateProduct(ctx, event.ProductID)

	s.logger.Info("Product stock changed",
		zap.Int64("product_id", event.ProductID),
		zap.String("movement_type", string(event.MovementType)),
		zap.Int64("available_quantity", event.AvailableQuantity))

	return nil
}
