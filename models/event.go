package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/CSINCE90/retail-project/models/enum"
)

// CartEvent is published after every cart mutation so downstream consumers
// (analytics, abandoned-cart jobs) can follow cart activity.
type CartEvent struct {
	ID            string             `json:"id"`
	Type          enum.CartEventType `json:"type"`
	ProductID     int64              `json:"productId,omitempty"`
	Quantity      int64              `json:"quantity,omitempty"`
	TotalItems    int64              `json:"totalItems"`
	SubtotalCents int64              `json:"subtotalCents"`
	OccurredAt    time.Time          `json:"occurredAt"`
}

func NewCartEvent(eventType enum.CartEventType, productID, quantity int64, cart Cart) *CartEvent {
	return &CartEvent{
		ID:            uuid.NewString(),
		Type:          eventType,
		ProductID:     productID,
		Quantity:      quantity,
		TotalItems:    cart.TotalItems,
		SubtotalCents: cart.SubtotalCents,
		OccurredAt:    time.Now().UTC(),
	}
}

// StockEvent is what the stock service publishes when inventory changes.
type StockEvent struct {
	ID                string                 `json:"id"`
	ProductID         int64                  `json:"productId"`
	MovementType      enum.StockMovementType `json:"movementType"`
	Quantity          int64                  `json:"quantity"`
	AvailableQuantity int64                  `json:"availableQuantity"`
	OccurredAt        time.Time              `json:"occurredAt"`
}
