package models

import (
	"time"

	"github.com/stripe/stripe-go/v79"

	"github.com/CSINCE90/retail-project/models/enum"
)

// Order mirrors the order service payload. Monetary values are integer minor
// units, same as the cart they were created from.
type Order struct {
	ID                int64            `json:"id"`
	OrderNumber       string           `json:"orderNumber,omitempty"`
	UserID            int64            `json:"userId"`
	Status            enum.OrderStatus `json:"status"`
	Currency          stripe.Currency  `json:"currency"`
	TotalItems        int64            `json:"totalItems"`
	SubtotalCents     int64            `json:"subtotalCents"`
	TotalCents        int64            `json:"totalCents"`
	SubtotalFormatted string           `json:"subtotalFormatted,omitempty"`
	TotalFormatted    string           `json:"totalFormatted,omitempty"`
	Items             []OrderItem      `json:"items"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// OrderItem is a frozen cart line at checkout time.
type OrderItem struct {
	ProductID      int64  `json:"productId"`
	ProductName    string `json:"productName"`
	Quantity       int64  `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	SubtotalCents  int64  `json:"subtotalCents"`
}

// AllowChangeStatus reports whether the order may transition to next.
func (o *Order) AllowChangeStatus(next enum.OrderStatus) bool {
	allowed, ok := orderStatusTransitions[o.Status]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == next {
			return true
		}
	}
	return false
}

// CanCancel reports whether the order is still cancellable by the customer.
func (o *Order) CanCancel() bool {
	return o.Status == enum.OrderStatusPending || o.Status == enum.OrderStatusPaid
}

var orderStatusTransitions = map[enum.OrderStatus][]enum.OrderStatus{
	enum.OrderStatusPending:    {enum.OrderStatusPaid, enum.OrderStatusCancelled, enum.OrderStatusFailed},
	enum.OrderStatusPaid:       {enum.OrderStatusProcessing, enum.OrderStatusCancelled, enum.OrderStatusRefunded},
	enum.OrderStatusProcessing: {enum.OrderStatusCompleted, enum.OrderStatusRefunded},
	enum.OrderStatusCompleted:  {enum.OrderStatusRefunded},
}
