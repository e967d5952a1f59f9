package models

import (
	"time"

	"github.com/CSINCE90/retail-project/models/enum"
)

// Stock mirrors the stock service response for a single product.
type Stock struct {
	ID                int64     `json:"id"`
	ProductID         int64     `json:"productId"`
	ProductName       string    `json:"productName,omitempty"`
	AvailableQuantity int64     `json:"availableQuantity"`
	ReservedQuantity  int64     `json:"reservedQuantity"`
	PhysicalQuantity  int64     `json:"physicalQuantity"`
	MinimumQuantity   int64     `json:"minimumQuantity"`
	IsLowStock        bool      `json:"isLowStock"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// StockMovement is one row of the inventory ledger.
type StockMovement struct {
	ID            int64                   `json:"id"`
	ProductID     int64                   `json:"productId"`
	MovementType  enum.StockMovementType  `json:"movementType"`
	Quantity      int64                   `json:"quantity"`
	ReferenceType enum.StockReferenceType `json:"referenceType,omitempty"`
	ReferenceID   int64                   `json:"referenceId,omitempty"`
	Notes         string                  `json:"notes,omitempty"`
	UserID        int64                   `json:"userId,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
}

// LowStockAlert is raised by the stock service when a product drops below its
// minimum quantity.
type LowStockAlert struct {
	ID              int64     `json:"id"`
	ProductID       int64     `json:"productId"`
	ProductName     string    `json:"productName,omitempty"`
	CurrentQuantity int64     `json:"currentQuantity"`
	MinimumQuantity int64     `json:"minimumQuantity"`
	Acknowledged    bool      `json:"acknowledged"`
	CreatedAt       time.Time `json:"createdAt"`
}
