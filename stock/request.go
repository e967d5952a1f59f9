package stock

import "github.com/CSINCE90/retail-project/models/enum"

// AdjustStockParams is the admin stock adjustment request. Quantity is the
// magnitude of the movement; the movement type says which direction.
type AdjustStockParams struct {
	ProductID     int64                   `json:"-" validate:"required,gt=0"`
	MovementType  enum.StockMovementType  `json:"movementType" validate:"required,oneof=IN OUT ADJUSTMENT"`
	Quantity      int64                   `json:"quantity" validate:"required,gt=0"`
	ReferenceType enum.StockReferenceType `json:"referenceType,omitempty" validate:"omitempty,oneof=ORDER PURCHASE MANUAL TRANSFER RETURN"`
	ReferenceID   int64                   `json:"referenceId,omitempty"`
	Notes         string                  `json:"notes,omitempty"`
	UserID        int64                   `json:"userId,omitempty"`
}

// UpdateMinimumQuantityParams sets the low-stock threshold for a product.
type UpdateMinimumQuantityParams struct {
	ProductID       int64 `json:"-" validate:"required,gt=0"`
	MinimumQuantity int64 `json:"minimumQuantity" validate:"gte=0"`
}
