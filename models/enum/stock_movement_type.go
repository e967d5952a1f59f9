package enum

// StockMovementType mirrors the stock service inventory ledger movement kinds.
type StockMovementType string

const (
	StockMovementIn         StockMovementType = "IN"
	StockMovementOut        StockMovementType = "OUT"
	StockMovementReserve    StockMovementType = "RESERVE"
	StockMovementRelease    StockMovementType = "RELEASE"
	StockMovementTransfer   StockMovementType = "TRANSFER"
	StockMovementAdjustment StockMovementType = "ADJUSTMENT"
	StockMovementReturn     StockMovementType = "RETURN"
)
