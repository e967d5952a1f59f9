package enum

// StockReferenceType says what a stock movement refers to.
type StockReferenceType string

const (
	StockReferenceOrder    StockReferenceType = "ORDER"
	StockReferencePurchase StockReferenceType = "PURCHASE"
	StockReferenceManual   StockReferenceType = "MANUAL"
	StockReferenceTransfer StockReferenceType = "TRANSFER"
	StockReferenceReturn   StockReferenceType = "RETURN"
)
