package models

// ProductSummary is the snapshot of catalog data a cart line carries. The
// fields mirror the product service payload; only ID and PriceCents are
// interpreted by the cart logic, everything else passes through for rendering.
type ProductSummary struct {
	ID              int64  `json:"id"`
	SKU             string `json:"sku,omitempty"`
	Name            string `json:"name"`
	Slug            string `json:"slug,omitempty"`
	PriceCents      int64  `json:"priceCents"`
	PriceFormatted  string `json:"priceFormatted,omitempty"`
	StockQuantity   int64  `json:"stockQuantity,omitempty"`
	TrackInventory  bool   `json:"trackInventory,omitempty"`
	IsActive        bool   `json:"isActive,omitempty"`
	PrimaryImageURL string `json:"primaryImageUrl,omitempty"`
	CategoryName    string `json:"categoryName,omitempty"`
	BrandName       string `json:"brandName,omitempty"`
}
