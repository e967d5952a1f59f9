package models

// LineItem is one row in the cart: a product snapshot, the number of units
// requested and the attribute selections made when the product was added.
type LineItem struct {
	Product            ProductSummary    `json:"product"`
	Quantity           int64             `json:"quantity"`
	SelectedAttributes map[string]string `json:"selectedAttributes,omitempty"`
}

// Cart is the persisted snapshot shape: the ordered line items plus the
// derived totals. TotalItems and SubtotalCents are recomputed from Items on
// every mutation and are never set independently.
type Cart struct {
	Items             []LineItem `json:"items"`
	TotalItems        int64      `json:"totalItems"`
	SubtotalCents     int64      `json:"subtotalCents"`
	SubtotalFormatted string     `json:"subtotalFormatted"`
}

func NewCart() *Cart {
	return &Cart{Items: []LineItem{}}
}

// FindItem returns the line item for the given product, or nil.
func (c *Cart) FindItem(productID int64) *LineItem {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Clone deep-copies the cart so callers can hold a snapshot without aliasing
// the live item slice or the attribute maps.
func (c *Cart) Clone() Cart {
	out := *c
	out.Items = make([]LineItem, len(c.Items))
	copy(out.Items, c.Items)
	for i := range out.Items {
		if attrs := out.Items[i].SelectedAttributes; attrs != nil {
			cp := make(map[string]string, len(attrs))
			for k, v := range attrs {
				cp[k] = v
			}
			out.Items[i].SelectedAttributes = cp
		}
	}
	return out
}
