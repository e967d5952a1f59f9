package cart

import "github.com/CSINCE90/retail-project/models"

// Pure item-list transitions. Every function returns a fresh slice and leaves
// its input untouched so the store can treat each mutation as current items ->
// next items with totals recomputed as a projection.

// addLine increments the quantity of an existing line for the same product,
// or appends a new line at the end. When attrs is non-nil it replaces the
// existing selection outright; a nil attrs keeps whatever was chosen before.
func addLine(items []models.LineItem, product models.ProductSummary, quantity int64, attrs map[string]string) []models.LineItem {
	for i := range items {
		if items[i].Product.ID != product.ID {
			continue
		}
		next := make([]models.LineItem, len(items))
		copy(next, items)
		next[i].Quantity += quantity
		if attrs != nil {
			next[i].SelectedAttributes = attrs
		}
		return next
	}

	next := make([]models.LineItem, len(items), len(items)+1)
	copy(next, items)
	return append(next, models.LineItem{
		Product:            product,
		Quantity:           quantity,
		SelectedAttributes: attrs,
	})
}

// removeLine filters out the line for the given product. Removing an absent
// product yields an equal list, which keeps the operation idempotent.
func removeLine(items []models.LineItem, productID int64) []models.LineItem {
	next := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			next = append(next, item)
		}
	}
	return next
}

// setLineQuantity replaces the quantity of the matching line. A quantity of
// zero or less removes the line instead; quantities are strictly positive
// while a line exists. Unknown products are left alone, this never adds lines.
func setLineQuantity(items []models.LineItem, productID, quantity int64) []models.LineItem {
	if quantity <= 0 {
		return removeLine(items, productID)
	}
	next := make([]models.LineItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].Product.ID == productID {
			next[i].Quantity = quantity
			break
		}
	}
	return next
}

// lineQuantity returns the quantity of the matching line, or 0 if absent.
func lineQuantity(items []models.LineItem, productID int64) int64 {
	for i := range items {
		if items[i].Product.ID == productID {
			return items[i].Quantity
		}
	}
	return 0
}

// totals sums quantity and priceCents*quantity over all lines in integer
// arithmetic. These are the only canonical monetary values; the formatted
// subtotal is derived from the cents afterwards.
func totals(items []models.LineItem) (totalItems, subtotalCents int64) {
	for i := range items {
		totalItems += items[i].Quantity
		subtotalCents += items[i].Product.PriceCents * items[i].Quantity
	}
	return totalItems, subtotalCents
}
