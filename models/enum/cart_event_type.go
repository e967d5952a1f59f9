package enum

// CartEventType identifies which mutation produced a cart event.
type CartEventType string

const (
	CartEventItemAdded       CartEventType = "item_added"
	CartEventItemRemoved     CartEventType = "item_removed"
	CartEventQuantityUpdated CartEventType = "quantity_updated"
	CartEventCleared         CartEventType = "cleared"
)
