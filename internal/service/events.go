package service

// Event types pushed to live feed subscribers.
const (
	EventMenuItemCreated  = "menu_item_created"
	EventOrderCreated     = "order_created"
	EventInventoryCreated = "inventory_created"
	EventInventoryUpdated = "inventory_updated"
)

// Broadcaster fans events out to live feed subscribers. Implementations
// must not block the caller.
type Broadcaster interface {
	Broadcast(eventType string, payload interface{})
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, interface{}) {}

func orNop(b Broadcaster) Broadcaster {
	if b == nil {
		return nopBroadcaster{}
	}
	return b
}
