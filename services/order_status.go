package services

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderDelivered = "delivered"
	OrderPaid      = "paid"
	OrderCancelled = "cancelled"
)

// orderTransitions is the allowed-move table. Status only moves forward
// along the fulfillment chain; cancelled is reachable from any non-terminal
// state; paid and cancelled are terminal.
var orderTransitions = map[string][]string{
	OrderPending:   {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderDelivered, OrderCancelled},
	OrderDelivered: {OrderPaid, OrderCancelled},
	OrderPaid:      {},
	OrderCancelled: {},
}

func IsValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether no further moves are allowed.
func IsTerminalStatus(s string) bool {
	return len(orderTransitions[s]) == 0 && IsValidOrderStatus(s)
}
