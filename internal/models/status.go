package models

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusCreated        OrderStatus = "CREATED"
	StatusConfirmed      OrderStatus = "CONFIRMED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

// transitions is the allowed status graph. Order creation only ever assigns
// CREATED; the richer states exist so fulfilment can be layered on top
// without touching order assembly or pricing.
var transitions = map[OrderStatus][]OrderStatus{
	StatusCreated:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether s has no outgoing transitions.
func (s OrderStatus) Terminal() bool {
	return len(transitions[s]) == 0
}
