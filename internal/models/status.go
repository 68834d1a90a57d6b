package models

// DeliveryStatus is the delivery lifecycle state of an order.
// Progression is monotonic forward (Processing -> Shipped -> Delivered),
// with Cancelled reachable from any non-terminal state. Delivered and
// Cancelled are terminal: no further transition is permitted.
type DeliveryStatus string

const (
	DeliveryProcessing DeliveryStatus = "Processing"
	DeliveryShipped    DeliveryStatus = "Shipped"
	DeliveryDelivered  DeliveryStatus = "Delivered"
	DeliveryCancelled  DeliveryStatus = "Cancelled"
)

// deliveryRank orders the forward progression. Cancelled has no rank as it
// is an escape, not a step.
var deliveryRank = map[DeliveryStatus]int{
	DeliveryProcessing: 0,
	DeliveryShipped:    1,
	DeliveryDelivered:  2,
}

// Valid reports whether s is one of the known delivery statuses.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryProcessing, DeliveryShipped, DeliveryDelivered, DeliveryCancelled:
		return true
	}
	return false
}

// Terminal reports whether s permits no further transitions.
func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

// CanTransitionTo reports whether moving from s to next is a legal
// transition: strictly forward along the progression, or Cancelled from any
// non-terminal state.
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	if s.Terminal() || !next.Valid() {
		return false
	}
	if next == DeliveryCancelled {
		return true
	}
	return deliveryRank[next] > deliveryRank[s]
}

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentSuccess PaymentStatus = "Success"
	PaymentFailed  PaymentStatus = "Failed"
)

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentSuccess, PaymentFailed:
		return true
	}
	return false
}
