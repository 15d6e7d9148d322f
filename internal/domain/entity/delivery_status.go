package entity

// DeliveryStatus is the lifecycle state of a delivery.
type DeliveryStatus string

const (
	// DeliveryStatusInTransit is the initial state; stock is reserved.
	DeliveryStatusInTransit DeliveryStatus = "intransit"
	// DeliveryStatusDelivered is terminal; stock stays consumed.
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	// DeliveryStatusCancelled is terminal; stock was released.
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
)

// String returns the string representation of the DeliveryStatus.
func (s DeliveryStatus) String() string {
	return string(s)
}

// IsValid checks if the DeliveryStatus is a known value.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusInTransit, DeliveryStatusDelivered, DeliveryStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryStatusDelivered || s == DeliveryStatusCancelled
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Only in-transit deliveries move, and only to a terminal state.
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	return s == DeliveryStatusInTransit && next.IsTerminal()
}

// TerminalDeliveryStatuses lists the states a delivery never leaves.
func TerminalDeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{DeliveryStatusDelivered, DeliveryStatusCancelled}
}
