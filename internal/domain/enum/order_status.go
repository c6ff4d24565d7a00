package enum

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the known values
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may change to next.
// Cancelled is terminal; any other status may still be cancelled.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next || s == OrderStatusCancelled {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return s == OrderStatusPending && next == OrderStatusCompleted
}
