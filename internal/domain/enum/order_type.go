package enum

// OrderType represents how an order was placed
type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
	OrderTypePOS      OrderType = "pos"
)

func (t OrderType) String() string {
	return string(t)
}

// IsValid reports whether the type is one of the known values
func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeDelivery, OrderTypePickup, OrderTypePOS:
		return true
	}
	return false
}
