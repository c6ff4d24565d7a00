package entity

import (
	"encoding/json"
	"time"

	"github.com/izaplantas/floricultura-api/internal/domain/enum"
)

// Order represents a sale, either placed through the storefront checkout
// or registered at the counter.
type Order struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Items         []CartItem
	Total         int64 // Stored in cents
	Status        enum.OrderStatus
	PaymentMethod string
	Date          time.Time
	Type          enum.OrderType
}

// GetTotalDecimal returns the order total as a decimal (for display)
func (o *Order) GetTotalDecimal() float64 {
	return float64(o.Total) / 100
}

// orderJSON is a helper struct for JSON marshaling with a decimal total
type orderJSON struct {
	ID            string           `json:"id"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone,omitempty"`
	Items         []CartItem       `json:"items"`
	Total         float64          `json:"total"` // Decimal value for JSON
	Status        enum.OrderStatus `json:"status"`
	PaymentMethod string           `json:"paymentMethod"`
	Date          time.Time        `json:"date"`
	Type          enum.OrderType   `json:"type"`
}

// MarshalJSON converts Order to JSON with a decimal total
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderJSON{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Items:         o.Items,
		Total:         o.GetTotalDecimal(),
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		Date:          o.Date,
		Type:          o.Type,
	})
}

// UnmarshalJSON converts JSON with a decimal total into an Order
func (o *Order) UnmarshalJSON(data []byte) error {
	var oj orderJSON
	if err := json.Unmarshal(data, &oj); err != nil {
		return err
	}
	o.ID = oj.ID
	o.CustomerName = oj.CustomerName
	o.CustomerPhone = oj.CustomerPhone
	o.Items = oj.Items
	o.Total = CentsFromDecimal(oj.Total)
	o.Status = oj.Status
	o.PaymentMethod = oj.PaymentMethod
	o.Date = oj.Date
	o.Type = oj.Type
	return nil
}
