package entity

import "encoding/json"

// CartItem is a snapshot of a product placed in the cart, plus a quantity.
// The snapshot is intentional: the price the customer saw is the price kept.
type CartItem struct {
	Product
	Quantity int
}

// Subtotal returns the line subtotal in cents
func (i *CartItem) Subtotal() int64 {
	return i.SalePrice * int64(i.Quantity)
}

// cartItemJSON is a helper struct for JSON marshaling with decimal prices
type cartItemJSON struct {
	productJSON
	Quantity int `json:"quantity"`
}

// MarshalJSON converts CartItem to JSON with decimal prices
func (i CartItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(cartItemJSON{
		productJSON: i.Product.toJSON(),
		Quantity:    i.Quantity,
	})
}

// UnmarshalJSON converts JSON with decimal prices into a CartItem
func (i *CartItem) UnmarshalJSON(data []byte) error {
	var cj cartItemJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	i.Product.fromJSON(cj.productJSON)
	i.Quantity = cj.Quantity
	return nil
}

// CartTotal returns the total of all cart lines in cents
func CartTotal(items []CartItem) int64 {
	var total int64
	for i := range items {
		total += items[i].Subtotal()
	}
	return total
}
