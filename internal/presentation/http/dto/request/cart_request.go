package request

// AddCartItemRequest represents adding a product to the cart
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

// UpdateCartItemRequest represents changing the quantity of a cart line
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
