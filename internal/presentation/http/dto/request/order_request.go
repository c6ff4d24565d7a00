package request

// CheckoutRequest represents a storefront checkout
type CheckoutRequest struct {
	CustomerName  string `json:"customerName" binding:"omitempty,max=255"`
	CustomerPhone string `json:"customerPhone" binding:"omitempty,max=30"`
}

// POSItemRequest represents one line of a counter sale
type POSItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// POSSaleRequest represents a counter sale registered in the back office
type POSSaleRequest struct {
	CustomerName  string           `json:"customerName" binding:"omitempty,max=255"`
	PaymentMethod string           `json:"paymentMethod" binding:"omitempty,max=50"`
	Items         []POSItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents an order status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed cancelled"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Status  string `form:"status" binding:"omitempty,oneof=pending completed cancelled"`
	Type    string `form:"type" binding:"omitempty,oneof=delivery pickup pos"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
