package request

// CreateFinanceEntryRequest represents a manually recorded ledger entry
type CreateFinanceEntryRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Description string  `json:"description" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"omitempty,max=100"`
	Status      string  `json:"status" binding:"omitempty,oneof=paid pending"`
	Date        string  `json:"date" binding:"omitempty"` // RFC 3339
}

// FinanceFilterRequest represents ledger filter parameters
type FinanceFilterRequest struct {
	Type    string `form:"type" binding:"omitempty,oneof=income expense"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
