package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"storeName"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt.
// It is composed from order data at print time and never persisted.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	OrderNo       string        `json:"orderNo"`
	Date          string        `json:"date"`
	Customer      string        `json:"customer,omitempty"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	Items         []ReceiptItem `json:"items"`
	Total         float64       `json:"total"`
	FooterLines   []string      `json:"footerLines,omitempty"`
}
