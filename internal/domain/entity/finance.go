package entity

import (
	"encoding/json"
	"time"

	"github.com/izaplantas/floricultura-api/internal/domain/enum"
)

// FinanceEntry represents a single line in the finance ledger
type FinanceEntry struct {
	ID          string
	Type        enum.EntryType
	Description string
	Amount      int64 // Stored in cents
	Category    string
	Date        time.Time
	Status      enum.EntrySettlement
}

// GetAmountDecimal returns the amount as a decimal (for display)
func (e *FinanceEntry) GetAmountDecimal() float64 {
	return float64(e.Amount) / 100
}

// financeEntryJSON is a helper struct for JSON marshaling with a decimal amount
type financeEntryJSON struct {
	ID          string               `json:"id"`
	Type        enum.EntryType       `json:"type"`
	Description string               `json:"description"`
	Amount      float64              `json:"amount"` // Decimal value for JSON
	Category    string               `json:"category"`
	Date        time.Time            `json:"date"`
	Status      enum.EntrySettlement `json:"status"`
}

// MarshalJSON converts FinanceEntry to JSON with a decimal amount
func (e FinanceEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(financeEntryJSON{
		ID:          e.ID,
		Type:        e.Type,
		Description: e.Description,
		Amount:      e.GetAmountDecimal(),
		Category:    e.Category,
		Date:        e.Date,
		Status:      e.Status,
	})
}

// UnmarshalJSON converts JSON with a decimal amount into a FinanceEntry
func (e *FinanceEntry) UnmarshalJSON(data []byte) error {
	var ej financeEntryJSON
	if err := json.Unmarshal(data, &ej); err != nil {
		return err
	}
	e.ID = ej.ID
	e.Type = ej.Type
	e.Description = ej.Description
	e.Amount = CentsFromDecimal(ej.Amount)
	e.Category = ej.Category
	e.Date = ej.Date
	e.Status = ej.Status
	return nil
}
