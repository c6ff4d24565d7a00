package repository

import (
	"context"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
)

// FinanceRepository defines the interface for the finance ledger
type FinanceRepository interface {
	// List returns all ledger entries in insertion order
	List(ctx context.Context) ([]entity.FinanceEntry, error)
	// Append adds a new entry to the ledger
	Append(ctx context.Context, entry *entity.FinanceEntry) error
	// Delete removes the entry with the given ID. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id string) error
}
