package repository

import (
	"context"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
)

// ProductRepository defines the interface for catalog data operations
type ProductRepository interface {
	// List returns the whole catalog in insertion order
	List(ctx context.Context) ([]entity.Product, error)
	// GetByID returns the product with the given ID, or nil if absent
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Upsert replaces the product with a matching ID in place, or appends it
	Upsert(ctx context.Context, product *entity.Product) error
	// Delete removes the product with the given ID. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id string) error
	// DecrementStock subtracts quantities from product stock in one pass.
	// Stock never goes below zero; IDs not in the catalog are skipped.
	DecrementStock(ctx context.Context, quantities map[string]int) error
}
