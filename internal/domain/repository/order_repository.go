package repository

import (
	"context"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	"github.com/izaplantas/floricultura-api/internal/domain/enum"
)

// OrderRepository defines the interface for order data operations.
// Orders are append-only: they are never deleted, only their status changes.
type OrderRepository interface {
	// List returns all orders in insertion order
	List(ctx context.Context) ([]entity.Order, error)
	// GetByID returns the order with the given ID, or nil if absent
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// Append adds a new order to the history
	Append(ctx context.Context, order *entity.Order) error
	// UpdateStatus sets the status of the order with the given ID.
	// Updating an absent ID is a no-op.
	UpdateStatus(ctx context.Context, id string, status enum.OrderStatus) error
}
