package repository

import (
	"context"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
)

// CartRepository defines the interface for the storefront cart.
// The cart is a single shared collection: callers read the whole cart,
// mutate it, and replace it wholesale.
type CartRepository interface {
	// Get returns the current cart contents
	Get(ctx context.Context) ([]entity.CartItem, error)
	// Replace overwrites the cart with the given items
	Replace(ctx context.Context, items []entity.CartItem) error
}
