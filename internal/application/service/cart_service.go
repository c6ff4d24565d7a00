package service

import (
	"context"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	"github.com/izaplantas/floricultura-api/internal/domain/enum"
	"github.com/izaplantas/floricultura-api/internal/domain/repository"
	"github.com/izaplantas/floricultura-api/pkg/apperror"
)

// CartService handles the storefront cart.
// Items carry a snapshot of the product taken when it was added.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart returns the current cart contents
func (s *CartService) GetCart(ctx context.Context) ([]entity.CartItem, error) {
	return s.cartRepo.Get(ctx)
}

// AddItem puts a product in the cart, or bumps the quantity of an
// existing line. Quantity defaults to one.
func (s *CartService) AddItem(ctx context.Context, productID string, quantity int) ([]entity.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if product.Status != enum.ProductStatusActive {
		return nil, apperror.NewBadRequestError("Product is not available")
	}
	if product.Stock <= 0 {
		return nil, apperror.NewBadRequestError("Product is out of stock")
	}

	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ID == productID {
			newQty := items[i].Quantity + quantity
			if newQty > product.Stock {
				return nil, apperror.NewBadRequestError("Insufficient stock for requested quantity")
			}
			items[i].Quantity = newQty
			found = true
			break
		}
	}
	if !found {
		if quantity > product.Stock {
			return nil, apperror.NewBadRequestError("Insufficient stock for requested quantity")
		}
		items = append(items, entity.CartItem{Product: *product, Quantity: quantity})
	}

	if err := s.cartRepo.Replace(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity sets the quantity of a cart line. Quantities below one
// are raised to one; removal goes through RemoveItem.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int) ([]entity.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ID == productID {
			// Cap at current catalog stock when the product still exists.
			// A product deleted after being added stays editable.
			product, err := s.productRepo.GetByID(ctx, productID)
			if err != nil {
				return nil, err
			}
			if product != nil && quantity > product.Stock {
				return nil, apperror.NewBadRequestError("Insufficient stock for requested quantity")
			}
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, apperror.NewNotFoundError("Cart item")
	}

	if err := s.cartRepo.Replace(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveItem takes a product out of the cart.
// Removing an absent product succeeds quietly.
func (s *CartService) RemoveItem(ctx context.Context, productID string) ([]entity.CartItem, error) {
	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for i := range items {
		if items[i].ID != productID {
			kept = append(kept, items[i])
		}
	}

	if err := s.cartRepo.Replace(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context) error {
	return s.cartRepo.Replace(ctx, []entity.CartItem{})
}
