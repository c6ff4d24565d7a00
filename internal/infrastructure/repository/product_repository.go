package repository

import (
	"context"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	domainRepo "github.com/izaplantas/floricultura-api/internal/domain/repository"
	"github.com/izaplantas/floricultura-api/internal/infrastructure/storage"
	"github.com/izaplantas/floricultura-api/pkg/eventbus"
)

type productRepository struct {
	store *storage.Store
	bus   *eventbus.Bus
}

// NewProductRepository creates a new product repository
func NewProductRepository(store *storage.Store, bus *eventbus.Bus) domainRepo.ProductRepository {
	return &productRepository{store: store, bus: bus}
}

func (r *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	return storage.Read[entity.Product](ctx, r.store, storage.KeyProducts)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	products, err := storage.Read[entity.Product](ctx, r.store, storage.KeyProducts)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

func (r *productRepository) Upsert(ctx context.Context, product *entity.Product) error {
	err := storage.Update(ctx, r.store, storage.KeyProducts, func(products []entity.Product) ([]entity.Product, error) {
		for i := range products {
			if products[i].ID == product.ID {
				products[i] = *product
				return products, nil
			}
		}
		return append(products, *product), nil
	})
	if err != nil {
		return err
	}
	r.bus.Publish(eventbus.CollectionProducts)
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	err := storage.Update(ctx, r.store, storage.KeyProducts, func(products []entity.Product) ([]entity.Product, error) {
		kept := products[:0]
		for i := range products {
			if products[i].ID != id {
				kept = append(kept, products[i])
			}
		}
		return kept, nil
	})
	if err != nil {
		return err
	}
	r.bus.Publish(eventbus.CollectionProducts)
	return nil
}

func (r *productRepository) DecrementStock(ctx context.Context, quantities map[string]int) error {
	if len(quantities) == 0 {
		return nil
	}

	err := storage.Update(ctx, r.store, storage.KeyProducts, func(products []entity.Product) ([]entity.Product, error) {
		for i := range products {
			qty, ok := quantities[products[i].ID]
			if !ok || qty <= 0 {
				continue
			}
			products[i].Stock -= qty
			if products[i].Stock < 0 {
				products[i].Stock = 0
			}
		}
		return products, nil
	})
	if err != nil {
		return err
	}
	r.bus.Publish(eventbus.CollectionProducts)
	return nil
}
