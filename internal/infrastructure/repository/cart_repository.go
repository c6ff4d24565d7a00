package repository

import (
	"context"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	domainRepo "github.com/izaplantas/floricultura-api/internal/domain/repository"
	"github.com/izaplantas/floricultura-api/internal/infrastructure/storage"
	"github.com/izaplantas/floricultura-api/pkg/eventbus"
)

type cartRepository struct {
	store *storage.Store
	bus   *eventbus.Bus
}

// NewCartRepository creates a new cart repository
func NewCartRepository(store *storage.Store, bus *eventbus.Bus) domainRepo.CartRepository {
	return &cartRepository{store: store, bus: bus}
}

func (r *cartRepository) Get(ctx context.Context) ([]entity.CartItem, error) {
	return storage.Read[entity.CartItem](ctx, r.store, storage.KeyCart)
}

func (r *cartRepository) Replace(ctx context.Context, items []entity.CartItem) error {
	if err := storage.Write(ctx, r.store, storage.KeyCart, items); err != nil {
		return err
	}
	r.bus.Publish(eventbus.CollectionCart)
	return nil
}
