package repository

import (
	"context"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	"github.com/izaplantas/floricultura-api/internal/domain/enum"
	domainRepo "github.com/izaplantas/floricultura-api/internal/domain/repository"
	"github.com/izaplantas/floricultura-api/internal/infrastructure/storage"
	"github.com/izaplantas/floricultura-api/pkg/eventbus"
)

type orderRepository struct {
	store *storage.Store
	bus   *eventbus.Bus
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(store *storage.Store, bus *eventbus.Bus) domainRepo.OrderRepository {
	return &orderRepository{store: store, bus: bus}
}

func (r *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	return storage.Read[entity.Order](ctx, r.store, storage.KeyOrders)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	orders, err := storage.Read[entity.Order](ctx, r.store, storage.KeyOrders)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

func (r *orderRepository) Append(ctx context.Context, order *entity.Order) error {
	err := storage.Update(ctx, r.store, storage.KeyOrders, func(orders []entity.Order) ([]entity.Order, error) {
		return append(orders, *order), nil
	})
	if err != nil {
		return err
	}
	r.bus.Publish(eventbus.CollectionOrders)
	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status enum.OrderStatus) error {
	err := storage.Update(ctx, r.store, storage.KeyOrders, func(orders []entity.Order) ([]entity.Order, error) {
		for i := range orders {
			if orders[i].ID == id {
				orders[i].Status = status
				break
			}
		}
		return orders, nil
	})
	if err != nil {
		return err
	}
	r.bus.Publish(eventbus.CollectionOrders)
	return nil
}
