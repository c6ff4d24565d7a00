package repository

import (
	"context"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	domainRepo "github.com/izaplantas/floricultura-api/internal/domain/repository"
	"github.com/izaplantas/floricultura-api/internal/infrastructure/storage"
	"github.com/izaplantas/floricultura-api/pkg/eventbus"
)

type financeRepository struct {
	store *storage.Store
	bus   *eventbus.Bus
}

// NewFinanceRepository creates a new finance ledger repository
func NewFinanceRepository(store *storage.Store, bus *eventbus.Bus) domainRepo.FinanceRepository {
	return &financeRepository{store: store, bus: bus}
}

func (r *financeRepository) List(ctx context.Context) ([]entity.FinanceEntry, error) {
	return storage.Read[entity.FinanceEntry](ctx, r.store, storage.KeyFinance)
}

func (r *financeRepository) Append(ctx context.Context, entry *entity.FinanceEntry) error {
	err := storage.Update(ctx, r.store, storage.KeyFinance, func(entries []entity.FinanceEntry) ([]entity.FinanceEntry, error) {
		return append(entries, *entry), nil
	})
	if err != nil {
		return err
	}
	r.bus.Publish(eventbus.CollectionFinance)
	return nil
}

func (r *financeRepository) Delete(ctx context.Context, id string) error {
	err := storage.Update(ctx, r.store, storage.KeyFinance, func(entries []entity.FinanceEntry) ([]entity.FinanceEntry, error) {
		kept := entries[:0]
		for i := range entries {
			if entries[i].ID != id {
				kept = append(kept, entries[i])
			}
		}
		return kept, nil
	})
	if err != nil {
		return err
	}
	r.bus.Publish(eventbus.CollectionFinance)
	return nil
}
