package repository

import (
	"context"
	"time"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	domainRepo "github.com/izaplantas/floricultura-api/internal/domain/repository"
	"github.com/izaplantas/floricultura-api/internal/infrastructure/storage"
)

type idempotencyRepository struct {
	store *storage.Store
}

// NewIdempotencyRepository creates a new idempotency key repository
func NewIdempotencyRepository(store *storage.Store) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{store: store}
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error) {
	keys, err := storage.Read[entity.IdempotencyKey](ctx, r.store, storage.KeyIdempotency)
	if err != nil {
		return nil, err
	}
	for i := range keys {
		if keys[i].Key == key {
			return &keys[i], nil
		}
	}
	return nil, nil
}

func (r *idempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	if ikey.CreatedAt.IsZero() {
		ikey.CreatedAt = time.Now().UTC()
	}
	return storage.Update(ctx, r.store, storage.KeyIdempotency, func(keys []entity.IdempotencyKey) ([]entity.IdempotencyKey, error) {
		for i := range keys {
			if keys[i].Key == ikey.Key {
				keys[i] = *ikey
				return keys, nil
			}
		}
		return append(keys, *ikey), nil
	})
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	now := time.Now()
	return storage.Update(ctx, r.store, storage.KeyIdempotency, func(keys []entity.IdempotencyKey) ([]entity.IdempotencyKey, error) {
		kept := keys[:0]
		for i := range keys {
			if keys[i].ExpiresAt.After(now) {
				kept = append(kept, keys[i])
			}
		}
		return kept, nil
	})
}
