package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	"github.com/izaplantas/floricultura-api/internal/domain/enum"
	domainRepo "github.com/izaplantas/floricultura-api/internal/domain/repository"
	"github.com/izaplantas/floricultura-api/internal/infrastructure/storage"
	"github.com/izaplantas/floricultura-api/pkg/eventbus"
)

func newSeededProductRepo(t *testing.T) (domainRepo.ProductRepository, *storage.Store) {
	t.Helper()
	store := storage.New(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.EnsureSeeded(context.Background()))
	return NewProductRepository(store, eventbus.New()), store
}

func TestProductRepositoryGetByID(t *testing.T) {
	repo, _ := newSeededProductRepo(t)
	ctx := context.Background()

	product, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Costela de Adão", product.Name)

	missing, err := repo.GetByID(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepositoryUpsertReplacesInPlace(t *testing.T) {
	repo, _ := newSeededProductRepo(t)
	ctx := context.Background()

	updated := &entity.Product{
		ID:       "1",
		Code:     "PL001",
		Name:     "Costela de Adão Grande",
		Category: enum.CategoryPlants,
		Stock:    8,
		Status:   enum.ProductStatusActive,
	}
	require.NoError(t, repo.Upsert(ctx, updated))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	// replaced product keeps its position in the collection
	assert.Equal(t, "Costela de Adão Grande", products[0].Name)
	assert.Equal(t, 8, products[0].Stock)
}

func TestProductRepositoryUpsertAppendsNew(t *testing.T) {
	repo, _ := newSeededProductRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &entity.Product{
		ID:       "99",
		Code:     "PL099",
		Name:     "Samambaia",
		Category: enum.CategoryPlants,
		Status:   enum.ProductStatusActive,
	}))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Samambaia", products[2].Name)
}

func TestProductRepositoryDeleteIsIdempotent(t *testing.T) {
	repo, _ := newSeededProductRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "1"))
	require.NoError(t, repo.Delete(ctx, "1"))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "2", products[0].ID)
}

func TestProductRepositoryDecrementStockClampsAtZero(t *testing.T) {
	repo, _ := newSeededProductRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.DecrementStock(ctx, map[string]int{"1": 100}))

	product, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, 0, product.Stock)
}

func TestProductRepositoryDecrementStockSkipsMissing(t *testing.T) {
	repo, _ := newSeededProductRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.DecrementStock(ctx, map[string]int{
		"1":       5,
		"unknown": 3,
	}))

	product, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 10, product.Stock)

	other, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 30, other.Stock)
}

func TestCartRepositoryGetAndReplace(t *testing.T) {
	store := storage.New(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()
	repo := NewCartRepository(store, eventbus.New())

	items, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	cart := []entity.CartItem{{
		Product:  entity.Product{ID: "1", Name: "Costela de Adão", SalePrice: 4500},
		Quantity: 2,
	}}
	require.NoError(t, repo.Replace(ctx, cart))

	items, err = repo.Get(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(9000), items[0].Subtotal())
}
