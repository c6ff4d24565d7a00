package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	store := New(bucket)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestReadMissingKeyReturnsEmpty(t *testing.T) {
	store := newTestStore(t)

	items, err := Read[entity.Product](context.Background(), store, KeyProducts)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := DefaultCatalog()
	require.NoError(t, Write(ctx, store, KeyProducts, in))

	out, err := Read[entity.Product](ctx, store, KeyProducts)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Costela de Adão", out[0].Name)
	assert.Equal(t, int64(4500), out[0].SalePrice)
	assert.Equal(t, "VS001", out[1].Code)
}

func TestUpdateAppliesFunctionResult(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Write(ctx, store, KeyProducts, DefaultCatalog()))

	err := Update(ctx, store, KeyProducts, func(items []entity.Product) ([]entity.Product, error) {
		items[0].Stock = 0
		return items, nil
	})
	require.NoError(t, err)

	out, err := Read[entity.Product](ctx, store, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, 0, out[0].Stock)
}

func TestUpdateErrorAbortsWrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, Write(ctx, store, KeyProducts, DefaultCatalog()))

	err := Update(ctx, store, KeyProducts, func(items []entity.Product) ([]entity.Product, error) {
		return nil, assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	out, err := Read[entity.Product](ctx, store, KeyProducts)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestEnsureSeededInitializesCollections(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.EnsureSeeded(ctx))

	products, err := Read[entity.Product](ctx, store, KeyProducts)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	orders, err := Read[entity.Order](ctx, store, KeyOrders)
	require.NoError(t, err)
	assert.Empty(t, orders)

	entries, err := Read[entity.FinanceEntry](ctx, store, KeyFinance)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// the cart key stays absent until a visitor adds something
	items, err := Read[entity.CartItem](ctx, store, KeyCart)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestEnsureSeededLeavesExistingDataAlone(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	custom := []entity.Product{{ID: "50", Code: "XX001", Name: "Orquídea"}}
	require.NoError(t, Write(ctx, store, KeyProducts, custom))

	require.NoError(t, store.EnsureSeeded(ctx))

	products, err := Read[entity.Product](ctx, store, KeyProducts)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Orquídea", products[0].Name)
}

func TestFailureWrapsDecodeErrors(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	store := New(bucket)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	require.NoError(t, bucket.WriteAll(ctx, KeyProducts, []byte("not json"), nil))

	_, err := Read[entity.Product](ctx, store, KeyProducts)
	require.Error(t, err)
	assert.True(t, IsFailure(err))
}
