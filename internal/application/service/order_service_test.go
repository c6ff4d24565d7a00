package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"

	"github.com/izaplantas/floricultura-api/internal/config"
	"github.com/izaplantas/floricultura-api/internal/domain/enum"
	infraRepo "github.com/izaplantas/floricultura-api/internal/infrastructure/repository"
	"github.com/izaplantas/floricultura-api/internal/infrastructure/storage"
	"github.com/izaplantas/floricultura-api/pkg/apperror"
	"github.com/izaplantas/floricultura-api/pkg/eventbus"
)

type orderFixture struct {
	orders   *OrderService
	cart     *CartService
	products *ProductService
	finance  *FinanceService
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	store := storage.New(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.EnsureSeeded(context.Background()))

	bus := eventbus.New()
	productRepo := infraRepo.NewProductRepository(store, bus)
	cartRepo := infraRepo.NewCartRepository(store, bus)
	orderRepo := infraRepo.NewOrderRepository(store, bus)
	financeRepo := infraRepo.NewFinanceRepository(store, bus)

	storeCfg := config.StoreConfig{
		Name:     "IZAplantas - Floricultura",
		WhatsApp: "5573999535407",
	}

	return &orderFixture{
		orders:   NewOrderService(orderRepo, productRepo, financeRepo, cartRepo, storeCfg),
		cart:     NewCartService(cartRepo, productRepo),
		products: NewProductService(productRepo),
		finance:  NewFinanceService(financeRepo),
	}
}

func TestCheckoutRecordsOrderStockAndLedger(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	// 5 x Costela de Adão at R$ 45.00
	_, err := f.cart.AddItem(ctx, "1", 5)
	require.NoError(t, err)

	result, err := f.orders.Checkout(ctx, &CheckoutInput{
		CustomerName:  "Maria",
		CustomerPhone: "73988887777",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Order)

	assert.Equal(t, int64(22500), result.Order.Total)
	assert.Equal(t, enum.OrderStatusPending, result.Order.Status)
	assert.Equal(t, enum.OrderTypeDelivery, result.Order.Type)
	assert.Equal(t, "Maria", result.Order.CustomerName)

	// stock decremented
	product, err := f.products.GetProduct(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 10, product.Stock)

	// one paid income entry for the full order total
	summary, err := f.finance.Summary(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 225.00, summary.Income, 0.001)
	assert.InDelta(t, 225.00, summary.Balance, 0.001)

	// cart cleared
	items, err := f.cart.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// handoff link ready to open
	assert.True(t, strings.HasPrefix(result.WhatsAppURL, "https://wa.me/5573999535407?text="))
	assert.Contains(t, result.Message, "Costela de Adão")
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Checkout(context.Background(), &CheckoutInput{})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestCheckoutDefaultsCustomerName(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "2", 1)
	require.NoError(t, err)

	result, err := f.orders.Checkout(ctx, &CheckoutInput{})
	require.NoError(t, err)
	assert.Equal(t, "Cliente Site", result.Order.CustomerName)
}

func TestFulfillmentClampsStockAtZero(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.products.SaveProduct(ctx, &SaveProductInput{
		ID:        "3",
		Code:      "PL003",
		Name:      "Suculenta Mini",
		Category:  "Plantas",
		SalePrice: 12.50,
		Stock:     3,
	})
	require.NoError(t, err)

	// cart snapshot then stock shrinks before checkout
	_, err = f.cart.AddItem(ctx, "3", 3)
	require.NoError(t, err)
	_, err = f.products.SaveProduct(ctx, &SaveProductInput{
		ID:        "3",
		Code:      "PL003",
		Name:      "Suculenta Mini",
		Category:  "Plantas",
		SalePrice: 12.50,
		Stock:     2,
	})
	require.NoError(t, err)

	_, err = f.orders.Checkout(ctx, &CheckoutInput{})
	require.NoError(t, err)

	product, err := f.products.GetProduct(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
}

func TestFulfillmentSkipsDeletedProducts(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "1", 2)
	require.NoError(t, err)
	require.NoError(t, f.products.DeleteProduct(ctx, "1"))

	// the order still goes through with the snapshot price
	result, err := f.orders.Checkout(ctx, &CheckoutInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(9000), result.Order.Total)
}

func TestFinalizePOSSaleCompletesImmediately(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.orders.FinalizePOSSale(ctx, &POSSaleInput{
		Items: []POSItemInput{{ProductID: "2", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, enum.OrderStatusCompleted, order.Status)
	assert.Equal(t, enum.OrderTypePOS, order.Type)
	assert.Equal(t, "Cliente Balcão", order.CustomerName)
	assert.Equal(t, "Dinheiro", order.PaymentMethod)
	assert.Equal(t, int64(6580), order.Total)

	product, err := f.products.GetProduct(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 28, product.Stock)
}

func TestFinalizePOSSaleRejectsInsufficientStock(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.FinalizePOSSale(context.Background(), &POSSaleInput{
		Items: []POSItemInput{{ProductID: "1", Quantity: 50}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock")
}

func TestUpdateStatusTransitions(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "1", 1)
	require.NoError(t, err)
	result, err := f.orders.Checkout(ctx, &CheckoutInput{})
	require.NoError(t, err)
	orderID := result.Order.ID

	order, err := f.orders.UpdateStatus(ctx, orderID, enum.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCompleted, order.Status)

	// same-status transition is rejected
	_, err = f.orders.UpdateStatus(ctx, orderID, enum.OrderStatusCompleted)
	require.Error(t, err)

	// a completed order can still be cancelled
	order, err = f.orders.UpdateStatus(ctx, orderID, enum.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, order.Status)

	// cancelled is terminal
	_, err = f.orders.UpdateStatus(ctx, orderID, enum.OrderStatusPending)
	require.Error(t, err)
}

func TestCancellationLeavesStockAndLedgerAlone(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "1", 5)
	require.NoError(t, err)
	result, err := f.orders.Checkout(ctx, &CheckoutInput{})
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(ctx, result.Order.ID, enum.OrderStatusCancelled)
	require.NoError(t, err)

	product, err := f.products.GetProduct(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 10, product.Stock)

	summary, err := f.finance.Summary(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 225.00, summary.Income, 0.001)
}

func TestListOrdersNewestFirst(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	first, err := f.orders.FinalizePOSSale(ctx, &POSSaleInput{
		Items: []POSItemInput{{ProductID: "1", Quantity: 1}},
	})
	require.NoError(t, err)
	second, err := f.orders.FinalizePOSSale(ctx, &POSSaleInput{
		Items: []POSItemInput{{ProductID: "2", Quantity: 1}},
	})
	require.NoError(t, err)

	result, err := f.orders.ListOrders(ctx, &OrderFilter{})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, second.ID, result.Items[0].ID)
	assert.Equal(t, first.ID, result.Items[1].ID)
}

func TestGetOrderNotFound(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.GetOrder(context.Background(), "missing")
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}
