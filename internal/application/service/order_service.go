package service

import (
	"context"
	"sync"
	"time"

	"github.com/izaplantas/floricultura-api/internal/config"
	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	"github.com/izaplantas/floricultura-api/internal/domain/enum"
	"github.com/izaplantas/floricultura-api/internal/domain/repository"
	"github.com/izaplantas/floricultura-api/pkg/apperror"
	"github.com/izaplantas/floricultura-api/pkg/pagination"
	"github.com/izaplantas/floricultura-api/pkg/utils"
	"github.com/izaplantas/floricultura-api/pkg/whatsapp"
)

// SalesCategory is the ledger category assigned to order income entries
const SalesCategory = "Vendas"

// OrderService handles order fulfillment: recording the sale, adjusting
// stock, and posting the matching income entry in one sequence.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	financeRepo repository.FinanceRepository
	cartRepo    repository.CartRepository
	store       config.StoreConfig

	// serializes fulfillment so the three collection writes of one
	// order never interleave with another order's
	mu sync.Mutex
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	financeRepo repository.FinanceRepository,
	cartRepo repository.CartRepository,
	store config.StoreConfig,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		financeRepo: financeRepo,
		cartRepo:    cartRepo,
		store:       store,
	}
}

// placeOrder appends the order, decrements stock for its items and posts
// the income entry. The order is recorded regardless of stock levels;
// decrements clamp at zero and unknown products are skipped.
func (s *OrderService) placeOrder(ctx context.Context, order *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.orderRepo.Append(ctx, order); err != nil {
		return err
	}

	quantities := make(map[string]int, len(order.Items))
	for i := range order.Items {
		quantities[order.Items[i].ID] += order.Items[i].Quantity
	}
	if err := s.productRepo.DecrementStock(ctx, quantities); err != nil {
		return err
	}

	entry := &entity.FinanceEntry{
		ID:          utils.NewID(),
		Type:        enum.EntryTypeIncome,
		Description: "Venda #" + utils.ShortID(order.ID),
		Amount:      order.Total,
		Category:    SalesCategory,
		Date:        time.Now().UTC(),
		Status:      enum.EntrySettlementPaid,
	}
	return s.financeRepo.Append(ctx, entry)
}

// CheckoutInput represents the storefront checkout input
type CheckoutInput struct {
	CustomerName  string
	CustomerPhone string
}

// CheckoutResult is what the storefront shows after a checkout: the
// recorded order plus the WhatsApp handoff.
type CheckoutResult struct {
	Order       *entity.Order `json:"order"`
	Message     string        `json:"message"`
	WhatsAppURL string        `json:"whatsappUrl"`
}

// Checkout turns the current cart into a pending delivery order, clears
// the cart and builds the WhatsApp link the customer uses to finish the
// conversation with the store.
func (s *OrderService) Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutResult, error) {
	items, err := s.cartRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}

	customerName := input.CustomerName
	if customerName == "" {
		customerName = "Cliente Site"
	}

	order := &entity.Order{
		ID:            utils.NewID(),
		CustomerName:  customerName,
		CustomerPhone: input.CustomerPhone,
		Items:         items,
		Total:         entity.CartTotal(items),
		Status:        enum.OrderStatusPending,
		PaymentMethod: "whatsapp_negotiation",
		Date:          time.Now().UTC(),
		Type:          enum.OrderTypeDelivery,
	}

	if err := s.placeOrder(ctx, order); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Replace(ctx, []entity.CartItem{}); err != nil {
		return nil, err
	}

	message := whatsapp.OrderMessage(s.store.Name, order)
	return &CheckoutResult{
		Order:       order,
		Message:     message,
		WhatsAppURL: whatsapp.Link(s.store.WhatsApp, message),
	}, nil
}

// POSItemInput represents one line of a counter sale
type POSItemInput struct {
	ProductID string
	Quantity  int
}

// POSSaleInput represents a counter sale registered by the back office
type POSSaleInput struct {
	CustomerName  string
	PaymentMethod string
	Items         []POSItemInput
}

// FinalizePOSSale records a counter sale. Counter sales complete
// immediately: the customer paid at the register.
func (s *OrderService) FinalizePOSSale(ctx context.Context, input *POSSaleInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Sale must have at least one item")
	}

	items := make([]entity.CartItem, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Item quantity must be at least 1")
		}
		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}
		if line.Quantity > product.Stock {
			return nil, apperror.NewBadRequestError("Insufficient stock for " + product.Name)
		}
		items = append(items, entity.CartItem{Product: *product, Quantity: line.Quantity})
	}

	customerName := input.CustomerName
	if customerName == "" {
		customerName = "Cliente Balcão"
	}
	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Dinheiro"
	}

	order := &entity.Order{
		ID:            utils.NewID(),
		CustomerName:  customerName,
		Items:         items,
		Total:         entity.CartTotal(items),
		Status:        enum.OrderStatusCompleted,
		PaymentMethod: paymentMethod,
		Date:          time.Now().UTC(),
		Type:          enum.OrderTypePOS,
	}

	if err := s.placeOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// OrderFilter contains filtering parameters for order listings
type OrderFilter struct {
	Pagination *pagination.PaginationParams
	Status     string
	Type       string
}

// ListOrders lists orders newest first
func (s *OrderService) ListOrders(ctx context.Context, filter *OrderFilter) (*pagination.PaginatedResult[entity.Order], error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]entity.Order, 0, len(orders))
	// reverse insertion order so recent orders come first
	for i := len(orders) - 1; i >= 0; i-- {
		o := &orders[i]
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		if filter.Type != "" && string(o.Type) != filter.Type {
			continue
		}
		matched = append(matched, *o)
	}

	params := filter.Pagination
	if params == nil {
		params = pagination.DefaultPagination()
	}
	return pagination.Paginate(matched, params), nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// UpdateStatus moves an order through its lifecycle. Cancelling an order
// does not restore stock or touch the ledger; corrections are made
// manually in the back office.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status enum.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown order status: " + string(status))
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, apperror.NewBadRequestError("Cannot change order status from " + string(order.Status) + " to " + string(status))
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	order.Status = status
	return order, nil
}
