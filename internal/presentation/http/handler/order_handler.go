package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/izaplantas/floricultura-api/internal/application/service"
	"github.com/izaplantas/floricultura-api/internal/domain/enum"
	"github.com/izaplantas/floricultura-api/internal/presentation/http/dto/request"
	"github.com/izaplantas/floricultura-api/internal/presentation/http/dto/response"
	"github.com/izaplantas/floricultura-api/pkg/pagination"
)

// OrderHandler handles checkout and order management
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Checkout handles the storefront checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.orderService.Checkout(c.Request.Context(), &service.CheckoutInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order placed successfully", result)
}

// CreatePOSSale handles registering a counter sale
func (h *OrderHandler) CreatePOSSale(c *gin.Context) {
	var req request.POSSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.POSItemInput, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, service.POSItemInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	order, err := h.orderService.FinalizePOSSale(c.Request.Context(), &service.POSSaleInput{
		CustomerName:  req.CustomerName,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale registered successfully", order)
}

// List handles listing orders with filters
func (h *OrderHandler) List(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), &service.OrderFilter{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Status: filter.Status,
		Type:   filter.Type,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// UpdateStatus handles moving an order through its lifecycle
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), enum.OrderStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated", order)
}
