package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/izaplantas/floricultura-api/internal/application/service"
	"github.com/izaplantas/floricultura-api/internal/presentation/http/dto/request"
	"github.com/izaplantas/floricultura-api/internal/presentation/http/dto/response"
)

// CartHandler handles storefront cart operations
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get handles retrieving the cart
func (h *CartHandler) Get(c *gin.Context) {
	items, err := h.cartService.GetCart(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", items)
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items, err := h.cartService.AddItem(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", items)
}

// UpdateItem handles changing the quantity of a cart line
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items, err := h.cartService.UpdateQuantity(c.Request.Context(), c.Param("productId"), req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart item updated", items)
}

// RemoveItem handles removing a product from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	items, err := h.cartService.RemoveItem(c.Request.Context(), c.Param("productId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed from cart", items)
}

// Clear handles emptying the cart
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
