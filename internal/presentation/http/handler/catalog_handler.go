package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/izaplantas/floricultura-api/internal/application/service"
	"github.com/izaplantas/floricultura-api/internal/domain/enum"
	"github.com/izaplantas/floricultura-api/internal/presentation/http/dto/request"
	"github.com/izaplantas/floricultura-api/internal/presentation/http/dto/response"
	"github.com/izaplantas/floricultura-api/pkg/pagination"
)

// CatalogHandler serves the public storefront catalog.
// Only active products are visible here.
type CatalogHandler struct {
	productService *service.ProductService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(productService *service.ProductService) *CatalogHandler {
	return &CatalogHandler{productService: productService}
}

// List handles listing the storefront catalog
func (h *CatalogHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.productService.ListProducts(c.Request.Context(), &service.ProductFilter{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:     filter.Search,
		Category:   filter.Category,
		ActiveOnly: true,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Catalog retrieved successfully", result)
}

// Get handles getting a single storefront product
func (h *CatalogHandler) Get(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if product.Status != enum.ProductStatusActive {
		response.NotFound(c, "Product not found")
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}
