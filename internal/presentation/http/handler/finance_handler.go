package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/izaplantas/floricultura-api/internal/application/service"
	"github.com/izaplantas/floricultura-api/internal/presentation/http/dto/request"
	"github.com/izaplantas/floricultura-api/internal/presentation/http/dto/response"
	"github.com/izaplantas/floricultura-api/pkg/pagination"
)

// FinanceHandler handles the back-office ledger
type FinanceHandler struct {
	financeService *service.FinanceService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeService *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// List handles listing ledger entries
func (h *FinanceHandler) List(c *gin.Context) {
	var filter request.FinanceFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.financeService.ListEntries(c.Request.Context(), &service.FinanceFilter{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Type: filter.Type,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Finance entries retrieved successfully", result)
}

// Create handles recording a manual ledger entry
func (h *FinanceHandler) Create(c *gin.Context) {
	var req request.CreateFinanceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateEntryInput{
		Type:        req.Type,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Status:      req.Status,
	}
	if req.Date != "" {
		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected RFC 3339")
			return
		}
		input.Date = &date
	}

	entry, err := h.financeService.CreateEntry(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Finance entry created successfully", entry)
}

// Delete handles removing a ledger entry
func (h *FinanceHandler) Delete(c *gin.Context) {
	if err := h.financeService.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Summary handles the income/expense/balance totals
func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.financeService.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Finance summary retrieved successfully", summary)
}
