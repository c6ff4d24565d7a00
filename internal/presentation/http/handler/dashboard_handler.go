package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/izaplantas/floricultura-api/internal/application/service"
	"github.com/izaplantas/floricultura-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles back-office dashboard requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles getting dashboard statistics
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
