package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/izaplantas/floricultura-api/internal/config"
	domainRepo "github.com/izaplantas/floricultura-api/internal/domain/repository"
	"github.com/izaplantas/floricultura-api/internal/presentation/http/handler"
	"github.com/izaplantas/floricultura-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Catalog   *handler.CatalogHandler
	Product   *handler.ProductHandler
	Cart      *handler.CartHandler
	Order     *handler.OrderHandler
	Finance   *handler.FinanceHandler
	Dashboard *handler.DashboardHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	idempotency := middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}
	// Per-client rate limiter for the public checkout endpoint
	checkoutLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerStorefrontRoutes(v1, h, deps, idempotency, checkoutLimiter)
		registerAdminRoutes(v1, h, idempotency)
	}

	return router
}

// registerStorefrontRoutes wires the public storefront surface
func registerStorefrontRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps, idempotency middleware.IdempotencyConfig, limiter *middleware.ClientRateLimiter) {
	v1.GET("/catalog", h.Catalog.List)
	v1.GET("/catalog/:id", h.Catalog.Get)

	store := deps.Cfg.Store
	v1.GET("/store", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"data": gin.H{
				"name":            store.Name,
				"address":         store.Address,
				"reference":       store.Reference,
				"whatsapp":        store.WhatsApp,
				"whatsappDisplay": store.WhatsAppDisplay,
				"instagram":       store.Instagram,
				"hours":           store.Hours,
			},
		})
	})

	cart := v1.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:productId", h.Cart.UpdateItem)
		cart.DELETE("/items/:productId", h.Cart.RemoveItem)
		cart.DELETE("", h.Cart.Clear)
	}

	v1.POST("/checkout",
		limiter.Middleware(),
		middleware.IdempotencyRequired(idempotency),
		h.Order.Checkout,
	)
}

// registerAdminRoutes wires the back-office surface
func registerAdminRoutes(v1 *gin.RouterGroup, h *Handlers, idempotency middleware.IdempotencyConfig) {
	admin := v1.Group("/admin")

	products := admin.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.GetLowStock)
		products.GET("/:id", h.Product.Get)
		products.POST("", h.Product.Create)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	orders := admin.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/receipt", h.Printer.PrintReceipt)
	}

	admin.POST("/pos/sales",
		middleware.IdempotencyRequired(idempotency),
		h.Order.CreatePOSSale,
	)

	finance := admin.Group("/finance")
	{
		finance.GET("", h.Finance.List)
		finance.GET("/summary", h.Finance.Summary)
		finance.POST("", middleware.Idempotency(idempotency), h.Finance.Create)
		finance.DELETE("/:id", h.Finance.Delete)
	}

	admin.GET("/dashboard", h.Dashboard.GetStats)

	printer := admin.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", h.Printer.TestPrint)
	}
}
