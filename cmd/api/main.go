package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"gocloud.dev/blob/fileblob"

	"github.com/izaplantas/floricultura-api/internal/application/service"
	"github.com/izaplantas/floricultura-api/internal/config"
	"github.com/izaplantas/floricultura-api/internal/infrastructure/repository"
	"github.com/izaplantas/floricultura-api/internal/infrastructure/storage"
	"github.com/izaplantas/floricultura-api/internal/presentation/http/handler"
	"github.com/izaplantas/floricultura-api/internal/presentation/http/routes"
	"github.com/izaplantas/floricultura-api/pkg/eventbus"
	"github.com/izaplantas/floricultura-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Open the blob bucket backing the collections
	if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
		log.Fatalf("Failed to create storage directory: %v", err)
	}
	bucket, err := fileblob.OpenBucket(cfg.Storage.Path, nil)
	if err != nil {
		log.Fatalf("Failed to open storage bucket: %v", err)
	}
	store := storage.New(bucket)
	defer store.Close()

	// Seed the default catalog on first run
	if err := store.EnsureSeeded(ctx); err != nil {
		log.Fatalf("Failed to seed storage: %v", err)
	}

	// Collection change notifications
	bus := eventbus.New()
	bus.Subscribe(func(e eventbus.Event) {
		log.Printf("collection %s changed", e.Collection)
	})

	// Initialize repositories
	productRepo := repository.NewProductRepository(store, bus)
	cartRepo := repository.NewCartRepository(store, bus)
	orderRepo := repository.NewOrderRepository(store, bus)
	financeRepo := repository.NewFinanceRepository(store, bus)
	idempotencyRepo := repository.NewIdempotencyRepository(store)

	// Initialize services
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, financeRepo, cartRepo, cfg.Store)
	financeService := service.NewFinanceService(financeRepo)
	dashboardService := service.NewDashboardService(orderRepo, productRepo, financeRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, orderRepo, cfg.Store, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Catalog:   handler.NewCatalogHandler(productService),
		Product:   handler.NewProductHandler(productService),
		Cart:      handler.NewCartHandler(cartService),
		Order:     handler.NewOrderHandler(orderService),
		Finance:   handler.NewFinanceHandler(financeService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
