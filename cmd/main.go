package main

import (
	"net/http"

	"inventory-service/internal/handler"
	mid "inventory-service/internal/middleware"
	"inventory-service/pkg/config"
	"inventory-service/pkg/database"
	"inventory-service/pkg/jwtutil"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting inventory-service", appConfig.LogConfig()...)

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	err = database.InitDB(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Hand the configuration to the handlers
	handler.Init(appConfig)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Barcode API routes
	barcodeAPI := e.Group("/api/barcodes", mid.AuthMiddleware)
	barcodeAPI.POST("/generate", handler.GenerateBarcodes)
	barcodeAPI.POST("", handler.CreateBarcode)
	barcodeAPI.GET("", handler.ListBarcodes)
	barcodeAPI.GET("/:id", handler.GetBarcode)
	barcodeAPI.DELETE("/:id", handler.DeleteBarcode)

	// Product API routes
	productAPI := e.Group("/api/products", mid.AuthMiddleware)
	productAPI.GET("", handler.ListProducts)
	productAPI.POST("", handler.CreateProduct)
	productAPI.POST("/search", handler.SearchProducts)
	productAPI.GET("/barcode/:code", handler.GetProductByBarcode)
	productAPI.GET("/:id", handler.GetProduct)
	productAPI.PUT("/:id", handler.UpdateProduct)
	productAPI.DELETE("/:id", handler.DeleteProduct)

	// Kardex API routes
	kardexAPI := e.Group("/api/kardex", mid.AuthMiddleware)
	kardexAPI.POST("", handler.ApplyMovements)
	kardexAPI.GET("", handler.ListKardex)

	// Inventory API routes
	inventoryAPI := e.Group("/api/inventory", mid.AuthMiddleware)
	inventoryAPI.GET("", handler.InventorySummary)

	// Category API routes
	categoryAPI := e.Group("/api/categories", mid.AuthMiddleware)
	categoryAPI.GET("", handler.ListCategories)
	categoryAPI.GET("/:id", handler.GetCategory)
	categoryAPI.POST("", handler.CreateCategory)
	categoryAPI.PUT("/:id", handler.UpdateCategory)
	categoryAPI.DELETE("/:id", handler.DeleteCategory)

	// Provider API routes
	providerAPI := e.Group("/api/providers", mid.AuthMiddleware)
	providerAPI.GET("", handler.ListProviders)
	providerAPI.GET("/:id", handler.GetProvider)
	providerAPI.GET("/:id/products", handler.GetProviderProducts)
	providerAPI.POST("", handler.CreateProvider)
	providerAPI.PUT("/:id", handler.UpdateProvider)
	providerAPI.DELETE("/:id", handler.DeleteProvider)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
