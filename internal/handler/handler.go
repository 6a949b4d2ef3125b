package handler

import (
	"errors"
	"net/http"
	"strconv"

	"inventory-service/internal/ean13"
	"inventory-service/internal/service"
	"inventory-service/pkg/config"
	"inventory-service/pkg/database"
	"inventory-service/pkg/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var cfg *config.Config

// Init stores the configuration the handlers need. Must be called after the
// database is initialized and before routes are served.
func Init(c *config.Config) {
	cfg = c
}

func barcodeService() *service.BarcodeService {
	return service.NewBarcodeService(database.GetDB(), cfg.Barcode.Prefix)
}

func productService() *service.ProductService {
	return service.NewProductService(database.GetDB())
}

func stockService() *service.StockService {
	return service.NewStockService(database.GetDB())
}

func inventoryService() *service.InventoryService {
	return service.NewInventoryService(database.GetDB())
}

func catalogService() *service.CatalogService {
	return service.NewCatalogService(database.GetDB())
}

// parsePagination reads page and limit query parameters with the defaults the
// listing endpoints share.
func parsePagination(c echo.Context) (page, limit int) {
	page = 1
	limit = 10
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}

// statusForError maps a service error to the HTTP status the client sees.
// Business-rule rejections are 400, missing records are 404, anything else is
// a persistence failure and reported as 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrBarcodeNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrProviderNotFound):
		return http.StatusNotFound
	case errors.Is(err, ean13.ErrInvalidPayload),
		errors.Is(err, service.ErrInvalidBarcode),
		errors.Is(err, service.ErrDuplicateBarcode),
		errors.Is(err, service.ErrBarcodeInUse),
		errors.Is(err, service.ErrDuplicateProduct),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrNoSearchCriteria):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail logs the error and answers with the mapped status. Internal failures
// are not echoed back to the client.
func fail(c echo.Context, log *zap.Logger, err error) error {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("Request failed", zap.Error(err))
		message = "internal server error"
	} else {
		log.Warn("Request rejected", zap.Error(err))
	}
	return c.JSON(status, response.Error(status, message))
}
