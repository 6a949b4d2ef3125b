package handler

import (
	"net/http"

	"inventory-service/pkg/logger"
	"inventory-service/pkg/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InventorySummary returns one page of products valued at cost and price,
// the data feed for reporting clients
func InventorySummary(c echo.Context) error {
	log := logger.FromContext(c)
	page, limit := parsePagination(c)

	valuation, total, err := inventoryService().Summary(c.Request().Context(), page, limit)
	if err != nil {
		return fail(c, log, err)
	}

	log.Info("Inventory valued",
		zap.Int("count", len(valuation.Items)),
		zap.Float64("total_cost", valuation.TotalCost),
		zap.Float64("total_price", valuation.TotalPrice))
	return c.JSON(http.StatusOK, response.Page(http.StatusOK, "Inventory found successfully",
		valuation, response.NewPagination(page, limit, total)))
}
