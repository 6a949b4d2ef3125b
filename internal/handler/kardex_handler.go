package handler

import (
	"net/http"
	"strconv"

	"inventory-service/internal/service"
	"inventory-service/pkg/logger"
	"inventory-service/pkg/response"
	"inventory-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ApplyMovementsRequest defines the payload for a batch of stock movements
type ApplyMovementsRequest struct {
	Movements []service.Movement `json:"movements"`
}

// MovementOutcome is the per-item answer of a batch
type MovementOutcome struct {
	ProductID uint        `json:"product_id"`
	Applied   bool        `json:"applied"`
	Error     string      `json:"error,omitempty"`
	Entry     interface{} `json:"entry,omitempty"`
}

// ApplyMovements debits stock and appends kardex entries, one movement at a
// time. Items fail independently; a rejected item does not undo the others.
func ApplyMovements(c echo.Context) error {
	log := logger.FromContext(c)

	var req ApplyMovementsRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid request data"))
	}
	if len(req.Movements) == 0 {
		return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "no movements provided"))
	}

	log.Info("Applying stock movements", zap.Int("count", len(req.Movements)))

	results := stockService().Apply(c.Request().Context(), req.Movements)

	outcomes := make([]MovementOutcome, 0, len(results))
	failed := 0
	fatal := false
	for _, r := range results {
		outcome := MovementOutcome{ProductID: r.ProductID, Applied: r.Err == nil}
		if r.Err != nil {
			failed++
			prometheus.RecordStockMovement("rejected")
			outcome.Error = movementError(r.Err)
			if statusForError(r.Err) == http.StatusInternalServerError {
				fatal = true
				log.Error("Stock movement failed",
					zap.Uint("product_id", r.ProductID),
					zap.Error(r.Err))
			} else {
				log.Warn("Stock movement rejected",
					zap.Uint("product_id", r.ProductID),
					zap.Error(r.Err))
			}
		} else {
			prometheus.RecordStockMovement("applied")
			prometheus.UpdateProductInventory(
				strconv.FormatUint(uint64(r.ProductID), 10),
				r.Entry.Product.Name,
				float64(r.Entry.Stock))
			outcome.Entry = r.Entry
		}
		outcomes = append(outcomes, outcome)
	}

	log.Info("Stock movements processed",
		zap.Int("applied", len(results)-failed),
		zap.Int("rejected", failed))

	status := http.StatusOK
	message := "Kardex created successfully"
	switch {
	case fatal:
		status = http.StatusInternalServerError
		message = "Some movements failed"
	case failed > 0:
		status = http.StatusBadRequest
		message = "Some movements were rejected"
	}
	return c.JSON(status, response.OK(status, message, outcomes))
}

// movementError renders a per-item error for the client. Like fail, it does
// not echo persistence failures back.
func movementError(err error) string {
	if statusForError(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

// ListKardex returns one page of kardex entries, optionally filtered to one
// product via the product_id query parameter
func ListKardex(c echo.Context) error {
	log := logger.FromContext(c)
	page, limit := parsePagination(c)

	var productID uint
	if v := c.QueryParam("product_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid product_id"))
		}
		productID = uint(id)
	}

	entries, total, err := stockService().ListMovements(c.Request().Context(), productID, page, limit)
	if err != nil {
		return fail(c, log, err)
	}

	log.Info("Kardex retrieved", zap.Int("count", len(entries)), zap.Int64("total", total))
	return c.JSON(http.StatusOK, response.Page(http.StatusOK, "Kardex found successfully",
		entries, response.NewPagination(page, limit, total)))
}
