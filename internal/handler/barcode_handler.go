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

// GenerateBarcodesRequest defines the payload for bulk barcode generation
type GenerateBarcodesRequest struct {
	Count int `json:"count"`
}

// BarcodeRequest defines the payload for manual barcode registration
type BarcodeRequest struct {
	Code     string `json:"code"`
	ImageURL string `json:"image_url"`
}

// GenerateBarcodes issues the next batch of free barcodes
func GenerateBarcodes(c echo.Context) error {
	log := logger.FromContext(c)

	var req GenerateBarcodesRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid request data"))
	}

	log.Info("Generating barcodes", zap.Int("count", req.Count))

	codes, err := barcodeService().Generate(c.Request().Context(), req.Count)
	if err != nil {
		return fail(c, log, err)
	}

	prometheus.BarcodesGeneratedCounter.Add(float64(len(codes)))
	if skipped := req.Count - len(codes); skipped > 0 {
		prometheus.BarcodesSkippedCounter.Add(float64(skipped))
	}

	log.Info("Barcodes generated", zap.Int("requested", req.Count), zap.Int("created", len(codes)))
	return c.JSON(http.StatusCreated, response.OK(http.StatusCreated,
		"Barcodes generated successfully ("+strconv.Itoa(len(codes))+" new)", codes))
}

// CreateBarcode registers a single externally chosen code
func CreateBarcode(c echo.Context) error {
	log := logger.FromContext(c)

	var req BarcodeRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid request data"))
	}

	log.Info("Creating barcode", zap.String("code", req.Code))

	barcode, err := barcodeService().Create(c.Request().Context(), req.Code, req.ImageURL)
	if err != nil {
		return fail(c, log, err)
	}

	log.Info("Barcode created", zap.String("code", barcode.Code))
	return c.JSON(http.StatusCreated, response.OK(http.StatusCreated, "Barcode created successfully", barcode))
}

// ListBarcodes returns one page of barcodes, newest first
func ListBarcodes(c echo.Context) error {
	log := logger.FromContext(c)
	page, limit := parsePagination(c)

	barcodes, total, err := barcodeService().List(c.Request().Context(), page, limit)
	if err != nil {
		return fail(c, log, err)
	}

	log.Info("Barcodes retrieved", zap.Int("count", len(barcodes)), zap.Int64("total", total))
	return c.JSON(http.StatusOK, response.Page(http.StatusOK, "Barcodes retrieved successfully",
		barcodes, response.NewPagination(page, limit, total)))
}

// GetBarcode returns one barcode by ID
func GetBarcode(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return fail(c, log, service.ErrBarcodeNotFound)
	}

	barcode, err := barcodeService().Get(c.Request().Context(), uint(id))
	if err != nil {
		return fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Barcode retrieved successfully", barcode))
}

// DeleteBarcode removes a barcode that was never bound to a product
func DeleteBarcode(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return fail(c, log, service.ErrBarcodeNotFound)
	}

	log.Info("Deleting barcode", zap.Uint64("barcode_id", id))

	if err := barcodeService().Delete(c.Request().Context(), uint(id)); err != nil {
		return fail(c, log, err)
	}

	log.Info("Barcode deleted", zap.Uint64("barcode_id", id))
	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Barcode deleted successfully", nil))
}
