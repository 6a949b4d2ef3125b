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

// CreateProduct registers a new product and binds its barcode
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var input service.ProductInput
	if err := c.Bind(&input); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid request data"))
	}
	if input.Barcode == "" || input.Name == "" {
		log.Warn("Missing required fields")
		return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "barcode and name are required"))
	}

	log.Info("Creating product",
		zap.String("name", input.Name),
		zap.String("barcode", input.Barcode))

	product, err := productService().Create(c.Request().Context(), input)
	if err != nil {
		return fail(c, log, err)
	}

	prometheus.RecordProductOperation("create")
	prometheus.UpdateProductInventory(strconv.FormatUint(uint64(product.ID), 10), product.Name, float64(product.Stock))

	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.String("barcode", product.Barcode))
	return c.JSON(http.StatusCreated, response.OK(http.StatusCreated, "Product created successfully", product))
}

// ListProducts returns one page of products
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	page, limit := parsePagination(c)

	products, total, err := productService().List(c.Request().Context(), page, limit)
	if err != nil {
		return fail(c, log, err)
	}

	log.Info("Products retrieved", zap.Int("count", len(products)), zap.Int64("total", total))
	return c.JSON(http.StatusOK, response.Page(http.StatusOK, "Products found successfully",
		products, response.NewPagination(page, limit, total)))
}

// GetProduct returns one product by ID
func GetProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return fail(c, log, service.ErrProductNotFound)
	}

	product, err := productService().Get(c.Request().Context(), uint(id))
	if err != nil {
		return fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Product found successfully", product))
}

// GetProductByBarcode returns the product registered under a code
func GetProductByBarcode(c echo.Context) error {
	log := logger.FromContext(c)
	code := c.Param("code")

	product, err := productService().GetByBarcode(c.Request().Context(), code)
	if err != nil {
		return fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Product found successfully", product))
}

// SearchProducts matches products by name or barcode fragments
func SearchProducts(c echo.Context) error {
	log := logger.FromContext(c)

	var filter service.ProductFilter
	if err := c.Bind(&filter); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid request data"))
	}

	products, err := productService().Search(c.Request().Context(), filter)
	if err != nil {
		return fail(c, log, err)
	}

	log.Info("Products searched", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Product found successfully", products))
}

// UpdateProduct modifies a product's descriptive fields
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return fail(c, log, service.ErrProductNotFound)
	}

	var input service.ProductInput
	if err := c.Bind(&input); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid request data"))
	}

	log.Info("Updating product", zap.Uint64("product_id", id))

	product, err := productService().Update(c.Request().Context(), uint(id), input)
	if err != nil {
		return fail(c, log, err)
	}

	prometheus.RecordProductOperation("update")

	log.Info("Product updated", zap.Uint("product_id", product.ID), zap.String("name", product.Name))
	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Product updated successfully", product))
}

// DeleteProduct soft-deletes a product. Its barcode stays bound.
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return fail(c, log, service.ErrProductNotFound)
	}

	log.Info("Deleting product", zap.Uint64("product_id", id))

	if err := productService().Delete(c.Request().Context(), uint(id)); err != nil {
		return fail(c, log, err)
	}

	prometheus.RecordProductOperation("delete")

	log.Info("Product deleted", zap.Uint64("product_id", id))
	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Product deleted successfully", nil))
}
