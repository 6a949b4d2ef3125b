package handler

import (
	"net/http"
	"strconv"

	"inventory-service/internal/model"
	"inventory-service/internal/service"
	"inventory-service/pkg/logger"
	"inventory-service/pkg/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CategoryRequest defines the payload for category creation/update
type CategoryRequest struct {
	Name string `json:"name"`
}

// ProviderRequest defines the payload for provider creation
type ProviderRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func CreateCategory(c echo.Context) error {
	log := logger.FromContext(c)

	var req CategoryRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "name is required"))
	}

	category, err := catalogService().CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return fail(c, log, err)
	}

	log.Info("Category created", zap.Uint("category_id", category.ID), zap.String("name", category.Name))
	return c.JSON(http.StatusCreated, response.OK(http.StatusCreated, "Category created successfully", category))
}

func ListCategories(c echo.Context) error {
	log := logger.FromContext(c)

	categories, err := catalogService().ListCategories(c.Request().Context())
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Categories found successfully", categories))
}

func GetCategory(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return fail(c, log, service.ErrCategoryNotFound)
	}

	category, err := catalogService().GetCategory(c.Request().Context(), uint(id))
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Category found successfully", category))
}

func UpdateCategory(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return fail(c, log, service.ErrCategoryNotFound)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "name is required"))
	}

	category, err := catalogService().UpdateCategory(c.Request().Context(), uint(id), req.Name)
	if err != nil {
		return fail(c, log, err)
	}

	log.Info("Category updated", zap.Uint("category_id", category.ID))
	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Category updated successfully", category))
}

func DeleteCategory(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return fail(c, log, service.ErrCategoryNotFound)
	}

	if err := catalogService().DeleteCategory(c.Request().Context(), uint(id)); err != nil {
		return fail(c, log, err)
	}

	log.Info("Category deleted", zap.Uint64("category_id", id))
	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Category deleted successfully", nil))
}

func CreateProvider(c echo.Context) error {
	log := logger.FromContext(c)

	var req ProviderRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "name is required"))
	}

	provider := &model.Provider{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	provider, err := catalogService().CreateProvider(c.Request().Context(), provider)
	if err != nil {
		return fail(c, log, err)
	}

	log.Info("Provider created", zap.Uint("provider_id", provider.ID), zap.String("name", provider.Name))
	return c.JSON(http.StatusCreated, response.OK(http.StatusCreated, "Provider created successfully", provider))
}

func ListProviders(c echo.Context) error {
	log := logger.FromContext(c)

	providers, err := catalogService().ListProviders(c.Request().Context())
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Providers found successfully", providers))
}

func GetProvider(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return fail(c, log, service.ErrProviderNotFound)
	}

	provider, err := catalogService().GetProvider(c.Request().Context(), uint(id))
	if err != nil {
		return fail(c, log, err)
	}
	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Provider found successfully", provider))
}

func UpdateProvider(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return fail(c, log, service.ErrProviderNotFound)
	}

	var req ProviderRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "name is required"))
	}

	provider, err := catalogService().UpdateProvider(c.Request().Context(), uint(id), &model.Provider{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return fail(c, log, err)
	}

	log.Info("Provider updated", zap.Uint("provider_id", provider.ID))
	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Provider updated successfully", provider))
}

// GetProviderProducts lists one page of a provider's products
func GetProviderProducts(c echo.Context) error {
	log := logger.FromContext(c)
	page, limit := parsePagination(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return fail(c, log, service.ErrProviderNotFound)
	}

	products, total, err := catalogService().ProviderProducts(c.Request().Context(), uint(id), page, limit)
	if err != nil {
		return fail(c, log, err)
	}

	return c.JSON(http.StatusOK, response.Page(http.StatusOK, "Products found successfully",
		products, response.NewPagination(page, limit, total)))
}

func DeleteProvider(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return fail(c, log, service.ErrProviderNotFound)
	}

	if err := catalogService().DeleteProvider(c.Request().Context(), uint(id)); err != nil {
		return fail(c, log, err)
	}

	log.Info("Provider deleted", zap.Uint64("provider_id", id))
	return c.JSON(http.StatusOK, response.OK(http.StatusOK, "Provider deleted successfully", nil))
}
