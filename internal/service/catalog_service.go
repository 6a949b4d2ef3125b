package service

import (
	"context"
	"errors"
	"fmt"

	"inventory-service/internal/model"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProviderNotFound = errors.New("provider not found")
)

// CatalogService manages the reference data products point at: categories and
// providers.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	category := model.Category{Name: name}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return &category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, name string) (*model.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	if err := s.db.WithContext(ctx).Save(category).Error; err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Category{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete category %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *CatalogService) CreateProvider(ctx context.Context, provider *model.Provider) (*model.Provider, error) {
	if err := s.db.WithContext(ctx).Create(provider).Error; err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}
	return provider, nil
}

func (s *CatalogService) ListProviders(ctx context.Context) ([]model.Provider, error) {
	var providers []model.Provider
	if err := s.db.WithContext(ctx).Find(&providers).Error; err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	return providers, nil
}

func (s *CatalogService) GetProvider(ctx context.Context, id uint) (*model.Provider, error) {
	var provider model.Provider
	err := s.db.WithContext(ctx).First(&provider, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get provider %d: %w", id, err)
	}
	return &provider, nil
}

func (s *CatalogService) UpdateProvider(ctx context.Context, id uint, input *model.Provider) (*model.Provider, error) {
	provider, err := s.GetProvider(ctx, id)
	if err != nil {
		return nil, err
	}
	provider.Name = input.Name
	provider.Email = input.Email
	provider.Phone = input.Phone
	provider.Address = input.Address
	if err := s.db.WithContext(ctx).Save(provider).Error; err != nil {
		return nil, fmt.Errorf("update provider %d: %w", id, err)
	}
	return provider, nil
}

// ProviderProducts lists one page of a provider's products.
func (s *CatalogService) ProviderProducts(ctx context.Context, providerID uint, page, limit int) ([]model.Product, int64, error) {
	if _, err := s.GetProvider(ctx, providerID); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Product{}).Where("provider_id = ?", providerID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count provider products: %w", err)
	}

	var products []model.Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Where("provider_id = ?", providerID).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list provider products: %w", err)
	}
	return products, total, nil
}

func (s *CatalogService) DeleteProvider(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Provider{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete provider %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProviderNotFound
	}
	return nil
}
