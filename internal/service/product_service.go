package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory-service/internal/model"

	"gorm.io/gorm"
)

// ProductInput carries the fields accepted when creating or updating a
// product.
type ProductInput struct {
	Barcode     string    `json:"barcode"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  uint      `json:"category_id"`
	ProviderID  uint      `json:"provider_id"`
	Cost        float64   `json:"cost"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Unit        string    `json:"unit"`
	ExpiredAt   time.Time `json:"expired_at"`
}

// ProductFilter selects products by the fields the caller actually supplied.
// Empty fields are not part of the search.
type ProductFilter struct {
	Name    string `json:"name"`
	Barcode string `json:"barcode"`
}

// IsZero reports whether no criteria were supplied.
func (f ProductFilter) IsZero() bool {
	return f.Name == "" && f.Barcode == ""
}

// ProductService creates and queries products. Creation also drives the
// barcode lifecycle: a free barcode matching the product's code is bound in
// the same transaction, so a product referencing a known code and that code
// staying free can never both be durable.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// Create inserts a product and binds its barcode in one transaction.
//
// The code does not have to exist in the barcodes table: products may be
// registered under ad-hoc codes that were never pre-allocated. When a row
// does exist and is still free it is flipped to bound; a bound row is left
// untouched (the duplicate-product check already refused a second product on
// the same code). Any failure rolls back both writes.
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*model.Product, error) {
	var product model.Product

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.Product{}).Where("barcode = ?", input.Barcode).Count(&existing).Error; err != nil {
			return fmt.Errorf("check product barcode %s: %w", input.Barcode, err)
		}
		if existing > 0 {
			return ErrDuplicateProduct
		}

		product = model.Product{
			Barcode:     input.Barcode,
			Name:        input.Name,
			Description: input.Description,
			CategoryID:  input.CategoryID,
			ProviderID:  input.ProviderID,
			Cost:        input.Cost,
			Price:       input.Price,
			Stock:       input.Stock,
			Unit:        input.Unit,
			ExpiredAt:   input.ExpiredAt,
		}
		if err := tx.Create(&product).Error; err != nil {
			// The unique index on products.barcode is the arbiter when two
			// callers race past the existence check.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateProduct
			}
			return fmt.Errorf("create product: %w", err)
		}

		result := tx.Model(&model.Barcode{}).
			Where("code = ? AND status = ?", input.Barcode, model.BarcodeStatusFree).
			Update("status", model.BarcodeStatusBound)
		if result.Error != nil {
			return fmt.Errorf("bind barcode %s: %w", input.Barcode, result.Error)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, product.ID)
}

// List returns one page of products with their category and provider, plus
// the total row count.
func (s *ProductService) List(ctx context.Context, page, limit int) ([]model.Product, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Product{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	var products []model.Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Provider").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

// Get returns one product by ID with its category and provider.
func (s *ProductService) Get(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Provider").
		First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &product, nil
}

// GetByBarcode returns the product registered under a code.
func (s *ProductService) GetByBarcode(ctx context.Context, code string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).Where("barcode = ?", code).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product by barcode %s: %w", code, err)
	}
	return &product, nil
}

// Search matches products against the supplied filter fields, any of which
// may match. At least one field must be set.
func (s *ProductService) Search(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	if filter.IsZero() {
		return nil, ErrNoSearchCriteria
	}

	query := s.db.WithContext(ctx)
	conditions := s.db.Session(&gorm.Session{NewDB: true})
	if filter.Name != "" {
		conditions = conditions.Or("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Barcode != "" {
		conditions = conditions.Or("barcode LIKE ?", "%"+filter.Barcode+"%")
	}

	var products []model.Product
	if err := query.Where(conditions).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// Update modifies a product's descriptive fields. The barcode and stock are
// not updatable here: the code is fixed at creation and stock only moves
// through the kardex.
func (s *ProductService) Update(ctx context.Context, id uint, input ProductInput) (*model.Product, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":        input.Name,
		"description": input.Description,
		"category_id": input.CategoryID,
		"provider_id": input.ProviderID,
		"cost":        input.Cost,
		"price":       input.Price,
		"unit":        input.Unit,
		"expired_at":  input.ExpiredAt,
	}
	if err := s.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes a product. The bound barcode is intentionally not
// released: codes are printed on physical labels and are never reissued.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete product %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
