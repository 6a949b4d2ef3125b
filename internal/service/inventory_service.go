package service

import (
	"context"
	"fmt"

	"inventory-service/internal/model"

	"gorm.io/gorm"
)

// ValuationItem is one product's stock valued at cost and at sale price.
type ValuationItem struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Barcode    string  `json:"barcode"`
	Stock      int     `json:"stock"`
	Unit       string  `json:"unit"`
	Cost       float64 `json:"cost"`
	Price      float64 `json:"price"`
	Category   string  `json:"category"`
	Provider   string  `json:"provider"`
	TotalCost  float64 `json:"total_cost"`
	TotalPrice float64 `json:"total_price"`
}

// Valuation is one page of valued inventory plus the page totals.
type Valuation struct {
	Items      []ValuationItem `json:"items"`
	TotalCost  float64         `json:"total_cost"`
	TotalPrice float64         `json:"total_price"`
}

// InventoryService produces the read-only inventory valuation consumed by
// reporting clients.
type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// Summary values one page of products at cost and at price.
func (s *InventoryService) Summary(ctx context.Context, page, limit int) (*Valuation, int64, error) {
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
		return nil, 0, fmt.Errorf("load inventory: %w", err)
	}

	valuation := &Valuation{Items: make([]ValuationItem, 0, len(products))}
	for _, p := range products {
		item := ValuationItem{
			ID:         p.ID,
			Name:       p.Name,
			Barcode:    p.Barcode,
			Stock:      p.Stock,
			Unit:       p.Unit,
			Cost:       p.Cost,
			Price:      p.Price,
			TotalCost:  p.Cost * float64(p.Stock),
			TotalPrice: p.Price * float64(p.Stock),
		}
		if p.Category != nil {
			item.Category = p.Category.Name
		}
		if p.Provider != nil {
			item.Provider = p.Provider.Name
		}
		valuation.Items = append(valuation.Items, item)
		valuation.TotalCost += item.TotalCost
		valuation.TotalPrice += item.TotalPrice
	}
	return valuation, total, nil
}
