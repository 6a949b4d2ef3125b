package service

import (
	"context"
	"errors"
	"fmt"

	"inventory-service/internal/model"

	"gorm.io/gorm"
)

// ErrInvalidQuantity is returned for movements with a non-positive quantity.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// DefaultMovementComment is recorded when a movement carries no comment.
const DefaultMovementComment = "stock dispatched"

// Movement is one requested stock debit.
type Movement struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Comment   string `json:"comment"`
}

// MovementResult is the per-item outcome of a batch. Err is nil when the
// movement committed, in which case Entry holds the written kardex row with
// its product (and post-movement stock) attached.
type MovementResult struct {
	ProductID uint
	Entry     *model.Kardex
	Err       error
}

// StockService applies stock movements and maintains the kardex, the
// append-only ledger every product's live stock must reconcile with.
type StockService struct {
	db *gorm.DB
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{db: db}
}

// Apply processes each movement independently and returns one result per
// movement, in order. A failing item is rejected without touching stock or
// the kardex, and neither rolls back earlier committed items nor blocks later
// ones.
func (s *StockService) Apply(ctx context.Context, movements []Movement) []MovementResult {
	results := make([]MovementResult, 0, len(movements))
	for _, m := range movements {
		entry, err := s.applyOne(ctx, m)
		results = append(results, MovementResult{ProductID: m.ProductID, Entry: entry, Err: err})
	}
	return results
}

// applyOne debits one product and appends the kardex entry in a single
// transaction, so the ledger can never disagree with the stock column.
func (s *StockService) applyOne(ctx context.Context, m Movement) (*model.Kardex, error) {
	if m.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var entry model.Kardex
	var product model.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, m.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("load product %d: %w", m.ProductID, err)
		}

		// The guard in the WHERE clause serializes concurrent debits of the
		// same product: two movements can both read a stale stock value, but
		// only decrements that leave stock non-negative take effect.
		result := tx.Model(&model.Product{}).
			Where("id = ? AND stock >= ?", m.ProductID, m.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", m.Quantity))
		if result.Error != nil {
			return fmt.Errorf("debit product %d: %w", m.ProductID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		if err := tx.Select("stock").First(&product, m.ProductID).Error; err != nil {
			return fmt.Errorf("reload product %d: %w", m.ProductID, err)
		}

		comment := m.Comment
		if comment == "" {
			comment = DefaultMovementComment
		}
		entry = model.Kardex{
			ProductID: m.ProductID,
			Quantity:  m.Quantity,
			Stock:     product.Stock,
			Comment:   comment,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("append kardex entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	entry.Product = &product
	return &entry, nil
}

// ListMovements returns one page of kardex entries, newest first, optionally
// filtered to one product. productID 0 means all products.
func (s *StockService) ListMovements(ctx context.Context, productID uint, page, limit int) ([]model.Kardex, int64, error) {
	count := s.db.WithContext(ctx).Model(&model.Kardex{})
	query := s.db.WithContext(ctx)
	if productID != 0 {
		count = count.Where("product_id = ?", productID)
		query = query.Where("product_id = ?", productID)
	}

	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count kardex entries: %w", err)
	}

	var entries []model.Kardex
	err := query.
		Preload("Product").
		Order("id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list kardex entries: %w", err)
	}
	return entries, total, nil
}
