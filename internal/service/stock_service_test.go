package service

import (
	"context"
	"testing"

	"inventory-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_DebitsStockAndAppendsEntry(t *testing.T) {
	db := setupTestDB(t)
	stock := NewStockService(db)
	product := createTestProduct(t, db, "7700000000002", 20)

	results := stock.Apply(context.Background(), []Movement{
		{ProductID: product.ID, Quantity: 5, Comment: "order #41"},
	})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	entry := results[0].Entry
	assert.Equal(t, 5, entry.Quantity)
	assert.Equal(t, 15, entry.Stock)
	assert.Equal(t, "order #41", entry.Comment)

	// The entry carries the product with its post-movement stock, so callers
	// can report the new level without another query.
	require.NotNil(t, entry.Product)
	assert.Equal(t, product.Name, entry.Product.Name)
	assert.Equal(t, 15, entry.Product.Stock)

	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 15, reloaded.Stock)
}

func TestApply_DefaultComment(t *testing.T) {
	db := setupTestDB(t)
	stock := NewStockService(db)
	product := createTestProduct(t, db, "7700000000002", 10)

	results := stock.Apply(context.Background(), []Movement{
		{ProductID: product.ID, Quantity: 1},
	})
	require.NoError(t, results[0].Err)
	assert.Equal(t, DefaultMovementComment, results[0].Entry.Comment)
}

func TestApply_InsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	stock := NewStockService(db)
	product := createTestProduct(t, db, "7700000000002", 15)

	results := stock.Apply(context.Background(), []Movement{
		{ProductID: product.ID, Quantity: 30},
	})
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrInsufficientStock)

	// The rejected movement leaves both the stock and the ledger untouched.
	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 15, reloaded.Stock)

	var entries int64
	require.NoError(t, db.Model(&model.Kardex{}).Count(&entries).Error)
	assert.Zero(t, entries)
}

func TestApply_ExactStockReachesZero(t *testing.T) {
	db := setupTestDB(t)
	stock := NewStockService(db)
	product := createTestProduct(t, db, "7700000000002", 8)

	results := stock.Apply(context.Background(), []Movement{
		{ProductID: product.ID, Quantity: 8},
	})
	require.NoError(t, results[0].Err)
	assert.Equal(t, 0, results[0].Entry.Stock)

	results = stock.Apply(context.Background(), []Movement{
		{ProductID: product.ID, Quantity: 1},
	})
	assert.ErrorIs(t, results[0].Err, ErrInsufficientStock)
}

func TestApply_ProductNotFound(t *testing.T) {
	db := setupTestDB(t)
	stock := NewStockService(db)

	results := stock.Apply(context.Background(), []Movement{
		{ProductID: 42, Quantity: 1},
	})
	assert.ErrorIs(t, results[0].Err, ErrProductNotFound)
}

func TestApply_InvalidQuantity(t *testing.T) {
	db := setupTestDB(t)
	stock := NewStockService(db)
	product := createTestProduct(t, db, "7700000000002", 10)

	for _, quantity := range []int{0, -4} {
		results := stock.Apply(context.Background(), []Movement{
			{ProductID: product.ID, Quantity: quantity},
		})
		assert.ErrorIs(t, results[0].Err, ErrInvalidQuantity, "quantity %d", quantity)
	}
}

func TestApply_BatchItemsFailIndependently(t *testing.T) {
	db := setupTestDB(t)
	stock := NewStockService(db)
	product := createTestProduct(t, db, "7700000000002", 20)

	results := stock.Apply(context.Background(), []Movement{
		{ProductID: product.ID, Quantity: 5},
		{ProductID: product.ID, Quantity: 1000},
		{ProductID: product.ID, Quantity: 3},
	})
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, ErrInsufficientStock)
	assert.NoError(t, results[2].Err, "a failed item must not block later items")

	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 12, reloaded.Stock)

	var entries int64
	require.NoError(t, db.Model(&model.Kardex{}).Count(&entries).Error)
	assert.Equal(t, int64(2), entries)
}

func TestLedger_ReplayReconcilesWithStock(t *testing.T) {
	db := setupTestDB(t)
	stock := NewStockService(db)
	product := createTestProduct(t, db, "7700000000002", 50)

	quantities := []int{3, 10, 1, 7}
	for _, q := range quantities {
		results := stock.Apply(context.Background(), []Movement{
			{ProductID: product.ID, Quantity: q},
		})
		require.NoError(t, results[0].Err)
	}

	var entries []model.Kardex
	require.NoError(t, db.Where("product_id = ?", product.ID).Order("id").Find(&entries).Error)
	require.Len(t, entries, len(quantities))

	// Replaying the ledger from the initial stock must reproduce every
	// recorded snapshot and land on the live stock.
	running := 50
	for i, entry := range entries {
		running -= entry.Quantity
		assert.Equal(t, running, entry.Stock, "entry %d snapshot", i)
		assert.GreaterOrEqual(t, entry.Stock, 0)
	}

	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, running, reloaded.Stock)
}

func TestListMovements_FilterAndPagination(t *testing.T) {
	db := setupTestDB(t)
	stock := NewStockService(db)
	first := createTestProduct(t, db, "7700000000002", 30)
	second := createTestProduct(t, db, "7700000000019", 30)

	for i := 0; i < 3; i++ {
		results := stock.Apply(context.Background(), []Movement{
			{ProductID: first.ID, Quantity: 1},
			{ProductID: second.ID, Quantity: 2},
		})
		require.NoError(t, results[0].Err)
		require.NoError(t, results[1].Err)
	}

	t.Run("all products", func(t *testing.T) {
		entries, total, err := stock.ListMovements(context.Background(), 0, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(6), total)
		assert.Len(t, entries, 6)
	})

	t.Run("one product", func(t *testing.T) {
		entries, total, err := stock.ListMovements(context.Background(), second.ID, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		for _, e := range entries {
			assert.Equal(t, second.ID, e.ProductID)
			require.NotNil(t, e.Product)
			assert.Equal(t, second.Name, e.Product.Name)
		}
	})

	t.Run("paginated newest first", func(t *testing.T) {
		entries, total, err := stock.ListMovements(context.Background(), 0, 1, 4)
		require.NoError(t, err)
		assert.Equal(t, int64(6), total)
		require.Len(t, entries, 4)
		assert.Greater(t, entries[0].ID, entries[1].ID)

		rest, _, err := stock.ListMovements(context.Background(), 0, 2, 4)
		require.NoError(t, err)
		assert.Len(t, rest, 2)
	})
}
