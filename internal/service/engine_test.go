package service

import (
	"context"
	"testing"

	"inventory-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllocateBindMoveScenario walks the whole engine: allocate a batch of
// barcodes, register a product under one of them, and move its stock.
func TestAllocateBindMoveScenario(t *testing.T) {
	db := setupTestDB(t)
	barcodes := NewBarcodeService(db, "770000")
	products := NewProductService(db)
	stock := NewStockService(db)
	ctx := context.Background()

	// Allocate three codes from an empty store.
	codes, err := barcodes.Generate(ctx, 3)
	require.NoError(t, err)
	require.Len(t, codes, 3)
	assert.Equal(t, "7700000000002", codes[0].Code)
	assert.Equal(t, "7700000000019", codes[1].Code)
	assert.Equal(t, "7700000000026", codes[2].Code)

	// Bind the second one to a new product with starting stock 20.
	product, err := products.Create(ctx, ProductInput{
		Barcode: codes[1].Code,
		Name:    "black beans 500g",
		Cost:    0.8,
		Price:   1.5,
		Stock:   20,
	})
	require.NoError(t, err)

	var all []model.Barcode
	require.NoError(t, db.Order("id").Find(&all).Error)
	assert.Equal(t, model.BarcodeStatusFree, all[0].Status)
	assert.Equal(t, model.BarcodeStatusBound, all[1].Status)
	assert.Equal(t, model.BarcodeStatusFree, all[2].Status)

	// A movement of 5 leaves 15.
	results := stock.Apply(ctx, []Movement{{ProductID: product.ID, Quantity: 5}})
	require.NoError(t, results[0].Err)
	assert.Equal(t, 15, results[0].Entry.Stock)

	// A movement of 30 is rejected: only 15 remain.
	results = stock.Apply(ctx, []Movement{{ProductID: product.ID, Quantity: 30}})
	assert.ErrorIs(t, results[0].Err, ErrInsufficientStock)

	entries, total, err := stock.ListMovements(ctx, product.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, 15, entries[0].Stock)
}
