package service

import (
	"context"
	"testing"

	"inventory-service/internal/ean13"
	"inventory-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrefix = "770000"

func TestGenerate_FromEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBarcodeService(db, testPrefix)

	codes, err := svc.Generate(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, codes, 3)

	assert.Equal(t, "7700000000002", codes[0].Code)
	assert.Equal(t, "7700000000019", codes[1].Code)
	assert.Equal(t, "7700000000026", codes[2].Code)

	for _, b := range codes {
		assert.True(t, ean13.Validate(b.Code))
		assert.Equal(t, model.BarcodeStatusFree, b.Status)
		assert.Contains(t, b.ImageURL, b.Code)
		assert.NotZero(t, b.ID)
	}
}

func TestGenerate_Monotonic(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBarcodeService(db, testPrefix)

	first, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, second, 1)

	// Consecutive single allocations carry consecutive sequence numbers.
	assert.Equal(t, "7700000000002", first[0].Code)
	assert.Equal(t, "7700000000019", second[0].Code)
}

func TestGenerate_UniqueAcrossCalls(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBarcodeService(db, testPrefix)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		codes, err := svc.Generate(context.Background(), 4)
		require.NoError(t, err)
		for _, b := range codes {
			assert.False(t, seen[b.Code], "code %s issued twice", b.Code)
			seen[b.Code] = true
		}
	}

	var total int64
	require.NoError(t, db.Model(&model.Barcode{}).Count(&total).Error)
	assert.Equal(t, int64(len(seen)), total)
}

func TestGenerate_ContinuesAfterManualCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBarcodeService(db, testPrefix)

	// A manually registered code under the prefix moves the sequence forward.
	_, err := svc.Create(context.Background(), "7700000000088", "")
	require.NoError(t, err)

	codes, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, "7700000000095", codes[0].Code)
}

func TestGenerate_SkipsCollisionsWithoutRenumbering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBarcodeService(db, testPrefix)

	// Sequence numbers past the payload capacity truncate to the same
	// 12-digit payload, so every candidate after the first collides and is
	// skipped rather than renumbered.
	require.NoError(t, db.Create(&model.Barcode{
		Code:   "7700009999994",
		Status: model.BarcodeStatusFree,
	}).Error)

	codes, err := svc.Generate(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, codes, 1, "colliding candidates must be skipped, not refilled")
	assert.Equal(t, "7700001000001", codes[0].Code)
}

func TestGenerate_NonPositiveCount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBarcodeService(db, testPrefix)

	for _, count := range []int{0, -3} {
		codes, err := svc.Generate(context.Background(), count)
		require.NoError(t, err)
		assert.Empty(t, codes)
	}

	var total int64
	require.NoError(t, db.Model(&model.Barcode{}).Count(&total).Error)
	assert.Zero(t, total)
}

func TestCreate_Manual(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBarcodeService(db, testPrefix)

	barcode, err := svc.Create(context.Background(), "4006381333931", "")
	require.NoError(t, err)
	assert.Equal(t, model.BarcodeStatusFree, barcode.Status)
	assert.Equal(t, ImageURL("4006381333931"), barcode.ImageURL)

	_, err = svc.Create(context.Background(), "4006381333931", "")
	assert.ErrorIs(t, err, ErrDuplicateBarcode)
}

func TestCreate_InvalidCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBarcodeService(db, testPrefix)

	for _, code := range []string{"", "770000", "7700000000001", "770000000000x"} {
		_, err := svc.Create(context.Background(), code, "")
		assert.ErrorIs(t, err, ErrInvalidBarcode, "code %q", code)
	}
}

func TestList_PaginatesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBarcodeService(db, testPrefix)

	_, err := svc.Generate(context.Background(), 5)
	require.NoError(t, err)

	page1, total, err := svc.List(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page1, 2)

	page3, _, err := svc.List(context.Background(), 3, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)

	// Newest first: the last generated code leads the first page.
	assert.Greater(t, page1[0].ID, page1[1].ID)
	assert.Equal(t, "7700000000002", page3[0].Code)
}

func TestDelete_RefusesBoundBarcode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBarcodeService(db, testPrefix)

	codes, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.Barcode{}).
		Where("id = ?", codes[0].ID).
		Update("status", model.BarcodeStatusBound).Error)

	err = svc.Delete(context.Background(), codes[0].ID)
	assert.ErrorIs(t, err, ErrBarcodeInUse)

	_, err = svc.Get(context.Background(), codes[0].ID)
	assert.NoError(t, err, "bound barcode must survive the delete attempt")
}

func TestDelete_FreeBarcode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBarcodeService(db, testPrefix)

	codes, err := svc.Generate(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), codes[0].ID))

	_, err = svc.Get(context.Background(), codes[0].ID)
	assert.ErrorIs(t, err, ErrBarcodeNotFound)
}
