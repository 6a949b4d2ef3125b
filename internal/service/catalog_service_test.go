package service

import (
	"context"
	"testing"

	"inventory-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)
	ctx := context.Background()

	category, err := catalog.CreateCategory(ctx, "dairy")
	require.NoError(t, err)

	updated, err := catalog.UpdateCategory(ctx, category.ID, "dairy & eggs")
	require.NoError(t, err)
	assert.Equal(t, "dairy & eggs", updated.Name)

	categories, err := catalog.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	require.NoError(t, catalog.DeleteCategory(ctx, category.ID))
	_, err = catalog.GetCategory(ctx, category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	err = catalog.DeleteCategory(ctx, category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestProviderLifecycle(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)
	ctx := context.Background()

	provider, err := catalog.CreateProvider(ctx, &model.Provider{Name: "acme foods", Phone: "555-0101"})
	require.NoError(t, err)

	updated, err := catalog.UpdateProvider(ctx, provider.ID, &model.Provider{
		Name:  "acme foods ltd",
		Email: "sales@acme.example",
		Phone: "555-0102",
	})
	require.NoError(t, err)
	assert.Equal(t, "acme foods ltd", updated.Name)
	assert.Equal(t, "sales@acme.example", updated.Email)
	assert.Equal(t, "555-0102", updated.Phone)

	reloaded, err := catalog.GetProvider(ctx, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, "acme foods ltd", reloaded.Name)

	_, err = catalog.UpdateProvider(ctx, provider.ID+99, &model.Provider{Name: "nobody"})
	assert.ErrorIs(t, err, ErrProviderNotFound)

	require.NoError(t, catalog.DeleteProvider(ctx, provider.ID))
	_, err = catalog.GetProvider(ctx, provider.ID)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestProviderProducts(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)
	ctx := context.Background()

	provider, err := catalog.CreateProvider(ctx, &model.Provider{Name: "acme foods", Phone: "555-0101"})
	require.NoError(t, err)

	require.NoError(t, db.Create(&model.Product{
		Barcode: "7700000000002", Name: "rice", ProviderID: provider.ID,
	}).Error)
	require.NoError(t, db.Create(&model.Product{
		Barcode: "7700000000019", Name: "beans", ProviderID: provider.ID,
	}).Error)

	products, total, err := catalog.ProviderProducts(ctx, provider.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, products, 2)

	_, _, err = catalog.ProviderProducts(ctx, provider.ID+99, 1, 10)
	assert.ErrorIs(t, err, ErrProviderNotFound)
}
