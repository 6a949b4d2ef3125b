package service

import (
	"testing"

	"inventory-service/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing. TranslateError
// mirrors the production connection so unique-constraint violations surface as
// gorm.ErrDuplicatedKey here too.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "open test database")

	// A fresh pool connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Barcode{},
		&model.Product{},
		&model.Kardex{},
		&model.Category{},
		&model.Provider{},
	)
	require.NoError(t, err, "migrate test database")

	return db
}

// createTestProduct inserts a product row directly, bypassing the binding
// transaction, for tests that only need stock to move.
func createTestProduct(t *testing.T, db *gorm.DB, code string, stock int) *model.Product {
	t.Helper()

	product := &model.Product{
		Barcode: code,
		Name:    "product " + code,
		Cost:    2.5,
		Price:   4,
		Stock:   stock,
		Unit:    "unit",
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
