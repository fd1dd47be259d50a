package models

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "models.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestCategoriesRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoriesRepository(openTestDB(t))

	empty, err := repo.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)

	cat := &Category{Name: "Electronics", Description: "Gadgets"}
	require.NoError(t, repo.CreateCategory(ctx, cat))
	assert.Equal(t, uint(1), cat.ID)

	second := &Category{Name: "Books"}
	require.NoError(t, repo.CreateCategory(ctx, second))
	assert.NotEqual(t, cat.ID, second.ID)

	all, err := repo.GetAllCategories(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, uint(1), all[0].ID)
	assert.Equal(t, "Electronics", all[0].Name)
	assert.Equal(t, "Gadgets", all[0].Description)

	require.NoError(t, repo.DeleteCategory(ctx, second.ID))

	all, err = repo.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCategoriesRepository_DeleteUnknown(t *testing.T) {
	repo := NewCategoriesRepository(openTestDB(t))

	err := repo.DeleteCategory(context.Background(), 42)
	assert.True(t, IsStorageError(err))
	assert.True(t, errors.Is(err, ErrCategoryNotFound))
}

func TestProductsRepository_ListResolvesCategory(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	categories := NewCategoriesRepository(db)
	products := NewProductsRepository(db)

	cat := &Category{Name: "Electronics", Description: "Gadgets"}
	require.NoError(t, categories.CreateCategory(ctx, cat))

	cable := &Product{Name: "Cable", Quantity: 10, Price: decimal.RequireFromString("4.99"), CategoryID: cat.ID}
	require.NoError(t, products.CreateProduct(ctx, cable))
	assert.NotZero(t, cable.ID)

	listings, err := products.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Cable", listings[0].Name)
	assert.Equal(t, 10, listings[0].Quantity)
	assert.Equal(t, "4.99", listings[0].Price.StringFixed(2))
	assert.Equal(t, cat.ID, listings[0].CategoryID)
	assert.Equal(t, "Electronics", listings[0].CategoryName)
}

func TestCategoriesRepository_DeleteCascadesToProducts(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	categories := NewCategoriesRepository(db)
	products := NewProductsRepository(db)

	cat := &Category{Name: "Electronics"}
	require.NoError(t, categories.CreateCategory(ctx, cat))
	require.NoError(t, products.CreateProduct(ctx, &Product{Name: "Cable", Quantity: 10, Price: decimal.NewFromFloat(4.99), CategoryID: cat.ID}))

	require.NoError(t, categories.DeleteCategory(ctx, cat.ID))

	remainingCategories, err := categories.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, remainingCategories, 0)

	remainingProducts, err := products.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, remainingProducts, 0)
}

func TestProductsRepository_DeleteKeepsCategory(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	categories := NewCategoriesRepository(db)
	products := NewProductsRepository(db)

	cat := &Category{Name: "Electronics", Description: "Gadgets"}
	require.NoError(t, categories.CreateCategory(ctx, cat))
	p := &Product{Name: "Cable", Quantity: 1, Price: decimal.NewFromInt(2), CategoryID: cat.ID}
	require.NoError(t, products.CreateProduct(ctx, p))

	require.NoError(t, products.DeleteProduct(ctx, p.ID))

	remaining, err := categories.GetAllCategories(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Electronics", remaining[0].Name)
	assert.Equal(t, "Gadgets", remaining[0].Description)

	err = products.DeleteProduct(ctx, p.ID)
	assert.True(t, IsStorageError(err))
	assert.True(t, errors.Is(err, ErrProductNotFound))
}

func TestProductRow_OrphanGetsPlaceholder(t *testing.T) {
	row := productRow{ID: 3, Name: "Lamp", Quantity: 2, Price: decimal.NewFromInt(5), CategoryID: 9}

	listing := row.toListing()

	assert.Equal(t, UnknownCategoryLabel, listing.CategoryName)
	assert.Equal(t, uint(9), listing.CategoryID)
}
