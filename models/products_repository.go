package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductsRepository stores products in the hosted Postgres database.
type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// productRow is one line of the products LEFT JOIN categories query.
type productRow struct {
	ID           uint            `gorm:"column:id"`
	Name         string          `gorm:"column:nazwa"`
	Quantity     int             `gorm:"column:liczba"`
	Price        decimal.Decimal `gorm:"column:Cena"`
	CategoryID   uint            `gorm:"column:kategoria_id"`
	CategoryName sql.NullString  `gorm:"column:kategoria_nazwa"`
}

var (
	quotedProducts   = pq.QuoteIdentifier(ProductsTable)
	quotedCategories = pq.QuoteIdentifier(CategoriesTable)

	productListingColumns = fmt.Sprintf(
		`%[1]s.id, %[1]s.nazwa, %[1]s.liczba, %[1]s.%[3]s, %[1]s.kategoria_id, %[2]s.nazwa AS kategoria_nazwa`,
		quotedProducts, quotedCategories, pq.QuoteIdentifier("Cena"),
	)
	productListingJoin = fmt.Sprintf(
		`LEFT JOIN %[2]s ON %[2]s.id = %[1]s.kategoria_id`,
		quotedProducts, quotedCategories,
	)
)

// GetAllProducts returns every product with its category name resolved.
// Products whose category is gone are labelled with UnknownCategoryLabel.
func (r *ProductsRepository) GetAllProducts(ctx context.Context) ([]ProductListing, error) {
	var rows []productRow
	if err := r.db.WithContext(ctx).
		Model(&Product{}).
		Select(productListingColumns).
		Joins(productListingJoin).
		Order(quotedProducts + ".id").
		Scan(&rows).Error; err != nil {
		return nil, NewStorageError("list products", err)
	}

	listings := make([]ProductListing, len(rows))
	for i, row := range rows {
		listings[i] = row.toListing()
	}
	return listings, nil
}

func (r *ProductsRepository) CreateProduct(ctx context.Context, product *Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			err = fmt.Errorf("category %d: %w", product.CategoryID, ErrCategoryNotFound)
		}
		return NewStorageError("create product", err)
	}
	return nil
}

func (r *ProductsRepository) DeleteProduct(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Product{}, id)
	if res.Error != nil {
		return NewStorageError("delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return NewStorageError("delete product", ErrProductNotFound)
	}
	return nil
}

func (row productRow) toListing() ProductListing {
	name := UnknownCategoryLabel
	if row.CategoryName.Valid {
		name = row.CategoryName.String
	}
	return ProductListing{
		Product: Product{
			ID:         row.ID,
			Name:       row.Name,
			Quantity:   row.Quantity,
			Price:      row.Price,
			CategoryID: row.CategoryID,
		},
		CategoryName: name,
	}
}
