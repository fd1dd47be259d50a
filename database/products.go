package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/u4905139763-creator/aplikacja-magazynowa/models"
)

// ProductsRepository reads and writes the produkty table.
type ProductsRepository struct {
	db *sqlx.DB
}

func NewProductsRepository(db *sqlx.DB) *ProductsRepository {
	return &ProductsRepository{db: db}
}

type productRow struct {
	ID           uint            `db:"id"`
	Name         string          `db:"nazwa"`
	Quantity     int             `db:"liczba"`
	Price        decimal.Decimal `db:"Cena"`
	CategoryID   uint            `db:"kategoria_id"`
	CategoryName sql.NullString  `db:"kategoria_nazwa"`
}

func (r *ProductsRepository) GetAllProducts(ctx context.Context) ([]models.ProductListing, error) {
	const q = `
		SELECT p.id, p.nazwa, p.liczba, p."Cena", p.kategoria_id, k.nazwa AS kategoria_nazwa
		FROM produkty p
		LEFT JOIN "Kategorie" k ON k.id = p.kategoria_id
		ORDER BY p.id`

	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, models.NewStorageError("list products", err)
	}

	listings := make([]models.ProductListing, 0, len(rows))
	for _, row := range rows {
		categoryName := models.UnknownCategoryLabel
		if row.CategoryName.Valid {
			categoryName = row.CategoryName.String
		}
		listings = append(listings, models.ProductListing{
			Product: models.Product{
				ID:         row.ID,
				Name:       row.Name,
				Quantity:   row.Quantity,
				Price:      row.Price,
				CategoryID: row.CategoryID,
			},
			CategoryName: categoryName,
		})
	}
	return listings, nil
}

func (r *ProductsRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	const q = `INSERT INTO produkty (nazwa, liczba, "Cena", kategoria_id) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, product.Name, product.Quantity, product.Price.InexactFloat64(), product.CategoryID)
	if err != nil {
		if isForeignKeyViolation(err) {
			err = fmt.Errorf("category %d: %w", product.CategoryID, models.ErrCategoryNotFound)
		}
		return models.NewStorageError("create product", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.NewStorageError("create product", err)
	}
	product.ID = uint(id)
	return nil
}

func (r *ProductsRepository) DeleteProduct(ctx context.Context, id uint) error {
	const q = `DELETE FROM produkty WHERE id = ?`
	return deleteByID(ctx, r.db, q, id, "delete product", models.ErrProductNotFound)
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}
