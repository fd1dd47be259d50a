package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/u4905139763-creator/aplikacja-magazynowa/models"
)

// CategoriesRepository reads and writes the "Kategorie" table.
type CategoriesRepository struct {
	db *sqlx.DB
}

func NewCategoriesRepository(db *sqlx.DB) *CategoriesRepository {
	return &CategoriesRepository{db: db}
}

func (r *CategoriesRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	const q = `SELECT id, nazwa, COALESCE(opis, '') AS opis FROM "Kategorie" ORDER BY id`
	categories := []models.Category{}
	if err := r.db.SelectContext(ctx, &categories, q); err != nil {
		return nil, models.NewStorageError("list categories", err)
	}
	return categories, nil
}

func (r *CategoriesRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	const q = `INSERT INTO "Kategorie" (nazwa, opis) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, category.Name, category.Description)
	if err != nil {
		return models.NewStorageError("create category", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.NewStorageError("create category", err)
	}
	category.ID = uint(id)
	return nil
}

func (r *CategoriesRepository) DeleteCategory(ctx context.Context, id uint) error {
	const q = `DELETE FROM "Kategorie" WHERE id = ?`
	return deleteByID(ctx, r.db, q, id, "delete category", models.ErrCategoryNotFound)
}

func deleteByID(ctx context.Context, db *sqlx.DB, q string, id uint, op string, notFound error) error {
	res, err := db.ExecContext(ctx, q, id)
	if err != nil {
		return models.NewStorageError(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.NewStorageError(op, err)
	}
	if n == 0 {
		return models.NewStorageError(op, fmt.Errorf("id %d: %w", id, notFound))
	}
	return nil
}
