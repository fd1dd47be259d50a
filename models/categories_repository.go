package models

import (
	"context"

	"gorm.io/gorm"
)

// CategoriesRepository stores categories in the hosted Postgres database.
type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

func (r *CategoriesRepository) GetAllCategories(ctx context.Context) ([]Category, error) {
	categories := []Category{}
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&categories).Error; err != nil {
		return nil, NewStorageError("list categories", err)
	}
	return categories, nil
}

func (r *CategoriesRepository) CreateCategory(ctx context.Context, category *Category) error {
	if err := r.db.WithContext(ctx).
		Omit("Products").
		Create(category).Error; err != nil {
		return NewStorageError("create category", err)
	}
	return nil
}

// DeleteCategory removes the category; its products go with it through the
// ON DELETE CASCADE rule on produkty.kategoria_id.
func (r *CategoriesRepository) DeleteCategory(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Category{}, id)
	if res.Error != nil {
		return NewStorageError("delete category", res.Error)
	}
	if res.RowsAffected == 0 {
		return NewStorageError("delete category", ErrCategoryNotFound)
	}
	return nil
}
