package products

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/u4905139763-creator/aplikacja-magazynowa/models"
)

// CategoryLister is the slice of the category store the product side needs.
type CategoryLister interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
}

type Manager struct {
	repo       ProductProvider
	categories CategoryLister
	rules      models.Strictness
}

func NewManager(repo ProductProvider, categories CategoryLister, rules models.Strictness) *Manager {
	return &Manager{
		repo:       repo,
		categories: categories,
		rules:      rules,
	}
}

// Create refuses to write anything while no category exists.
func (m *Manager) Create(ctx context.Context, name string, quantity int, price decimal.Decimal, categoryID uint) (*models.Product, error) {
	categories, err := m.categories.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, models.ErrNoCategories
	}

	if err := m.rules.ValidateProduct(name, quantity, price); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:       name,
		Quantity:   quantity,
		Price:      price,
		CategoryID: categoryID,
	}
	if err := m.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// List returns all products joined with their category names. Storage
// labels orphans with models.UnknownCategoryLabel.
func (m *Manager) List(ctx context.Context) ([]models.ProductListing, error) {
	return m.repo.GetAllProducts(ctx)
}

func (m *Manager) Delete(ctx context.Context, id uint) error {
	return m.repo.DeleteProduct(ctx, id)
}
