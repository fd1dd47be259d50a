package categories

import (
	"context"

	"github.com/u4905139763-creator/aplikacja-magazynowa/models"
)

// Manager is the category side of the inventory. Every call is one round
// trip to storage; callers re-list after a mutation.
type Manager struct {
	repo  CategoryProvider
	rules models.Strictness
}

func NewManager(repo CategoryProvider, rules models.Strictness) *Manager {
	return &Manager{repo: repo, rules: rules}
}

func (m *Manager) Create(ctx context.Context, name, description string) (*models.Category, error) {
	if err := m.rules.ValidateCategory(name); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        name,
		Description: description,
	}
	if err := m.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (m *Manager) List(ctx context.Context) ([]models.Category, error) {
	return m.repo.GetAllCategories(ctx)
}

// Delete removes the category and, through storage, all of its products.
func (m *Manager) Delete(ctx context.Context, id uint) error {
	return m.repo.DeleteCategory(ctx, id)
}
