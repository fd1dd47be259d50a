package products

import (
	"context"

	"github.com/u4905139763-creator/aplikacja-magazynowa/models"
)

// --- Mock Repos ---

type MockProductRepo struct {
	SourceProducts []models.ProductListing
	Err            error
	CreateErr      error
	DeleteErr      error

	// Fields to capture call arguments
	lastSaved     *models.Product
	lastDeletedID uint
}

func (m *MockProductRepo) GetAllProducts(ctx context.Context) ([]models.ProductListing, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.SourceProducts, nil
}

func (m *MockProductRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	m.lastSaved = product
	if m.CreateErr != nil {
		return m.CreateErr
	}
	product.ID = uint(len(m.SourceProducts) + 1)
	return nil
}

func (m *MockProductRepo) DeleteProduct(ctx context.Context, id uint) error {
	m.lastDeletedID = id
	return m.DeleteErr
}

type MockCategoryLister struct {
	Categories []models.Category
	Err        error
}

func (m *MockCategoryLister) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return m.Categories, m.Err
}

var electronics = []models.Category{{ID: 1, Name: "Electronics", Description: "Gadgets"}}
