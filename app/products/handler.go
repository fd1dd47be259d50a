package products

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/u4905139763-creator/aplikacja-magazynowa/app/respond"
	"github.com/u4905139763-creator/aplikacja-magazynowa/models"
)

type Product struct {
	ID           uint    `json:"id"`
	Name         string  `json:"nazwa"`
	Quantity     int     `json:"liczba"`
	Price        float64 `json:"cena"`
	CategoryID   uint    `json:"kategoria_id"`
	CategoryName string  `json:"kategoria_nazwa"`
}

type ProductProvider interface {
	GetAllProducts(ctx context.Context) ([]models.ProductListing, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductHandler struct {
	manager *Manager
}

func NewProductHandler(m *Manager) *ProductHandler {
	return &ProductHandler{
		manager: m,
	}
}

func (h *ProductHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.manager.List(r.Context())
	if err != nil {
		log.Printf("Error listing products: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	products := make([]Product, len(res))
	for i, p := range res {
		products[i] = Product{
			ID:           p.ID,
			Name:         p.Name,
			Quantity:     p.Quantity,
			Price:        p.Price.InexactFloat64(),
			CategoryID:   p.CategoryID,
			CategoryName: p.CategoryName,
		}
	}

	respond.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name       string          `json:"nazwa"`
		Quantity   int             `json:"liczba"`
		Price      decimal.Decimal `json:"cena"`
		CategoryID uint            `json:"kategoria_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	product, err := h.manager.Create(r.Context(), input.Name, input.Quantity, input.Price, input.CategoryID)
	if err != nil {
		status, message := createErrorResponse(err)
		if status == http.StatusInternalServerError {
			log.Printf("Error creating product (Name: %s): %v", input.Name, err)
		}
		respond.Error(w, status, message)
		return
	}

	respond.JSON(w, http.StatusCreated, Product{
		ID:         product.ID,
		Name:       product.Name,
		Quantity:   product.Quantity,
		Price:      product.Price.InexactFloat64(),
		CategoryID: product.CategoryID,
	})
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.PathID(r)
	if !ok {
		respond.Error(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.manager.Delete(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			respond.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("Error deleting product (ID: %d): %v", id, err)
		respond.Error(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "Product deleted successfully",
	})
}

func createErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrNoCategories):
		return http.StatusConflict, "No categories defined"
	case errors.Is(err, models.ErrCategoryNotFound):
		return http.StatusBadRequest, "Category not found"
	case errors.Is(err, models.ErrEmptyName):
		return http.StatusBadRequest, "Missing name"
	case errors.Is(err, models.ErrNegativeQuantity):
		return http.StatusBadRequest, "Quantity cannot be negative"
	case errors.Is(err, models.ErrNegativePrice):
		return http.StatusBadRequest, "Price cannot be negative"
	}
	return http.StatusInternalServerError, "Failed to create product"
}
