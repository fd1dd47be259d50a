package categories

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/u4905139763-creator/aplikacja-magazynowa/app/respond"
	"github.com/u4905139763-creator/aplikacja-magazynowa/models"
)

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"nazwa"`
	Description string `json:"opis"`
}

type CategoryProvider interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uint) error
}

type CategoryHandler struct {
	manager *Manager
}

func NewCategoryHandler(m *Manager) *CategoryHandler {
	return &CategoryHandler{manager: m}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.manager.List(r.Context())
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = toResponse(c)
	}

	respond.JSON(w, http.StatusOK, response)
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name        string `json:"nazwa"`
		Description string `json:"opis"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	category, err := h.manager.Create(r.Context(), input.Name, input.Description)
	if err != nil {
		if errors.Is(err, models.ErrEmptyName) {
			respond.Error(w, http.StatusBadRequest, "Missing name")
			return
		}
		log.Printf("Error creating category (Name: %s): %v", input.Name, err)
		respond.Error(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(*category))
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.PathID(r)
	if !ok {
		respond.Error(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := h.manager.Delete(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			respond.Error(w, http.StatusNotFound, "Category not found")
			return
		}
		log.Printf("Error deleting category (ID: %d): %v", id, err)
		respond.Error(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "Category deleted successfully",
	})
}

func toResponse(c models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}
