package shell

import (
	"errors"

	"github.com/u4905139763-creator/aplikacja-magazynowa/models"
)

const (
	tabProducts   = "products"
	tabCategories = "categories"
)

var messages = map[string]string{
	"category-created": "Dodano pomyślnie!",
	"category-deleted": "Usunięto kategorię.",
	"product-created":  "Produkt zapisany!",
	"product-deleted":  "Usunięto produkt.",
}

var warnings = map[string]string{
	"no-categories":      "Brak kategorii w bazie!",
	"empty-name":         "Nazwa jest wymagana.",
	"negative-quantity":  "Liczba nie może być ujemna.",
	"negative-price":     "Cena nie może być ujemna.",
	"invalid-input":      "Nieprawidłowe dane formularza.",
	"category-not-found": "Nie znaleziono kategorii.",
	"product-not-found":  "Nie znaleziono produktu.",
}

// warningCode maps the errors the page can explain to a warning code.
// Anything else is a storage failure and gets an empty code.
func warningCode(err error) string {
	switch {
	case errors.Is(err, models.ErrNoCategories):
		return "no-categories"
	case errors.Is(err, models.ErrEmptyName):
		return "empty-name"
	case errors.Is(err, models.ErrNegativeQuantity):
		return "negative-quantity"
	case errors.Is(err, models.ErrNegativePrice):
		return "negative-price"
	case errors.Is(err, models.ErrCategoryNotFound):
		return "category-not-found"
	case errors.Is(err, models.ErrProductNotFound):
		return "product-not-found"
	}
	return ""
}
