package models

import (
	"github.com/shopspring/decimal"
)

const ProductsTable = "produkty"

// UnknownCategoryLabel is shown for products whose category cannot be resolved.
const UnknownCategoryLabel = "Brak"

// Product represents an inventory item.
// It includes a name, quantity on hand, unit price and the owning category.
type Product struct {
	ID         uint            `gorm:"primaryKey" db:"id"`
	Name       string          `gorm:"column:nazwa;not null" db:"nazwa"`
	Quantity   int             `gorm:"column:liczba;not null" db:"liczba"`
	Price      decimal.Decimal `gorm:"column:Cena;type:decimal(10,2);not null" db:"Cena"`
	CategoryID uint            `gorm:"column:kategoria_id;not null" db:"kategoria_id"`
}

func (p *Product) TableName() string {
	return ProductsTable
}

// ProductListing is a product flattened with the name of its category.
type ProductListing struct {
	Product
	CategoryName string
}
