package models

// CategoriesTable is the storage name of the category table. The mixed case
// matches the schema of the hosted database, so it must always be quoted.
const CategoriesTable = "Kategorie"

// Category represents a product category.
// It groups products and carries a human-readable name and an optional description.
type Category struct {
	ID          uint      `gorm:"primaryKey" db:"id"`
	Name        string    `gorm:"column:nazwa;not null" db:"nazwa"`
	Description string    `gorm:"column:opis" db:"opis"`
	Products    []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" db:"-"`
}

func (c *Category) TableName() string {
	return CategoriesTable
}
