package models

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate creates the category and product tables, including the
// cascading foreign key, when they do not exist yet.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Category{}, &Product{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
