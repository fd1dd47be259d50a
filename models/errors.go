package models

import (
	"errors"
	"fmt"
)

var (
	// ErrCategoryNotFound is returned when a category id does not resolve.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrNoCategories is returned when a product is created before any category exists.
	ErrNoCategories = errors.New("no categories defined")

	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// StorageError wraps any failure reported by a storage backend.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError returns nil when err is nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err carries a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
