package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Strictness selects how much input checking happens before a write.
// The local backend has always rejected empty names and negative numbers,
// while the hosted one accepted anything.
type Strictness int

const (
	Lenient Strictness = iota
	Strict
)

func ParseStrictness(s string) (Strictness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	}
	return Lenient, fmt.Errorf("unknown validation mode %q", s)
}

func (s Strictness) String() string {
	if s == Strict {
		return "strict"
	}
	return "lenient"
}

func (s Strictness) ValidateCategory(name string) error {
	if s == Strict && strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (s Strictness) ValidateProduct(name string, quantity int, price decimal.Decimal) error {
	if s != Strict {
		return nil
	}
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
