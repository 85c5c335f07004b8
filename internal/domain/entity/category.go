// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (income or expense).
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category in the Budget Tracker system.
// Categories are shared across all users and are immutable after creation;
// the (Name, Type) pair is unique.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	CreatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType) *Category {
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		CreatedAt: time.Now().UTC(),
	}
}

// IsValidCategoryType reports whether the given value is a declared category type.
func IsValidCategoryType(categoryType CategoryType) bool {
	return categoryType == CategoryTypeIncome || categoryType == CategoryTypeExpense
}
