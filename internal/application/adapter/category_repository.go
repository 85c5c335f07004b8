// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// Categories are shared across users; there is no owner scoping here.
type CategoryRepository interface {
	// Create creates a new category in the database. Returns ErrCategoryExists
	// when the (name, type) pair is already taken.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves all categories ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// ExistsByNameAndType checks whether a category with the given name and type exists.
	ExistsByNameAndType(ctx context.Context, name string, categoryType entity.CategoryType) (bool, error)
}
