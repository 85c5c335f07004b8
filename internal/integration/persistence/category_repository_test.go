package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

func TestCategoryRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	t.Run("duplicate name and type reports conflict", func(t *testing.T) {
		if err := repo.Create(ctx, entity.NewCategory("Groceries", entity.CategoryTypeExpense)); err != nil {
			t.Fatalf("first create failed: %v", err)
		}

		err := repo.Create(ctx, entity.NewCategory("Groceries", entity.CategoryTypeExpense))
		if !errors.Is(err, domainerror.ErrCategoryExists) {
			t.Fatalf("expected ErrCategoryExists, got %v", err)
		}
	})

	t.Run("same name with different type is allowed", func(t *testing.T) {
		if err := repo.Create(ctx, entity.NewCategory("Freelance", entity.CategoryTypeIncome)); err != nil {
			t.Fatalf("income create failed: %v", err)
		}
		if err := repo.Create(ctx, entity.NewCategory("Freelance", entity.CategoryTypeExpense)); err != nil {
			t.Fatalf("expense create failed: %v", err)
		}
	})
}

func TestCategoryRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Rent", "Groceries", "Salary"} {
		categoryType := entity.CategoryTypeExpense
		if name == "Salary" {
			categoryType = entity.CategoryTypeIncome
		}
		if err := repo.Create(ctx, entity.NewCategory(name, categoryType)); err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
	}

	categories, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}

	var names []string
	for _, c := range categories {
		names = append(names, c.Name)
	}
	want := []string{"Groceries", "Rent", "Salary"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected name order %v, got %v", want, names)
		}
	}
}

func TestCategoryRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := entity.NewCategory("Utilities", entity.CategoryTypeExpense)
	if err := repo.Create(ctx, category); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByID(ctx, category.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Utilities" {
		t.Errorf("unexpected name: %q", found.Name)
	}

	_, err = repo.FindByID(ctx, entity.NewCategory("ghost", entity.CategoryTypeExpense).ID)
	if !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
