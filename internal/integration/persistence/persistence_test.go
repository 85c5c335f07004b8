package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// setupTestDB opens a fresh in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.MonthlySummaryModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// seedUser inserts a user row and returns its ID.
func seedUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()

	user := entity.NewUser(email, "Test User", "hash")
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user.ID
}

// seedCategory inserts a category row and returns the entity.
func seedCategory(t *testing.T, db *gorm.DB, name string, categoryType entity.CategoryType) *entity.Category {
	t.Helper()

	category := entity.NewCategory(name, categoryType)
	if err := NewCategoryRepository(db).Create(context.Background(), category); err != nil {
		t.Fatalf("failed to seed category %s: %v", name, err)
	}
	return category
}

// seedTransaction inserts a transaction dated on the given day.
func seedTransaction(
	t *testing.T,
	db *gorm.DB,
	userID uuid.UUID,
	category *entity.Category,
	amount, description string,
	date time.Time,
) *entity.Transaction {
	t.Helper()

	txn := entity.NewTransaction(userID, category.ID, decimal.RequireFromString(amount), description, date)
	if err := NewTransactionRepository(db).Create(context.Background(), txn); err != nil {
		t.Fatalf("failed to seed transaction %q: %v", description, err)
	}
	return txn
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
