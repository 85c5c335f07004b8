// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// TransactionOrdering identifies a sort order for transaction listings.
// The leading '-' means descending, mirroring the query parameter syntax.
type TransactionOrdering string

const (
	OrderByDateAsc       TransactionOrdering = "date"
	OrderByDateDesc      TransactionOrdering = "-date"
	OrderByAmountAsc     TransactionOrdering = "amount"
	OrderByAmountDesc    TransactionOrdering = "-amount"
	OrderByCreatedAtAsc  TransactionOrdering = "created_at"
	OrderByCreatedAtDesc TransactionOrdering = "-created_at"

	// DefaultOrdering is most-recent-date first, ties broken by most recently created.
	DefaultOrdering TransactionOrdering = OrderByDateDesc
)

// TransactionFilter defines filter options for listing transactions.
// All fields except UserID are optional; nil/empty fields impose no
// constraint and set fields are AND-combined.
type TransactionFilter struct {
	UserID       uuid.UUID
	StartDate    *time.Time           // Inclusive lower bound on date
	EndDate      *time.Time           // Inclusive upper bound on date
	CategoryID   *uuid.UUID           // Exact category match
	CategoryType *entity.CategoryType // Matched through the transaction's category
	AmountMin    *decimal.Decimal     // Inclusive lower bound on amount
	AmountMax    *decimal.Decimal     // Inclusive upper bound on amount
	Description  string               // Case-insensitive substring on description
	Search       string               // Case-insensitive substring on description OR category name
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*entity.TransactionWithCategory
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// MonthlyTotals represents per-type amount sums for one user within a month.
// Totals default to zero when no matching rows exist.
type MonthlyTotals struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence operations.
// Every read and write is scoped to an owning user at the query boundary.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction owned by the given user.
	// Returns ErrTransactionNotFound whether the row is absent or owned by
	// someone else.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, ordered and paginated.
	FindByFilter(
		ctx context.Context,
		filter TransactionFilter,
		ordering TransactionOrdering,
		pagination TransactionPagination,
	) (*TransactionListResult, error)

	// FindAllByFilter retrieves every transaction matching the filter in the
	// given order, without pagination. Used by the CSV export.
	FindAllByFilter(
		ctx context.Context,
		filter TransactionFilter,
		ordering TransactionOrdering,
	) ([]*entity.TransactionWithCategory, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// DeleteByIDAndUser deletes a transaction owned by the given user.
	// Returns ErrTransactionNotFound with the same no-leak semantics as
	// FindByIDAndUser.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error

	// FindUserIDsWithTransactions returns the distinct users having at least
	// one transaction dated within [start, end].
	FindUserIDsWithTransactions(ctx context.Context, start, end time.Time) ([]uuid.UUID, error)

	// GetMonthlyTotals sums transaction amounts by category type for one user
	// within [start, end]. Missing types yield zero, never null.
	GetMonthlyTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (*MonthlyTotals, error)
}
