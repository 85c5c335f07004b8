package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

func TestTransactionRepository_FindByIDAndUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	stranger := seedUser(t, db, "stranger@example.com")
	groceries := seedCategory(t, db, "Groceries", entity.CategoryTypeExpense)
	txn := seedTransaction(t, db, owner, groceries, "42.50", "Weekly shop", day(2026, 8, 15))

	t.Run("owner finds own transaction", func(t *testing.T) {
		found, err := repo.FindByIDAndUser(ctx, txn.ID, owner)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Description != "Weekly shop" {
			t.Errorf("unexpected description: %q", found.Description)
		}
	})

	t.Run("another user's transaction reports not found", func(t *testing.T) {
		_, err := repo.FindByIDAndUser(ctx, txn.ID, stranger)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestTransactionRepository_FindByFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	groceries := seedCategory(t, db, "Groceries", entity.CategoryTypeExpense)
	salary := seedCategory(t, db, "Salary", entity.CategoryTypeIncome)

	seedTransaction(t, db, alice, groceries, "42.50", "Weekly shop", day(2026, 8, 15))
	seedTransaction(t, db, alice, groceries, "18.00", "Corner store", day(2026, 8, 20))
	seedTransaction(t, db, alice, salary, "5000.00", "August paycheck", day(2026, 8, 25))
	seedTransaction(t, db, alice, groceries, "60.00", "July shop", day(2026, 7, 10))
	seedTransaction(t, db, bob, groceries, "99.99", "Bob's shop", day(2026, 8, 15))

	list := func(t *testing.T, filter adapter.TransactionFilter) *adapter.TransactionListResult {
		t.Helper()
		result, err := repo.FindByFilter(ctx, filter, adapter.DefaultOrdering, adapter.TransactionPagination{Page: 1, Limit: 20})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		return result
	}

	t.Run("results are scoped to the user", func(t *testing.T) {
		result := list(t, adapter.TransactionFilter{UserID: alice})
		if result.Total != 4 {
			t.Errorf("expected 4 transactions for alice, got %d", result.Total)
		}
		for _, row := range result.Transactions {
			if row.Transaction.UserID != alice {
				t.Errorf("leaked transaction owned by %s", row.Transaction.UserID)
			}
		}
	})

	t.Run("date range bounds are inclusive", func(t *testing.T) {
		start := day(2026, 8, 15)
		end := day(2026, 8, 25)
		result := list(t, adapter.TransactionFilter{UserID: alice, StartDate: &start, EndDate: &end})
		if result.Total != 3 {
			t.Errorf("expected 3 transactions in range, got %d", result.Total)
		}
	})

	t.Run("category type filters through the join", func(t *testing.T) {
		income := entity.CategoryTypeIncome
		result := list(t, adapter.TransactionFilter{UserID: alice, CategoryType: &income})
		if result.Total != 1 {
			t.Fatalf("expected 1 income transaction, got %d", result.Total)
		}
		if result.Transactions[0].Transaction.Description != "August paycheck" {
			t.Errorf("unexpected transaction: %q", result.Transactions[0].Transaction.Description)
		}
	})

	t.Run("amount bounds are inclusive", func(t *testing.T) {
		min := decimal.RequireFromString("18.00")
		max := decimal.RequireFromString("42.50")
		result := list(t, adapter.TransactionFilter{UserID: alice, AmountMin: &min, AmountMax: &max})
		if result.Total != 2 {
			t.Errorf("expected 2 transactions in amount range, got %d", result.Total)
		}
	})

	t.Run("search is case-insensitive across description and category name", func(t *testing.T) {
		result := list(t, adapter.TransactionFilter{UserID: alice, Search: "PAYCHECK"})
		if result.Total != 1 {
			t.Errorf("expected 1 match on description, got %d", result.Total)
		}

		result = list(t, adapter.TransactionFilter{UserID: alice, Search: "grocer"})
		if result.Total != 3 {
			t.Errorf("expected 3 matches via category name, got %d", result.Total)
		}
	})

	t.Run("default ordering is most recent date first", func(t *testing.T) {
		result := list(t, adapter.TransactionFilter{UserID: alice})
		var got []string
		for _, row := range result.Transactions {
			got = append(got, row.Transaction.Date.Format("2006-01-02"))
		}
		want := []string{"2026-08-25", "2026-08-20", "2026-08-15", "2026-07-10"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("unexpected order: got %v, want %v", got, want)
			}
		}
	})

	t.Run("amount ordering ascending", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx,
			adapter.TransactionFilter{UserID: alice},
			adapter.OrderByAmountAsc,
			adapter.TransactionPagination{Page: 1, Limit: 20},
		)
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Transactions[0].Transaction.Amount.String() != "18" {
			t.Errorf("expected smallest amount first, got %s", result.Transactions[0].Transaction.Amount)
		}
	})

	t.Run("pagination slices and reports totals", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx,
			adapter.TransactionFilter{UserID: alice},
			adapter.DefaultOrdering,
			adapter.TransactionPagination{Page: 2, Limit: 3},
		)
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 4 || result.TotalPages != 2 {
			t.Errorf("expected total=4 pages=2, got total=%d pages=%d", result.Total, result.TotalPages)
		}
		if len(result.Transactions) != 1 {
			t.Errorf("expected 1 transaction on page 2, got %d", len(result.Transactions))
		}
	})

	t.Run("zero pagination falls back to defaults", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx,
			adapter.TransactionFilter{UserID: alice},
			adapter.DefaultOrdering,
			adapter.TransactionPagination{},
		)
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Page != 1 || result.Limit != 20 {
			t.Errorf("expected page=1 limit=20, got page=%d limit=%d", result.Page, result.Limit)
		}
		if len(result.Transactions) != 4 || result.TotalPages != 1 {
			t.Errorf("expected all 4 rows on 1 page, got %d rows on %d pages", len(result.Transactions), result.TotalPages)
		}
	})

	t.Run("category is preloaded", func(t *testing.T) {
		result := list(t, adapter.TransactionFilter{UserID: alice})
		for _, row := range result.Transactions {
			if row.Category == nil {
				t.Fatal("expected category to be preloaded on every row")
			}
		}
	})
}

func TestTransactionRepository_DeleteByIDAndUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	stranger := seedUser(t, db, "stranger@example.com")
	groceries := seedCategory(t, db, "Groceries", entity.CategoryTypeExpense)
	txn := seedTransaction(t, db, owner, groceries, "10.00", "Lunch", day(2026, 8, 1))

	if err := repo.DeleteByIDAndUser(ctx, txn.ID, stranger); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound for a stranger, got %v", err)
	}

	if err := repo.DeleteByIDAndUser(ctx, txn.ID, owner); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}

	if _, err := repo.FindByIDAndUser(ctx, txn.ID, owner); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Fatalf("expected transaction to be gone, got %v", err)
	}
}

func TestTransactionRepository_FindUserIDsWithTransactions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	carol := seedUser(t, db, "carol@example.com")
	groceries := seedCategory(t, db, "Groceries", entity.CategoryTypeExpense)

	seedTransaction(t, db, alice, groceries, "10.00", "In July", day(2026, 7, 5))
	seedTransaction(t, db, alice, groceries, "11.00", "Also July", day(2026, 7, 20))
	seedTransaction(t, db, bob, groceries, "12.00", "July too", day(2026, 7, 31))
	seedTransaction(t, db, carol, groceries, "13.00", "August only", day(2026, 8, 2))

	userIDs, err := repo.FindUserIDsWithTransactions(ctx, day(2026, 7, 1), day(2026, 7, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(userIDs) != 2 {
		t.Fatalf("expected 2 distinct users with July transactions, got %d", len(userIDs))
	}
	for _, id := range userIDs {
		if id == carol {
			t.Error("carol has no July transactions and must not appear")
		}
	}
}

func TestTransactionRepository_GetMonthlyTotals(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	groceries := seedCategory(t, db, "Groceries", entity.CategoryTypeExpense)
	rent := seedCategory(t, db, "Rent", entity.CategoryTypeExpense)
	salary := seedCategory(t, db, "Salary", entity.CategoryTypeIncome)

	seedTransaction(t, db, alice, salary, "5000.00", "Paycheck", day(2026, 7, 25))
	seedTransaction(t, db, alice, groceries, "300.50", "Food", day(2026, 7, 10))
	seedTransaction(t, db, alice, rent, "1500.00", "July rent", day(2026, 7, 1))
	seedTransaction(t, db, alice, groceries, "80.00", "August food", day(2026, 8, 3))
	seedTransaction(t, db, bob, groceries, "999.00", "Bob's food", day(2026, 7, 15))

	totals, err := repo.GetMonthlyTotals(ctx, alice, day(2026, 7, 1), day(2026, 7, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if totals.TotalIncome.String() != "5000" {
		t.Errorf("expected income 5000, got %s", totals.TotalIncome)
	}
	if totals.TotalExpenses.String() != "1800.5" {
		t.Errorf("expected expenses 1800.5, got %s", totals.TotalExpenses)
	}

	t.Run("empty month yields zero totals", func(t *testing.T) {
		totals, err := repo.GetMonthlyTotals(ctx, alice, day(2026, 1, 1), day(2026, 1, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !totals.TotalIncome.IsZero() || !totals.TotalExpenses.IsZero() {
			t.Errorf("expected zero totals, got income=%s expenses=%s", totals.TotalIncome, totals.TotalExpenses)
		}
	})
}
