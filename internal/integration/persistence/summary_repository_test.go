package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

func TestSummaryRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSummaryRepository(db)
	ctx := context.Background()

	userID := seedUser(t, db, "alice@example.com")
	month := day(2026, 7, 1)

	t.Run("first write inserts and derives balance", func(t *testing.T) {
		summary := entity.NewMonthlySummary(userID, month,
			decimal.RequireFromString("5000.00"),
			decimal.RequireFromString("1800.50"),
		)

		created, err := repo.Upsert(ctx, summary)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created {
			t.Error("expected created=true on first write")
		}

		stored, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("FindByUser failed: %v", err)
		}
		if len(stored) != 1 {
			t.Fatalf("expected 1 summary, got %d", len(stored))
		}
		if stored[0].Balance.String() != "3199.5" {
			t.Errorf("expected balance 3199.5, got %s", stored[0].Balance)
		}
	})

	t.Run("rerun for the same month replaces totals in place", func(t *testing.T) {
		summary := entity.NewMonthlySummary(userID, month,
			decimal.RequireFromString("5000.00"),
			decimal.RequireFromString("2100.00"),
		)

		created, err := repo.Upsert(ctx, summary)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created {
			t.Error("expected created=false on rerun")
		}

		stored, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("FindByUser failed: %v", err)
		}
		if len(stored) != 1 {
			t.Fatalf("expected the single row to be updated, got %d rows", len(stored))
		}
		if stored[0].TotalExpenses.String() != "2100" {
			t.Errorf("expected expenses replaced with 2100, got %s", stored[0].TotalExpenses)
		}
		if stored[0].Balance.String() != "2900" {
			t.Errorf("expected balance rederived to 2900, got %s", stored[0].Balance)
		}
	})

	t.Run("different months coexist for one user", func(t *testing.T) {
		summary := entity.NewMonthlySummary(userID, day(2026, 8, 1),
			decimal.RequireFromString("4000.00"),
			decimal.RequireFromString("1000.00"),
		)

		created, err := repo.Upsert(ctx, summary)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created {
			t.Error("expected a new row for a new month")
		}

		stored, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("FindByUser failed: %v", err)
		}
		if len(stored) != 2 {
			t.Fatalf("expected 2 summaries, got %d", len(stored))
		}
	})
}

func TestSummaryRepository_FindByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSummaryRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	for _, month := range []int{5, 7, 6} {
		summary := entity.NewMonthlySummary(alice, day(2026, 5, 1).AddDate(0, month-5, 0),
			decimal.RequireFromString("100.00"), decimal.Zero)
		if _, err := repo.Upsert(ctx, summary); err != nil {
			t.Fatalf("seed upsert failed: %v", err)
		}
	}
	bobSummary := entity.NewMonthlySummary(bob, day(2026, 7, 1), decimal.RequireFromString("50.00"), decimal.Zero)
	if _, err := repo.Upsert(ctx, bobSummary); err != nil {
		t.Fatalf("seed upsert failed: %v", err)
	}

	summaries, err := repo.FindByUser(ctx, alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries for alice, got %d", len(summaries))
	}

	// Most recent month first.
	for i := 1; i < len(summaries); i++ {
		if summaries[i].Month.After(summaries[i-1].Month) {
			t.Errorf("summaries out of order: %v before %v", summaries[i-1].Month, summaries[i].Month)
		}
	}
	for _, s := range summaries {
		if s.UserID != alice {
			t.Errorf("leaked summary owned by %s", s.UserID)
		}
	}
}
