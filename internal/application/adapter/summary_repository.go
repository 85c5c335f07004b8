// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// SummaryRepository defines the interface for monthly summary persistence operations.
type SummaryRepository interface {
	// Upsert creates the summary, or fully replaces both totals when a row for
	// (user, month) already exists. Balance is rederived from the totals at
	// write time either way. Returns created=true when a new row was inserted.
	//
	// The create-then-update fallback relies on the store's uniqueness
	// constraint on (user_id, month), which makes concurrent aggregator runs
	// for the same period safe: the losing insert degrades to an update.
	Upsert(ctx context.Context, summary *entity.MonthlySummary) (created bool, err error)

	// FindByUser retrieves all summaries for a user, most recent month first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MonthlySummary, error)
}
