// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardRepository defines the interface for dashboard data operations.
type DashboardRepository interface {
	// GetPeriodStats returns live income/expense totals and the transaction
	// count for one user within [start, end]. Totals default to zero when the
	// period has no matching rows.
	GetPeriodStats(ctx context.Context, userID uuid.UUID, start, end time.Time) (*PeriodStats, error)
}

// PeriodStats represents aggregated statistics for a period.
type PeriodStats struct {
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	TransactionCount int
}
