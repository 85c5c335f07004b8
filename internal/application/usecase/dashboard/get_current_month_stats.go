// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// GetCurrentMonthStatsInput represents the input for the dashboard stats query.
type GetCurrentMonthStatsInput struct {
	UserID uuid.UUID
}

// CurrentMonthStats represents live statistics for the current calendar month.
type CurrentMonthStats struct {
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	Balance          decimal.Decimal
	TransactionCount int
}

// GetCurrentMonthStatsOutput represents the output of the dashboard stats query.
type GetCurrentMonthStatsOutput struct {
	CurrentMonth CurrentMonthStats
}

// GetCurrentMonthStatsUseCase computes dashboard statistics for the current
// calendar month. The result is always computed live from transactions and is
// never persisted; a month without transactions yields all-zero stats.
type GetCurrentMonthStatsUseCase struct {
	dashboardRepo DashboardRepository
	now           func() time.Time
}

// NewGetCurrentMonthStatsUseCase creates a new GetCurrentMonthStatsUseCase instance.
func NewGetCurrentMonthStatsUseCase(dashboardRepo DashboardRepository) *GetCurrentMonthStatsUseCase {
	return &GetCurrentMonthStatsUseCase{
		dashboardRepo: dashboardRepo,
		now:           time.Now,
	}
}

// WithClock overrides the time source. Used by tests to pin the current month.
func (uc *GetCurrentMonthStatsUseCase) WithClock(now func() time.Time) *GetCurrentMonthStatsUseCase {
	uc.now = now
	return uc
}

// Execute computes the current-month statistics for the user.
func (uc *GetCurrentMonthStatsUseCase) Execute(ctx context.Context, input GetCurrentMonthStatsInput) (*GetCurrentMonthStatsOutput, error) {
	monthStart := entity.FirstOfMonth(uc.now().UTC())
	monthEnd := monthStart.AddDate(0, 1, -1)

	stats, err := uc.dashboardRepo.GetPeriodStats(ctx, input.UserID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}

	return &GetCurrentMonthStatsOutput{
		CurrentMonth: CurrentMonthStats{
			Income:           stats.Income,
			Expenses:         stats.Expenses,
			Balance:          stats.Income.Sub(stats.Expenses),
			TransactionCount: stats.TransactionCount,
		},
	}, nil
}
