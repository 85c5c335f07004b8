// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetPeriodStats computes live income/expense totals and the transaction
// count for one user within [start, end] in a single aggregate query.
func (r *dashboardRepository) GetPeriodStats(ctx context.Context, userID uuid.UUID, start, end time.Time) (*dashboard.PeriodStats, error) {
	var row struct {
		Income           decimal.Decimal
		Expenses         decimal.Decimal
		TransactionCount int
	}

	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.date >= ? AND transactions.date <= ?", userID, start, end).
		Select(
			"COALESCE(SUM(CASE WHEN categories.type = ? THEN transactions.amount ELSE 0 END), 0) AS income, "+
				"COALESCE(SUM(CASE WHEN categories.type = ? THEN transactions.amount ELSE 0 END), 0) AS expenses, "+
				"COUNT(*) AS transaction_count",
			string(entity.CategoryTypeIncome),
			string(entity.CategoryTypeExpense),
		).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &dashboard.PeriodStats{
		Income:           row.Income,
		Expenses:         row.Expenses,
		TransactionCount: row.TransactionCount,
	}, nil
}
