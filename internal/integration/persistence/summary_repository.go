// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// summaryRepository implements the adapter.SummaryRepository interface.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new monthly summary repository instance.
func NewSummaryRepository(db *gorm.DB) adapter.SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

// Upsert inserts the summary or, when the (user_id, month) unique index
// rejects the insert, overwrites both totals of the existing row. Balance is
// rederived from the totals on both paths (the BeforeSave hook on insert, an
// explicit column on update) and written in the same statement as the totals,
// so readers never observe a half-applied summary. Losing an insert race to a
// concurrent aggregator run lands on the update path, which makes retries and
// overlapping runs safe.
func (r *summaryRepository) Upsert(ctx context.Context, summary *entity.MonthlySummary) (bool, error) {
	summaryModel := model.MonthlySummaryFromEntity(summary)

	err := r.db.WithContext(ctx).Create(summaryModel).Error
	if err == nil {
		return true, nil
	}
	if !isUniqueViolation(err) {
		return false, err
	}

	updates := map[string]interface{}{
		"total_income":   summary.TotalIncome,
		"total_expenses": summary.TotalExpenses,
		"balance":        summary.TotalIncome.Sub(summary.TotalExpenses),
		"updated_at":     time.Now().UTC(),
	}

	result := r.db.WithContext(ctx).
		Model(&model.MonthlySummaryModel{}).
		Where("user_id = ? AND month = ?", summary.UserID, summary.Month).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return false, nil
}

// FindByUser retrieves all summaries for a user, most recent month first.
func (r *summaryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MonthlySummary, error) {
	var summaryModels []model.MonthlySummaryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("month DESC").
		Find(&summaryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	summaries := make([]*entity.MonthlySummary, len(summaryModels))
	for i, sm := range summaryModels {
		summaries[i] = sm.ToEntity()
	}
	return summaries, nil
}
