// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// MonthlySummaryModel represents the monthly_summaries table in the database.
// The (user_id, month) pair carries a composite unique index, which is what
// the aggregator's upsert path relies on under concurrent runs.
type MonthlySummaryModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_monthly_summaries_user_month"`
	Month         time.Time       `gorm:"type:date;not null;uniqueIndex:idx_monthly_summaries_user_month"`
	TotalIncome   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalExpenses decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Balance       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MonthlySummaryModel.
func (MonthlySummaryModel) TableName() string {
	return "monthly_summaries"
}

// BeforeSave rederives the balance from the totals on every write. The stored
// balance is a pure function of the two totals; caller-supplied values are
// overwritten here so the invariant holds no matter which path wrote the row.
func (m *MonthlySummaryModel) BeforeSave(_ *gorm.DB) error {
	m.Balance = m.TotalIncome.Sub(m.TotalExpenses)
	return nil
}

// ToEntity converts a MonthlySummaryModel to a domain MonthlySummary entity.
func (m *MonthlySummaryModel) ToEntity() *entity.MonthlySummary {
	return &entity.MonthlySummary{
		ID:            m.ID,
		UserID:        m.UserID,
		Month:         m.Month,
		TotalIncome:   m.TotalIncome,
		TotalExpenses: m.TotalExpenses,
		Balance:       m.Balance,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// MonthlySummaryFromEntity creates a MonthlySummaryModel from a domain MonthlySummary entity.
func MonthlySummaryFromEntity(summary *entity.MonthlySummary) *MonthlySummaryModel {
	return &MonthlySummaryModel{
		ID:            summary.ID,
		UserID:        summary.UserID,
		Month:         summary.Month,
		TotalIncome:   summary.TotalIncome,
		TotalExpenses: summary.TotalExpenses,
		Balance:       summary.Balance,
		CreatedAt:     summary.CreatedAt,
		UpdatedAt:     summary.UpdatedAt,
	}
}
