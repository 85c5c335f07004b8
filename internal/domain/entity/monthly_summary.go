// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlySummary represents aggregated income/expense totals for one user and
// one calendar month. The (UserID, Month) pair is unique; Month is always the
// first day of the month. Balance is derived from the totals at write time by
// the persistence layer and is never accepted from callers.
type MonthlySummary struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Month         time.Time
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewMonthlySummary creates a new MonthlySummary entity for the given month.
// The month is normalized to its first day.
func NewMonthlySummary(userID uuid.UUID, month time.Time, totalIncome, totalExpenses decimal.Decimal) *MonthlySummary {
	now := time.Now().UTC()

	return &MonthlySummary{
		ID:            uuid.New(),
		UserID:        userID,
		Month:         FirstOfMonth(month),
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Balance:       totalIncome.Sub(totalExpenses),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// FirstOfMonth truncates a date to the first day of its calendar month, UTC.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// PreviousMonth returns the first day of the calendar month immediately
// before the given date, wrapping the year at January.
func PreviousMonth(t time.Time) time.Time {
	return FirstOfMonth(t).AddDate(0, -1, 0)
}
