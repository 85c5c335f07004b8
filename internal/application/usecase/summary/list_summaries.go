// Package summary contains monthly summary use cases.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
)

// ListSummariesInput represents the input for listing monthly summaries.
type ListSummariesInput struct {
	UserID uuid.UUID
}

// SummaryOutput represents a single monthly summary in the output.
type SummaryOutput struct {
	ID            uuid.UUID
	Month         time.Time
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
	CreatedAt     time.Time
}

// ListSummariesOutput represents the output of listing monthly summaries.
type ListSummariesOutput struct {
	Summaries []*SummaryOutput
}

// ListSummariesUseCase handles listing a user's monthly summaries.
type ListSummariesUseCase struct {
	summaryRepo adapter.SummaryRepository
}

// NewListSummariesUseCase creates a new ListSummariesUseCase instance.
func NewListSummariesUseCase(summaryRepo adapter.SummaryRepository) *ListSummariesUseCase {
	return &ListSummariesUseCase{
		summaryRepo: summaryRepo,
	}
}

// Execute retrieves the user's summaries, most recent month first.
func (uc *ListSummariesUseCase) Execute(ctx context.Context, input ListSummariesInput) (*ListSummariesOutput, error) {
	summaries, err := uc.summaryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	output := &ListSummariesOutput{
		Summaries: make([]*SummaryOutput, len(summaries)),
	}
	for i, s := range summaries {
		output.Summaries[i] = &SummaryOutput{
			ID:            s.ID,
			Month:         s.Month,
			TotalIncome:   s.TotalIncome,
			TotalExpenses: s.TotalExpenses,
			Balance:       s.Balance,
			CreatedAt:     s.CreatedAt,
		}
	}

	return output, nil
}
