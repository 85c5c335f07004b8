// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-tracker/backend/internal/application/usecase/summary"
)

// SummaryResponse represents a single monthly summary in API responses.
type SummaryResponse struct {
	ID            string    `json:"id"`
	Month         string    `json:"month"`
	TotalIncome   string    `json:"total_income"`
	TotalExpenses string    `json:"total_expenses"`
	Balance       string    `json:"balance"`
	CreatedAt     time.Time `json:"created_at"`
}

// SummaryListResponse represents the response for listing monthly summaries.
type SummaryListResponse struct {
	Summaries []SummaryResponse `json:"summaries"`
}

// ToSummaryListResponse converts a ListSummariesOutput to SummaryListResponse.
func ToSummaryListResponse(output *summary.ListSummariesOutput) SummaryListResponse {
	summaries := make([]SummaryResponse, len(output.Summaries))
	for i, s := range output.Summaries {
		summaries[i] = SummaryResponse{
			ID:            s.ID.String(),
			Month:         s.Month.Format("2006-01-02"),
			TotalIncome:   s.TotalIncome.StringFixed(2),
			TotalExpenses: s.TotalExpenses.StringFixed(2),
			Balance:       s.Balance.StringFixed(2),
			CreatedAt:     s.CreatedAt,
		}
	}
	return SummaryListResponse{
		Summaries: summaries,
	}
}
