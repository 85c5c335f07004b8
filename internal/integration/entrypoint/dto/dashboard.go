// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
)

// CurrentMonthStatsResponse represents the current-month block of the dashboard response.
type CurrentMonthStatsResponse struct {
	Income           string `json:"income"`
	Expenses         string `json:"expenses"`
	Balance          string `json:"balance"`
	TransactionCount int    `json:"transaction_count"`
}

// DashboardStatsResponse represents the response for the dashboard stats endpoint.
type DashboardStatsResponse struct {
	CurrentMonth CurrentMonthStatsResponse `json:"current_month"`
}

// ToDashboardStatsResponse converts a GetCurrentMonthStatsOutput to DashboardStatsResponse.
func ToDashboardStatsResponse(output *dashboard.GetCurrentMonthStatsOutput) DashboardStatsResponse {
	return DashboardStatsResponse{
		CurrentMonth: CurrentMonthStatsResponse{
			Income:           output.CurrentMonth.Income.StringFixed(2),
			Expenses:         output.CurrentMonth.Expenses.StringFixed(2),
			Balance:          output.CurrentMonth.Balance.StringFixed(2),
			TransactionCount: output.CurrentMonth.TransactionCount,
		},
	}
}
