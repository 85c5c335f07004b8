// Package transaction contains transaction-related use cases.
package transaction

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// FilterParams carries the raw, still-unvalidated query parameters of a
// transaction listing request. Empty strings mean the parameter was omitted.
type FilterParams struct {
	StartDate    string
	EndDate      string
	Category     string
	CategoryType string
	AmountMin    string
	AmountMax    string
	Description  string
	Search       string
	Ordering     string
}

// validOrderings is the declared set of ordering values.
var validOrderings = map[adapter.TransactionOrdering]struct{}{
	adapter.OrderByDateAsc:       {},
	adapter.OrderByDateDesc:      {},
	adapter.OrderByAmountAsc:     {},
	adapter.OrderByAmountDesc:    {},
	adapter.OrderByCreatedAtAsc:  {},
	adapter.OrderByCreatedAtDesc: {},
}

// BuildFilter validates the raw parameters and translates them into a
// repository filter plus ordering, scoped to the given user. Every parameter
// is optional; a malformed or out-of-enum value fails with a validation error
// naming the offending field rather than being silently dropped.
func BuildFilter(userID uuid.UUID, params FilterParams) (adapter.TransactionFilter, adapter.TransactionOrdering, error) {
	filter := adapter.TransactionFilter{
		UserID:      userID,
		Description: params.Description,
		Search:      params.Search,
	}

	if params.StartDate != "" {
		startDate, err := time.Parse(dateLayout, params.StartDate)
		if err != nil {
			return filter, "", invalidFilter("start_date", "start_date must be a YYYY-MM-DD date")
		}
		filter.StartDate = &startDate
	}

	if params.EndDate != "" {
		endDate, err := time.Parse(dateLayout, params.EndDate)
		if err != nil {
			return filter, "", invalidFilter("end_date", "end_date must be a YYYY-MM-DD date")
		}
		filter.EndDate = &endDate
	}

	if params.Category != "" {
		categoryID, err := uuid.Parse(params.Category)
		if err != nil {
			return filter, "", invalidFilter("category", "category must be a valid category id")
		}
		filter.CategoryID = &categoryID
	}

	if params.CategoryType != "" {
		categoryType := entity.CategoryType(params.CategoryType)
		if !entity.IsValidCategoryType(categoryType) {
			return filter, "", invalidFilter("category_type", "category_type must be 'income' or 'expense'")
		}
		filter.CategoryType = &categoryType
	}

	if params.AmountMin != "" {
		amountMin, err := decimal.NewFromString(params.AmountMin)
		if err != nil {
			return filter, "", invalidFilter("amount_min", "amount_min must be a decimal number")
		}
		filter.AmountMin = &amountMin
	}

	if params.AmountMax != "" {
		amountMax, err := decimal.NewFromString(params.AmountMax)
		if err != nil {
			return filter, "", invalidFilter("amount_max", "amount_max must be a decimal number")
		}
		filter.AmountMax = &amountMax
	}

	ordering := adapter.DefaultOrdering
	if params.Ordering != "" {
		ordering = adapter.TransactionOrdering(params.Ordering)
		if _, ok := validOrderings[ordering]; !ok {
			return filter, "", domainerror.NewTransactionValidationError(
				domainerror.ErrCodeInvalidOrdering,
				"ordering",
				fmt.Sprintf("ordering must be one of date, -date, amount, -amount, created_at, -created_at; got %q", params.Ordering),
				domainerror.ErrInvalidOrdering,
			)
		}
	}

	return filter, ordering, nil
}

func invalidFilter(field, message string) *domainerror.TransactionError {
	return domainerror.NewTransactionValidationError(
		domainerror.ErrCodeInvalidFilterValue,
		field,
		message,
		domainerror.ErrInvalidFilterValue,
	)
}
