// Package export contains the CSV export use case.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/usecase/transaction"
)

// csvHeader is the fixed column order of the export.
var csvHeader = []string{"Date", "Category", "Type", "Amount", "Description"}

// ExportTransactionsInput represents the input for the CSV export. The filter
// surface is the subset of listing parameters the export supports.
type ExportTransactionsInput struct {
	UserID    uuid.UUID
	StartDate string
	EndDate   string
	Category  string
}

// ExportTransactionsUseCase streams a user's filtered transactions as CSV.
// The full result set is written without pagination, one row per transaction,
// header row first.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute writes the CSV to w. Rows follow the default listing order
// (most recent date first, ties broken by most recently created).
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput, w io.Writer) error {
	filter, ordering, err := transaction.BuildFilter(input.UserID, transaction.FilterParams{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Category:  input.Category,
	})
	if err != nil {
		return err
	}

	rows, err := uc.transactionRepo.FindAllByFilter(ctx, filter, ordering)
	if err != nil {
		return fmt.Errorf("failed to load transactions for export: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		txn := row.Transaction
		categoryName := ""
		categoryType := ""
		if row.Category != nil {
			categoryName = row.Category.Name
			categoryType = string(row.Category.Type)
		}

		record := []string{
			txn.Date.Format("2006-01-02"),
			categoryName,
			categoryType,
			txn.Amount.StringFixed(2),
			txn.Description,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
