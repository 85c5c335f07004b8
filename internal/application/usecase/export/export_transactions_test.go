package export

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// exportRepositoryStub serves FindAllByFilter with canned rows.
type exportRepositoryStub struct {
	rows      []*entity.TransactionWithCategory
	gotFilter adapter.TransactionFilter
}

func (s *exportRepositoryStub) FindAllByFilter(
	_ context.Context,
	filter adapter.TransactionFilter,
	_ adapter.TransactionOrdering,
) ([]*entity.TransactionWithCategory, error) {
	s.gotFilter = filter
	return s.rows, nil
}

func (s *exportRepositoryStub) Create(context.Context, *entity.Transaction) error {
	return errors.New("not implemented")
}

func (s *exportRepositoryStub) FindByIDAndUser(context.Context, uuid.UUID, uuid.UUID) (*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (s *exportRepositoryStub) FindByFilter(context.Context, adapter.TransactionFilter, adapter.TransactionOrdering, adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	return nil, errors.New("not implemented")
}

func (s *exportRepositoryStub) Update(context.Context, *entity.Transaction) error {
	return errors.New("not implemented")
}

func (s *exportRepositoryStub) DeleteByIDAndUser(context.Context, uuid.UUID, uuid.UUID) error {
	return errors.New("not implemented")
}

func (s *exportRepositoryStub) FindUserIDsWithTransactions(context.Context, time.Time, time.Time) ([]uuid.UUID, error) {
	return nil, errors.New("not implemented")
}

func (s *exportRepositoryStub) GetMonthlyTotals(context.Context, uuid.UUID, time.Time, time.Time) (*adapter.MonthlyTotals, error) {
	return nil, errors.New("not implemented")
}

func exportRow(userID uuid.UUID, categoryName string, categoryType entity.CategoryType, amount, description string, date time.Time) *entity.TransactionWithCategory {
	category := entity.NewCategory(categoryName, categoryType)
	return &entity.TransactionWithCategory{
		Transaction: entity.NewTransaction(userID, category.ID, decimal.RequireFromString(amount), description, date),
		Category:    category,
	}
}

func TestExportTransactions_WritesHeaderAndRows(t *testing.T) {
	userID := uuid.New()
	repo := &exportRepositoryStub{
		rows: []*entity.TransactionWithCategory{
			exportRow(userID, "Salary", entity.CategoryTypeIncome, "5000", "August paycheck", time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)),
			exportRow(userID, "Groceries", entity.CategoryTypeExpense, "42.5", "Weekly shop", time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)),
		},
	}

	useCase := NewExportTransactionsUseCase(repo)

	var buf bytes.Buffer
	err := useCase.Execute(context.Background(), ExportTransactionsInput{UserID: userID}, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines: %q", len(lines), buf.String())
	}

	if lines[0] != "Date,Category,Type,Amount,Description" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "2026-08-25,Salary,income,5000.00,August paycheck" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if lines[2] != "2026-08-15,Groceries,expense,42.50,Weekly shop" {
		t.Errorf("unexpected second row: %q", lines[2])
	}
}

func TestExportTransactions_EmptyResultStillWritesHeader(t *testing.T) {
	repo := &exportRepositoryStub{}
	useCase := NewExportTransactionsUseCase(repo)

	var buf bytes.Buffer
	err := useCase.Execute(context.Background(), ExportTransactionsInput{UserID: uuid.New()}, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.TrimRight(buf.String(), "\n") != "Date,Category,Type,Amount,Description" {
		t.Errorf("expected only the header line, got %q", buf.String())
	}
}

func TestExportTransactions_PassesFilterThrough(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()
	repo := &exportRepositoryStub{}
	useCase := NewExportTransactionsUseCase(repo)

	var buf bytes.Buffer
	err := useCase.Execute(context.Background(), ExportTransactionsInput{
		UserID:    userID,
		StartDate: "2026-07-01",
		EndDate:   "2026-07-31",
		Category:  categoryID.String(),
	}, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.gotFilter.UserID != userID {
		t.Errorf("expected filter scoped to user %s, got %s", userID, repo.gotFilter.UserID)
	}
	if repo.gotFilter.StartDate == nil || repo.gotFilter.StartDate.Format("2006-01-02") != "2026-07-01" {
		t.Errorf("unexpected start date in filter: %v", repo.gotFilter.StartDate)
	}
	if repo.gotFilter.CategoryID == nil || *repo.gotFilter.CategoryID != categoryID {
		t.Errorf("unexpected category in filter: %v", repo.gotFilter.CategoryID)
	}
}

func TestExportTransactions_RejectsMalformedFilter(t *testing.T) {
	useCase := NewExportTransactionsUseCase(&exportRepositoryStub{})

	var buf bytes.Buffer
	err := useCase.Execute(context.Background(), ExportTransactionsInput{
		UserID:    uuid.New(),
		StartDate: "July 2026",
	}, &buf)

	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeInvalidFilterValue {
		t.Fatalf("expected invalid filter error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written when the filter is rejected")
	}
}
