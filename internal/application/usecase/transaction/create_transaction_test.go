package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// stubTransactionRepository is an in-memory TransactionRepository for use case tests.
type stubTransactionRepository struct {
	transactions map[uuid.UUID]*entity.Transaction
	createErr    error
}

func newStubTransactionRepository() *stubTransactionRepository {
	return &stubTransactionRepository{
		transactions: make(map[uuid.UUID]*entity.Transaction),
	}
}

func (s *stubTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.transactions[transaction.ID] = transaction
	return nil
}

func (s *stubTransactionRepository) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	txn, ok := s.transactions[id]
	if !ok || txn.UserID != userID {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *txn
	return &copied, nil
}

func (s *stubTransactionRepository) FindByFilter(
	_ context.Context,
	filter adapter.TransactionFilter,
	_ adapter.TransactionOrdering,
	pagination adapter.TransactionPagination,
) (*adapter.TransactionListResult, error) {
	var matched []*entity.TransactionWithCategory
	for _, txn := range s.transactions {
		if txn.UserID == filter.UserID {
			matched = append(matched, &entity.TransactionWithCategory{Transaction: txn})
		}
	}
	return &adapter.TransactionListResult{
		Transactions: matched,
		Total:        int64(len(matched)),
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   1,
	}, nil
}

func (s *stubTransactionRepository) FindAllByFilter(
	_ context.Context,
	filter adapter.TransactionFilter,
	_ adapter.TransactionOrdering,
) ([]*entity.TransactionWithCategory, error) {
	var matched []*entity.TransactionWithCategory
	for _, txn := range s.transactions {
		if txn.UserID == filter.UserID {
			matched = append(matched, &entity.TransactionWithCategory{Transaction: txn})
		}
	}
	return matched, nil
}

func (s *stubTransactionRepository) Update(_ context.Context, transaction *entity.Transaction) error {
	if _, ok := s.transactions[transaction.ID]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	s.transactions[transaction.ID] = transaction
	return nil
}

func (s *stubTransactionRepository) DeleteByIDAndUser(_ context.Context, id, userID uuid.UUID) error {
	txn, ok := s.transactions[id]
	if !ok || txn.UserID != userID {
		return domainerror.ErrTransactionNotFound
	}
	delete(s.transactions, id)
	return nil
}

func (s *stubTransactionRepository) FindUserIDsWithTransactions(_ context.Context, start, end time.Time) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{})
	var userIDs []uuid.UUID
	for _, txn := range s.transactions {
		if txn.Date.Before(start) || txn.Date.After(end) {
			continue
		}
		if _, ok := seen[txn.UserID]; !ok {
			seen[txn.UserID] = struct{}{}
			userIDs = append(userIDs, txn.UserID)
		}
	}
	return userIDs, nil
}

func (s *stubTransactionRepository) GetMonthlyTotals(_ context.Context, _ uuid.UUID, _, _ time.Time) (*adapter.MonthlyTotals, error) {
	return &adapter.MonthlyTotals{}, nil
}

// stubCategoryRepository is an in-memory CategoryRepository for use case tests.
type stubCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
}

func newStubCategoryRepository(categories ...*entity.Category) *stubCategoryRepository {
	s := &stubCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	return s
}

func (s *stubCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	for _, existing := range s.categories {
		if existing.Name == category.Name && existing.Type == category.Type {
			return domainerror.ErrCategoryExists
		}
	}
	s.categories[category.ID] = category
	return nil
}

func (s *stubCategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (s *stubCategoryRepository) FindAll(_ context.Context) ([]*entity.Category, error) {
	var all []*entity.Category
	for _, c := range s.categories {
		all = append(all, c)
	}
	return all, nil
}

func (s *stubCategoryRepository) ExistsByNameAndType(_ context.Context, name string, categoryType entity.CategoryType) (bool, error) {
	for _, c := range s.categories {
		if c.Name == name && c.Type == categoryType {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	groceries := entity.NewCategory("Groceries", entity.CategoryTypeExpense)
	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	t.Run("creates a valid transaction", func(t *testing.T) {
		txnRepo := newStubTransactionRepository()
		useCase := NewCreateTransactionUseCase(txnRepo, newStubCategoryRepository(groceries))

		output, err := useCase.Execute(context.Background(), CreateTransactionInput{
			UserID:      userID,
			CategoryID:  groceries.ID,
			Amount:      decimal.RequireFromString("42.50"),
			Description: "Weekly shop",
			Date:        date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Transaction.Amount.String() != "42.5" {
			t.Errorf("unexpected amount: %s", output.Transaction.Amount)
		}
		if output.Transaction.Category == nil || output.Transaction.Category.Name != "Groceries" {
			t.Error("expected category details in the output")
		}
		if len(txnRepo.transactions) != 1 {
			t.Errorf("expected 1 persisted transaction, got %d", len(txnRepo.transactions))
		}
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		useCase := NewCreateTransactionUseCase(newStubTransactionRepository(), newStubCategoryRepository(groceries))

		_, err := useCase.Execute(context.Background(), CreateTransactionInput{
			UserID:      userID,
			CategoryID:  groceries.ID,
			Amount:      decimal.Zero,
			Description: "Free lunch",
			Date:        date,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeInvalidTransactionAmount {
			t.Fatalf("expected invalid amount error, got %v", err)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		useCase := NewCreateTransactionUseCase(newStubTransactionRepository(), newStubCategoryRepository(groceries))

		_, err := useCase.Execute(context.Background(), CreateTransactionInput{
			UserID:      userID,
			CategoryID:  groceries.ID,
			Amount:      decimal.RequireFromString("-5.00"),
			Description: "Refund",
			Date:        date,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeInvalidTransactionAmount {
			t.Fatalf("expected invalid amount error, got %v", err)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		useCase := NewCreateTransactionUseCase(newStubTransactionRepository(), newStubCategoryRepository())

		_, err := useCase.Execute(context.Background(), CreateTransactionInput{
			UserID:      userID,
			CategoryID:  uuid.New(),
			Amount:      decimal.RequireFromString("10.00"),
			Description: "Mystery",
			Date:        date,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTxnCategoryNotFound {
			t.Fatalf("expected category not found error, got %v", err)
		}
	})

	t.Run("rejects missing date", func(t *testing.T) {
		useCase := NewCreateTransactionUseCase(newStubTransactionRepository(), newStubCategoryRepository(groceries))

		_, err := useCase.Execute(context.Background(), CreateTransactionInput{
			UserID:      userID,
			CategoryID:  groceries.ID,
			Amount:      decimal.RequireFromString("10.00"),
			Description: "No date",
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeInvalidTransactionDate {
			t.Fatalf("expected invalid date error, got %v", err)
		}
	})
}

func TestUpdateTransactionUseCase_OwnerScoping(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	groceries := entity.NewCategory("Groceries", entity.CategoryTypeExpense)
	txnRepo := newStubTransactionRepository()
	catRepo := newStubCategoryRepository(groceries)

	txn := entity.NewTransaction(owner, groceries.ID, decimal.RequireFromString("20.00"), "Lunch", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	txnRepo.transactions[txn.ID] = txn

	useCase := NewUpdateTransactionUseCase(txnRepo, catRepo)

	newDescription := "Dinner"
	_, err := useCase.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: txn.ID,
		UserID:        stranger,
		Description:   &newDescription,
	})

	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTransactionNotFound {
		t.Fatalf("expected not found for another user's transaction, got %v", err)
	}
	if txnRepo.transactions[txn.ID].Description != "Lunch" {
		t.Error("transaction must not change when the requester is not the owner")
	}
}

func TestUpdateTransactionUseCase_PartialUpdate(t *testing.T) {
	owner := uuid.New()
	groceries := entity.NewCategory("Groceries", entity.CategoryTypeExpense)
	txnRepo := newStubTransactionRepository()
	catRepo := newStubCategoryRepository(groceries)

	txn := entity.NewTransaction(owner, groceries.ID, decimal.RequireFromString("20.00"), "Lunch", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	txnRepo.transactions[txn.ID] = txn

	useCase := NewUpdateTransactionUseCase(txnRepo, catRepo)

	amount := decimal.RequireFromString("35.00")
	output, err := useCase.Execute(context.Background(), UpdateTransactionInput{
		TransactionID: txn.ID,
		UserID:        owner,
		Amount:        &amount,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Transaction.Amount.String() != "35" {
		t.Errorf("unexpected amount after update: %s", output.Transaction.Amount)
	}
	if output.Transaction.Description != "Lunch" {
		t.Errorf("description must be untouched, got %q", output.Transaction.Description)
	}
}

func TestDeleteTransactionUseCase_OwnerScoping(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	groceries := entity.NewCategory("Groceries", entity.CategoryTypeExpense)
	txnRepo := newStubTransactionRepository()

	txn := entity.NewTransaction(owner, groceries.ID, decimal.RequireFromString("20.00"), "Lunch", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	txnRepo.transactions[txn.ID] = txn

	useCase := NewDeleteTransactionUseCase(txnRepo)

	err := useCase.Execute(context.Background(), DeleteTransactionInput{
		TransactionID: txn.ID,
		UserID:        stranger,
	})

	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeTransactionNotFound {
		t.Fatalf("expected not found for another user's transaction, got %v", err)
	}

	if err := useCase.Execute(context.Background(), DeleteTransactionInput{
		TransactionID: txn.ID,
		UserID:        owner,
	}); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(txnRepo.transactions) != 0 {
		t.Error("expected transaction to be deleted")
	}
}
