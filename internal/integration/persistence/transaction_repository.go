// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

// orderingClauses maps the declared ordering values to SQL order clauses.
// Every ordering falls back to most-recently-created for stable ties.
var orderingClauses = map[adapter.TransactionOrdering]string{
	adapter.OrderByDateAsc:       "transactions.date ASC, transactions.created_at DESC",
	adapter.OrderByDateDesc:      "transactions.date DESC, transactions.created_at DESC",
	adapter.OrderByAmountAsc:     "transactions.amount ASC, transactions.created_at DESC",
	adapter.OrderByAmountDesc:    "transactions.amount DESC, transactions.created_at DESC",
	adapter.OrderByCreatedAtAsc:  "transactions.created_at ASC",
	adapter.OrderByCreatedAtDesc: "transactions.created_at DESC",
}

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves a transaction owned by the given user. An absent
// row and a row owned by another user are indistinguishable to the caller.
func (r *transactionRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// applyFilter translates the filter into query conditions. Owner scoping is
// part of the query itself, not a post-filter. Conditions touching the
// category (type filter, search across category name) join the categories
// table.
func applyFilter(query *gorm.DB, filter adapter.TransactionFilter) *gorm.DB {
	query = query.Where("transactions.user_id = ?", filter.UserID)

	needsCategoryJoin := filter.CategoryType != nil || filter.Search != ""
	if needsCategoryJoin {
		query = query.Joins("JOIN categories ON categories.id = transactions.category_id")
	}

	if filter.StartDate != nil {
		query = query.Where("transactions.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transactions.date <= ?", *filter.EndDate)
	}
	if filter.CategoryID != nil {
		query = query.Where("transactions.category_id = ?", *filter.CategoryID)
	}
	if filter.CategoryType != nil {
		query = query.Where("categories.type = ?", string(*filter.CategoryType))
	}
	if filter.AmountMin != nil {
		query = query.Where("transactions.amount >= ?", *filter.AmountMin)
	}
	if filter.AmountMax != nil {
		query = query.Where("transactions.amount <= ?", *filter.AmountMax)
	}
	if filter.Description != "" {
		pattern := "%" + strings.ToLower(filter.Description) + "%"
		query = query.Where("LOWER(transactions.description) LIKE ?", pattern)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(transactions.description) LIKE ? OR LOWER(categories.name) LIKE ?",
			pattern, pattern,
		)
	}

	return query
}

// orderClause resolves an ordering value to its SQL clause.
func orderClause(ordering adapter.TransactionOrdering) string {
	if clause, ok := orderingClauses[ordering]; ok {
		return clause
	}
	return orderingClauses[adapter.DefaultOrdering]
}

// FindByFilter retrieves transactions based on filter criteria with pagination.
func (r *transactionRepository) FindByFilter(
	ctx context.Context,
	filter adapter.TransactionFilter,
	ordering adapter.TransactionOrdering,
	pagination adapter.TransactionPagination,
) (*adapter.TransactionListResult, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter)

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	// Use cases clamp pagination before calling; guard here too so a zero
	// limit cannot divide by zero.
	page := pagination.Page
	if page < 1 {
		page = 1
	}
	limit := pagination.Limit
	if limit < 1 {
		limit = 20
	}

	offset := (page - 1) * limit
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var transactionModels []model.TransactionModel
	result := query.
		Preload("Category").
		Order(orderClause(ordering)).
		Offset(offset).
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithCategory()
	}

	return &adapter.TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
	}, nil
}

// FindAllByFilter retrieves every transaction matching the filter without pagination.
func (r *transactionRepository) FindAllByFilter(
	ctx context.Context,
	filter adapter.TransactionFilter,
	ordering adapter.TransactionOrdering,
) ([]*entity.TransactionWithCategory, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter)

	var transactionModels []model.TransactionModel
	result := query.
		Preload("Category").
		Order(orderClause(ordering)).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithCategory()
	}
	return transactions, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteByIDAndUser deletes a transaction owned by the given user.
func (r *transactionRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// FindUserIDsWithTransactions returns the distinct users with at least one
// transaction dated within [start, end].
func (r *transactionRepository) FindUserIDsWithTransactions(ctx context.Context, start, end time.Time) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Distinct("user_id").
		Where("date >= ? AND date <= ?", start, end).
		Order("user_id").
		Pluck("user_id", &userIDs)
	if result.Error != nil {
		return nil, result.Error
	}
	return userIDs, nil
}

// GetMonthlyTotals sums transaction amounts by category type for one user
// within [start, end]. COALESCE keeps missing types at zero rather than null.
func (r *transactionRepository) GetMonthlyTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) (*adapter.MonthlyTotals, error) {
	var row struct {
		TotalIncome   decimal.Decimal
		TotalExpenses decimal.Decimal
	}

	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.date >= ? AND transactions.date <= ?", userID, start, end).
		Select(
			"COALESCE(SUM(CASE WHEN categories.type = ? THEN transactions.amount ELSE 0 END), 0) AS total_income, "+
				"COALESCE(SUM(CASE WHEN categories.type = ? THEN transactions.amount ELSE 0 END), 0) AS total_expenses",
			string(entity.CategoryTypeIncome),
			string(entity.CategoryTypeExpense),
		).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &adapter.MonthlyTotals{
		TotalIncome:   row.TotalIncome,
		TotalExpenses: row.TotalExpenses,
	}, nil
}
