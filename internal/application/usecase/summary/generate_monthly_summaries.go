// Package summary contains monthly summary use cases.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
)

// UserFailure records one user whose summary could not be generated.
type UserFailure struct {
	UserID uuid.UUID
	Err    error
}

// GenerateMonthlySummariesOutput reports the outcome of one aggregation run.
type GenerateMonthlySummariesOutput struct {
	Month    time.Time
	Created  int
	Updated  int
	Failures []UserFailure
}

// GenerateMonthlySummariesUseCase computes income/expense totals per user for
// the calendar month immediately preceding the invocation time and upserts one
// MonthlySummary per user. Re-running it for the same month overwrites both
// totals in full, so repeated runs converge on the same persisted state.
type GenerateMonthlySummariesUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryRepo     adapter.SummaryRepository
	now             func() time.Time
}

// NewGenerateMonthlySummariesUseCase creates a new GenerateMonthlySummariesUseCase instance.
func NewGenerateMonthlySummariesUseCase(
	transactionRepo adapter.TransactionRepository,
	summaryRepo adapter.SummaryRepository,
) *GenerateMonthlySummariesUseCase {
	return &GenerateMonthlySummariesUseCase{
		transactionRepo: transactionRepo,
		summaryRepo:     summaryRepo,
		now:             time.Now,
	}
}

// WithClock overrides the time source. Used by tests to pin the target month.
func (uc *GenerateMonthlySummariesUseCase) WithClock(now func() time.Time) *GenerateMonthlySummariesUseCase {
	uc.now = now
	return uc
}

// Execute runs the aggregation batch. A failure for one user is recorded and
// the batch moves on; collected failures are reported in the output rather
// than aborting the run.
func (uc *GenerateMonthlySummariesUseCase) Execute(ctx context.Context) (*GenerateMonthlySummariesOutput, error) {
	monthStart := entity.PreviousMonth(uc.now().UTC())
	monthEnd := monthStart.AddDate(0, 1, -1)

	userIDs, err := uc.transactionRepo.FindUserIDsWithTransactions(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to find users with transactions: %w", err)
	}

	output := &GenerateMonthlySummariesOutput{Month: monthStart}

	for _, userID := range userIDs {
		created, err := uc.generateForUser(ctx, userID, monthStart, monthEnd)
		if err != nil {
			slog.Error("Failed to generate monthly summary",
				"user_id", userID,
				"month", monthStart.Format("2006-01"),
				"error", err,
			)
			output.Failures = append(output.Failures, UserFailure{UserID: userID, Err: err})
			continue
		}
		if created {
			output.Created++
		} else {
			output.Updated++
		}
	}

	slog.Info("Monthly summary generation finished",
		"month", monthStart.Format("2006-01"),
		"created", output.Created,
		"updated", output.Updated,
		"failed", len(output.Failures),
	)

	return output, nil
}

// generateForUser computes and upserts the summary for a single user.
func (uc *GenerateMonthlySummariesUseCase) generateForUser(
	ctx context.Context,
	userID uuid.UUID,
	monthStart, monthEnd time.Time,
) (created bool, err error) {
	totals, err := uc.transactionRepo.GetMonthlyTotals(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return false, fmt.Errorf("failed to compute totals: %w", err)
	}

	summary := entity.NewMonthlySummary(userID, monthStart, totals.TotalIncome, totals.TotalExpenses)

	created, err = uc.summaryRepo.Upsert(ctx, summary)
	if err != nil {
		return false, domainerror.NewSummaryError(
			domainerror.ErrCodeSummaryBatchPartial,
			"failed to upsert monthly summary",
			err,
		)
	}
	return created, nil
}
