// Package main is the entry point for the monthly summary aggregator job.
// It is a one-shot batch intended to run from cron shortly after the turn of
// the month: it aggregates the previous calendar month for every user with
// transactions in that month, then exits.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/application/usecase/summary"
	"github.com/budget-tracker/backend/internal/infra/db"
	"github.com/budget-tracker/backend/internal/integration/persistence"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting monthly summary aggregator",
		"environment", cfg.Server.Environment,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	transactionRepo := persistence.NewTransactionRepository(database.DB())
	summaryRepo := persistence.NewSummaryRepository(database.DB())

	useCase := summary.NewGenerateMonthlySummariesUseCase(transactionRepo, summaryRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	output, err := useCase.Execute(ctx)
	if err != nil {
		slog.Error("Aggregation run failed", "error", err)
		os.Exit(1)
	}

	// Per-user failures are non-fatal for the batch but the exit code should
	// still flag them so cron alerting picks the run up.
	if len(output.Failures) > 0 {
		os.Exit(1)
	}
}
