package services

import (
	"context"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// AccountServiceInterface defines account and transaction operations over
// one user's ledger. Every operation is a full load-mutate-save cycle
// against the document store; no state survives between calls.
type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, username, name, initialBalance, goal string) (*models.Account, error)
	DeleteAccount(ctx context.Context, username string, accountID int) (bool, error)
	GetAccount(ctx context.Context, username string, accountID int) (*models.Account, error)
	ListAccounts(ctx context.Context, username string) ([]models.Account, error)
	ApplyTransaction(ctx context.Context, username string, accountID int, transactionType, amount string, when time.Time) (*models.Transaction, error)
	TransactionHistory(ctx context.Context, username string, accountID *int) ([]models.HistoryEntry, error)
}

// GoalServiceInterface computes goal progress reports.
type GoalServiceInterface interface {
	Progress(ctx context.Context, username string, accountID int) (*models.GoalProgress, error)
}

// ExpenseServiceInterface records and aggregates monthly expenses.
type ExpenseServiceInterface interface {
	RecordExpense(ctx context.Context, username, category, amount, description string, when time.Time) (*models.ExpenseEntry, error)
	AggregateByCategory(ctx context.Context, username, monthKey string) (map[string]decimal.Decimal, error)
	ListExpenses(ctx context.Context, username, monthKey string) ([]models.ExpenseEntry, error)
}

// MetricsRecorderInterface abstracts operational metrics so services do
// not depend on a concrete metrics backend.
type MetricsRecorderInterface interface {
	RecordTransaction(transactionType, status string)
	RecordTransactionDuration(duration time.Duration)
	RecordAccountCreated()
	RecordAccountDeleted()
	RecordExpenseRecorded(category string)
	RecordProgressComputed()
}
