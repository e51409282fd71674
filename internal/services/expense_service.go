package services

import (
	"context"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/store"

	"github.com/shopspring/decimal"
)

// expenseService implements ExpenseServiceInterface
type expenseService struct {
	store   store.DocumentStore
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewExpenseService creates an expense service backed by a document store
func NewExpenseService(documents store.DocumentStore, metrics MetricsRecorderInterface, logger *slog.Logger) ExpenseServiceInterface {
	return &expenseService{
		store:   documents,
		metrics: metrics,
		logger:  logger,
	}
}

// RecordExpense appends an expense under the month bucket of its date,
// creating the bucket on first use.
func (s *expenseService) RecordExpense(ctx context.Context, username, category, amount, description string, when time.Time) (*models.ExpenseEntry, error) {
	parsed, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}

	entry, err := models.NewExpenseEntry(category, parsed, description, when)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Load(ctx, username)
	if err != nil {
		return nil, err
	}

	doc.AddExpense(*entry)
	if err := s.store.Save(ctx, username, doc); err != nil {
		return nil, err
	}

	s.metrics.RecordExpenseRecorded(entry.Category)
	s.logger.Info("expense recorded",
		"username", username,
		"category", entry.Category,
		"amount", entry.Amount.String(),
		"month", entry.MonthKey())

	return entry, nil
}

// AggregateByCategory sums the month's expenses per distinct category.
// Categories compare by exact string equality. A month with no entries
// yields an empty map; a missing month selector is the caller's error.
func (s *expenseService) AggregateByCategory(ctx context.Context, username, monthKey string) (map[string]decimal.Decimal, error) {
	if monthKey == "" {
		return nil, ErrMissingMonth
	}

	doc, err := s.store.Load(ctx, username)
	if err != nil {
		return nil, err
	}

	totals := map[string]decimal.Decimal{}
	for _, entry := range doc.ExpensesFor(monthKey) {
		totals[entry.Category] = totals[entry.Category].Add(entry.Amount)
	}
	return totals, nil
}

// ListExpenses returns the month's entries in insertion order.
func (s *expenseService) ListExpenses(ctx context.Context, username, monthKey string) ([]models.ExpenseEntry, error) {
	if monthKey == "" {
		return nil, ErrMissingMonth
	}

	doc, err := s.store.Load(ctx, username)
	if err != nil {
		return nil, err
	}

	entries := doc.ExpensesFor(monthKey)
	if entries == nil {
		entries = []models.ExpenseEntry{}
	}
	return entries, nil
}
