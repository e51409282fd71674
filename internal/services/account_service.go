package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/store"

	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrMissingMonth    = errors.New("month is required")
)

// accountService implements AccountServiceInterface
type accountService struct {
	store   store.DocumentStore
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewAccountService creates an account service backed by a document store
func NewAccountService(documents store.DocumentStore, metrics MetricsRecorderInterface, logger *slog.Logger) AccountServiceInterface {
	return &accountService{
		store:   documents,
		metrics: metrics,
		logger:  logger,
	}
}

// parseAmount parses a decimal amount string. Malformed input is a
// validation failure, surfaced before anything is mutated.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, raw)
	}
	return amount, nil
}

// CreateAccount adds a new account to the user's document. The id comes
// from the document's monotonic counter so deleted ids are never reused.
func (s *accountService) CreateAccount(ctx context.Context, username, name, initialBalance, goal string) (*models.Account, error) {
	balance, err := parseAmount(initialBalance)
	if err != nil {
		return nil, err
	}

	goalAmount := decimal.Zero
	if goal != "" {
		if goalAmount, err = parseAmount(goal); err != nil {
			return nil, err
		}
	}

	doc, err := s.store.Load(ctx, username)
	if err != nil {
		return nil, err
	}

	account, err := models.NewAccount(doc.NextID(), name, balance, goalAmount)
	if err != nil {
		return nil, err
	}

	doc.Accounts = append(doc.Accounts, *account)
	if err := s.store.Save(ctx, username, doc); err != nil {
		return nil, err
	}

	s.metrics.RecordAccountCreated()
	s.logger.Info("account created",
		"username", username,
		"account_id", account.ID,
		"account_name", account.Name)

	return account, nil
}

// DeleteAccount removes an account and reports whether one was removed.
// A missing id is an idempotent no-op, not an error, and nothing is
// persisted in that case. Remaining accounts keep their ids.
func (s *accountService) DeleteAccount(ctx context.Context, username string, accountID int) (bool, error) {
	doc, err := s.store.Load(ctx, username)
	if err != nil {
		return false, err
	}

	if !doc.RemoveAccount(accountID) {
		return false, nil
	}

	if err := s.store.Save(ctx, username, doc); err != nil {
		return false, err
	}

	s.metrics.RecordAccountDeleted()
	s.logger.Info("account deleted", "username", username, "account_id", accountID)
	return true, nil
}

// GetAccount returns one account or ErrAccountNotFound.
func (s *accountService) GetAccount(ctx context.Context, username string, accountID int) (*models.Account, error) {
	doc, err := s.store.Load(ctx, username)
	if err != nil {
		return nil, err
	}

	account := doc.FindAccount(accountID)
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// ListAccounts returns the user's accounts in creation order.
func (s *accountService) ListAccounts(ctx context.Context, username string) ([]models.Account, error) {
	doc, err := s.store.Load(ctx, username)
	if err != nil {
		return nil, err
	}
	return doc.Accounts, nil
}

// ApplyTransaction runs one deposit or withdrawal against an account and
// persists the document. Validation failures and insufficient funds leave
// the stored document untouched.
func (s *accountService) ApplyTransaction(ctx context.Context, username string, accountID int, transactionType, amount string, when time.Time) (*models.Transaction, error) {
	started := time.Now()

	parsed, err := parseAmount(amount)
	if err != nil {
		s.metrics.RecordTransaction(transactionType, "rejected")
		return nil, err
	}

	doc, err := s.store.Load(ctx, username)
	if err != nil {
		return nil, err
	}

	account := doc.FindAccount(accountID)
	if account == nil {
		return nil, ErrAccountNotFound
	}

	transaction, err := account.Apply(transactionType, parsed, when)
	if err != nil {
		s.metrics.RecordTransaction(transactionType, "rejected")
		return nil, err
	}

	if err := s.store.Save(ctx, username, doc); err != nil {
		return nil, err
	}

	s.metrics.RecordTransaction(transaction.Type, "completed")
	s.metrics.RecordTransactionDuration(time.Since(started))
	s.logger.Info("transaction applied",
		"username", username,
		"account_id", accountID,
		"type", transaction.Type,
		"amount", transaction.Amount.String(),
		"balance", account.Balance.String())

	return transaction, nil
}

// TransactionHistory flattens all transactions across the user's accounts
// in account creation order, each entry annotated with its account. A
// non-nil accountID restricts the view to that account.
func (s *accountService) TransactionHistory(ctx context.Context, username string, accountID *int) ([]models.HistoryEntry, error) {
	doc, err := s.store.Load(ctx, username)
	if err != nil {
		return nil, err
	}

	history := []models.HistoryEntry{}
	for i := range doc.Accounts {
		account := &doc.Accounts[i]
		if accountID != nil && account.ID != *accountID {
			continue
		}
		for _, transaction := range account.Transactions {
			history = append(history, models.HistoryEntry{
				AccountID:   account.ID,
				AccountName: account.Name,
				Transaction: transaction,
			})
		}
	}
	return history, nil
}
