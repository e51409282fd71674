package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeDeposit  = "deposit"
	TransactionTypeWithdraw = "withdraw"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
)

// Transaction is an immutable deposit or withdrawal record. Once appended
// to an account there is no update or delete path.
type Transaction struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	// Date is the calendar day the transaction was recorded; Timestamp
	// keeps the full audit-granularity instant.
	Date      time.Time `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeDeposit, TransactionTypeWithdraw:
		return true
	default:
		return false
	}
}

// DayOf truncates an instant to calendar-day granularity.
func DayOf(when time.Time) time.Time {
	return time.Date(when.Year(), when.Month(), when.Day(), 0, 0, 0, 0, when.Location())
}

// MonthKey returns the YYYY-MM bucket the transaction's date falls in.
func (t *Transaction) MonthKey() string {
	return t.Date.Format(MonthKeyFormat)
}

// IsDeposit returns true for deposit transactions.
func (t *Transaction) IsDeposit() bool {
	return t.Type == TransactionTypeDeposit
}

// Signed returns the amount with withdrawal sign applied, for netting.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionTypeWithdraw {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Apply runs one transaction against the account: validates first, mutates
// the balance, then appends the immutable record. This is the single path
// through which Balance changes. On any error the account is untouched.
func (a *Account) Apply(transactionType string, amount decimal.Decimal, when time.Time) (*Transaction, error) {
	if !IsValidTransactionType(transactionType) {
		return nil, ErrInvalidTransactionType
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	switch transactionType {
	case TransactionTypeDeposit:
		a.Balance = a.Balance.Add(amount)
	case TransactionTypeWithdraw:
		if a.Balance.LessThan(amount) {
			return nil, ErrInsufficientFunds
		}
		a.Balance = a.Balance.Sub(amount)
	}

	transaction := Transaction{
		Type:      transactionType,
		Amount:    amount,
		Date:      DayOf(when),
		Timestamp: when,
	}
	a.Transactions = append(a.Transactions, transaction)
	return &a.Transactions[len(a.Transactions)-1], nil
}
