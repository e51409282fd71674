package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCategory        = errors.New("expense category is required")
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")
)

// ExpenseEntry is a single categorized expense. Entries are immutable and
// bucketed by the YYYY-MM key of their date.
type ExpenseEntry struct {
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
}

// NewExpenseEntry builds a validated expense entry dated at day granularity.
func NewExpenseEntry(category string, amount decimal.Decimal, description string, when time.Time) (*ExpenseEntry, error) {
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidExpenseAmount
	}
	return &ExpenseEntry{
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        DayOf(when),
	}, nil
}

// MonthKey returns the YYYY-MM bucket the entry belongs to.
func (e *ExpenseEntry) MonthKey() string {
	return e.Date.Format(MonthKeyFormat)
}
