package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyAccountName  = errors.New("account name is required")
	ErrNegativeBalance   = errors.New("initial balance cannot be negative")
	ErrNegativeGoal      = errors.New("goal cannot be negative")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account is a single savings or checking account within a UserDocument.
// Balance is only ever mutated through Apply, which keeps the invariant
// balance == initial balance + sum(deposits) - sum(withdrawals).
type Account struct {
	ID           int             `json:"account_id"`
	Name         string          `json:"account_name"`
	Balance      decimal.Decimal `json:"balance"`
	Goal         decimal.Decimal `json:"goal,omitempty"`
	Transactions []Transaction   `json:"transactions"`
}

// NewAccount builds a validated account. The caller assigns the id from
// the owning document's counter.
func NewAccount(id int, name string, balance, goal decimal.Decimal) (*Account, error) {
	if name == "" {
		return nil, ErrEmptyAccountName
	}
	if balance.LessThan(decimal.Zero) {
		return nil, ErrNegativeBalance
	}
	if goal.LessThan(decimal.Zero) {
		return nil, ErrNegativeGoal
	}
	return &Account{
		ID:           id,
		Name:         name,
		Balance:      balance,
		Goal:         goal,
		Transactions: []Transaction{},
	}, nil
}

// HasGoal reports whether a savings goal is set. A zero goal means "no goal".
func (a *Account) HasGoal() bool {
	return a.Goal.GreaterThan(decimal.Zero)
}

// CanWithdraw checks whether the amount could be withdrawn right now.
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero) && a.Balance.GreaterThanOrEqual(amount)
}

// Validate checks the stored account fields.
func (a *Account) Validate() error {
	if a.ID <= 0 {
		return errors.New("account id must be positive")
	}
	if a.Name == "" {
		return ErrEmptyAccountName
	}
	if a.Goal.LessThan(decimal.Zero) {
		return ErrNegativeGoal
	}
	return nil
}
