package dto

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// RecordExpenseRequest represents the request payload for recording an expense.
// Date is optional; it defaults to today when absent.
type RecordExpenseRequest struct {
	Category    string `json:"category" validate:"required,min=1,max=100"`
	Amount      string `json:"amount" validate:"required,decimal_amount"`
	Description string `json:"description" validate:"omitempty,max=255"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// RecordExpenseResponse represents the response after recording an expense
type RecordExpenseResponse struct {
	Expense *models.ExpenseEntry `json:"expense"`
	Message string               `json:"message"`
}

// ExpenseListResponse represents one month's expenses in insertion order
type ExpenseListResponse struct {
	Month    string                `json:"month"`
	Expenses []models.ExpenseEntry `json:"expenses"`
	Total    int                   `json:"total"`
}

// CategorySummaryResponse represents per-category totals for one month
type CategorySummaryResponse struct {
	Month  string                     `json:"month"`
	Totals map[string]decimal.Decimal `json:"totals"`
}
