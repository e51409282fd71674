package handlers

import (
	"net/http"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenses services.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenses services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// RecordExpense records one categorized expense, bucketed by the month of
// its date (today when no date is given)
func (h *ExpenseHandler) RecordExpense(c echo.Context) error {
	username := c.Param("username")

	var req dto.RecordExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("malformed request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	when := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("date must be YYYY-MM-DD"))
		}
		when = parsed
	}

	entry, err := h.expenses.RecordExpense(c.Request().Context(), username, req.Category, req.Amount, req.Description, when)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.RecordExpenseResponse{
		Expense: entry,
		Message: "Expense recorded",
	})
}

// ListExpenses returns one month's expenses. The ?month= selector is required.
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	username := c.Param("username")
	month := c.QueryParam("month")

	entries, err := h.expenses.ListExpenses(c.Request().Context(), username, month)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExpenseListResponse{
		Month:    month,
		Expenses: entries,
		Total:    len(entries),
	})
}

// CategorySummary returns per-category totals for one month. A month with
// no expenses yields an empty totals map.
func (h *ExpenseHandler) CategorySummary(c echo.Context) error {
	username := c.Param("username")
	month := c.QueryParam("month")

	totals, err := h.expenses.AggregateByCategory(c.Request().Context(), username, month)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategorySummaryResponse{
		Month:  month,
		Totals: totals,
	})
}
