package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Router wires all handlers onto an Echo instance.
type Router struct {
	Accounts     *AccountHandler
	Transactions *TransactionHandler
	Goals        *GoalHandler
	Expenses     *ExpenseHandler
	Health       *HealthCheckHandler
}

// NewRouter builds the router from its handlers. db may be nil for the
// in-memory backend.
func NewRouter(accounts *AccountHandler, transactions *TransactionHandler, goals *GoalHandler, expenses *ExpenseHandler, db *gorm.DB) *Router {
	return &Router{
		Accounts:     accounts,
		Transactions: transactions,
		Goals:        goals,
		Expenses:     expenses,
		Health:       NewHealthCheckHandler(db),
	}
}

// Register mounts all routes. The web layer stays thin: handlers bind and
// validate, services own the ledger rules.
func (r *Router) Register(e *echo.Echo) {
	e.GET("/health", r.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1/users/:username")

	api.GET("/accounts", r.Accounts.ListAccounts)
	api.POST("/accounts", r.Accounts.CreateAccount)
	api.GET("/accounts/:id", r.Accounts.GetAccount)
	api.DELETE("/accounts/:id", r.Accounts.DeleteAccount)

	api.POST("/accounts/:id/transactions", r.Transactions.ApplyTransaction)
	api.GET("/transactions", r.Transactions.TransactionHistory)

	api.GET("/accounts/:id/progress", r.Goals.Progress)

	api.POST("/expenses", r.Expenses.RecordExpense)
	api.GET("/expenses", r.Expenses.ListExpenses)
	api.GET("/expenses/summary", r.Expenses.CategorySummary)
}
