package handlers

import (
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	accounts services.AccountServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(accounts services.AccountServiceInterface) *TransactionHandler {
	return &TransactionHandler{accounts: accounts}
}

// ApplyTransaction applies one deposit or withdrawal to an account
func (h *TransactionHandler) ApplyTransaction(c echo.Context) error {
	username := c.Param("username")

	accountID, err := parseAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID, errors.WithDetails(err.Error()))
	}

	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("malformed request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.accounts.ApplyTransaction(c.Request().Context(), username, accountID, req.Type, req.Amount, time.Now())
	if err != nil {
		return sendServiceError(c, err)
	}

	account, err := h.accounts.GetAccount(c.Request().Context(), username, accountID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.TransactionResponse{
		Transaction: transaction,
		Balance:     account.Balance.String(),
	})
}

// TransactionHistory returns all transactions across the user's accounts,
// optionally filtered by ?account_id=
func (h *TransactionHandler) TransactionHistory(c echo.Context) error {
	username := c.Param("username")

	var accountID *int
	if raw := c.QueryParam("account_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return SendError(c, errors.AccountInvalidID, errors.WithDetails("account_id must be a positive integer"))
		}
		accountID = &id
	}

	history, err := h.accounts.TransactionHistory(c.Request().Context(), username, accountID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.HistoryResponse{
		Transactions: history,
		Total:        len(history),
	})
}
