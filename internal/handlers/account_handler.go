package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accounts services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// ListAccounts returns the user's accounts in creation order
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	username := c.Param("username")

	accounts, err := h.accounts.ListAccounts(c.Request().Context(), username)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

// CreateAccount creates a new account for the user
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	username := c.Param("username")

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("malformed request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accounts.CreateAccount(c.Request().Context(), username, req.Name, req.InitialBalance, req.Goal)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateAccountResponse{
		Account: account,
		Message: "Account created successfully",
	})
}

// GetAccount returns one account by id
func (h *AccountHandler) GetAccount(c echo.Context) error {
	username := c.Param("username")

	accountID, err := parseAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID, errors.WithDetails(err.Error()))
	}

	account, err := h.accounts.GetAccount(c.Request().Context(), username, accountID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// DeleteAccount removes an account. Deleting an id that does not exist is
// reported as deleted=false with a 200, not as an error.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	username := c.Param("username")

	accountID, err := parseAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID, errors.WithDetails(err.Error()))
	}

	deleted, err := h.accounts.DeleteAccount(c.Request().Context(), username, accountID)
	if err != nil {
		return sendServiceError(c, err)
	}

	message := "Account deleted"
	if !deleted {
		message = "No such account"
	}
	return c.JSON(http.StatusOK, dto.DeleteAccountResponse{
		Deleted: deleted,
		Message: message,
	})
}
