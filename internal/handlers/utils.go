package handlers

import (
	stderrors "errors"
	"strconv"

	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// parseAccountID reads the :id path parameter as a positive integer.
func parseAccountID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, stderrors.New("account id must be a positive integer")
	}
	return id, nil
}

// sendServiceError maps service and model sentinel errors onto the API
// error code catalog. Unknown errors are treated as system errors so no
// internal detail leaks to the client.
func sendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case stderrors.Is(err, services.ErrInvalidAmount):
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrMissingMonth):
		return SendError(c, errors.ValidationMissingMonth)
	case stderrors.Is(err, models.ErrInsufficientFunds):
		return SendError(c, errors.TransactionInsufficientFunds)
	case stderrors.Is(err, models.ErrInvalidAmount):
		return SendError(c, errors.TransactionInvalidAmount)
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, errors.TransactionInvalidType)
	case stderrors.Is(err, models.ErrEmptyAccountName):
		return SendError(c, errors.AccountInvalidName)
	case stderrors.Is(err, models.ErrNegativeBalance), stderrors.Is(err, models.ErrNegativeGoal):
		return SendError(c, errors.ValidationInvalidAmount, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrEmptyCategory):
		return SendError(c, errors.ExpenseInvalidCategory)
	case stderrors.Is(err, models.ErrInvalidExpenseAmount):
		return SendError(c, errors.ExpenseInvalidAmount)
	default:
		return SendSystemError(c, err)
	}
}
