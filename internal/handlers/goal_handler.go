package handlers

import (
	"net/http"

	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// GoalHandler handles goal progress HTTP requests
type GoalHandler struct {
	goals services.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goals services.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{goals: goals}
}

// Progress returns the goal progress report for one account
func (h *GoalHandler) Progress(c echo.Context) error {
	username := c.Param("username")

	accountID, err := parseAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID, errors.WithDetails(err.Error()))
	}

	progress, err := h.goals.Progress(c.Request().Context(), username, accountID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, progress)
}
