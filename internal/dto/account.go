package dto

import (
	"fintrack/internal/models"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a new account
type CreateAccountRequest struct {
	Name           string `json:"account_name" validate:"required,min=1,max=100"`
	InitialBalance string `json:"initial_balance" validate:"required,decimal_amount"`
	Goal           string `json:"goal" validate:"omitempty,decimal_amount"`
}

// Account Response DTOs

// CreateAccountResponse represents the response after creating an account
type CreateAccountResponse struct {
	Account *models.Account `json:"account"`
	Message string          `json:"message"`
}

// AccountListResponse represents the user's accounts in creation order
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
	Total    int              `json:"total"`
}

// DeleteAccountResponse reports whether a delete removed anything.
// Deleting a missing account is a no-op, not an error.
type DeleteAccountResponse struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
