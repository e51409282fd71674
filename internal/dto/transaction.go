package dto

import (
	"fintrack/internal/models"
)

// TransactionRequest represents the request payload for applying a
// deposit or withdrawal to an account
type TransactionRequest struct {
	Type   string `json:"type" validate:"required,transaction_type"`
	Amount string `json:"amount" validate:"required,decimal_amount"`
}

// TransactionResponse represents the response after a transaction is applied
type TransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
	Balance     string              `json:"balance"`
}

// HistoryResponse represents the cross-account transaction history
type HistoryResponse struct {
	Transactions []models.HistoryEntry `json:"transactions"`
	Total        int                   `json:"total"`
}
