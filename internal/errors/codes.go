package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidAmount ErrorCode = "VALIDATION_004"
	ValidationMissingMonth  ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound            ErrorCode = "ACCOUNT_001"
	AccountInvalidName         ErrorCode = "ACCOUNT_002"
	AccountInsufficientBalance ErrorCode = "ACCOUNT_003"
	AccountInvalidID           ErrorCode = "ACCOUNT_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount     ErrorCode = "TRANSACTION_001"
	TransactionInsufficientFunds ErrorCode = "TRANSACTION_002"
	TransactionInvalidType       ErrorCode = "TRANSACTION_003"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseInvalidCategory ErrorCode = "EXPENSE_001"
	ExpenseInvalidAmount   ErrorCode = "EXPENSE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemStorageError       ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidAmount: "Amount must be a positive decimal number",
	ValidationMissingMonth:  "Month selector is required",

	// Account errors
	AccountNotFound:            "Account not found",
	AccountInvalidName:         "Account name is required",
	AccountInsufficientBalance: "Insufficient account balance",
	AccountInvalidID:           "Invalid account id",

	// Transaction errors
	TransactionInvalidAmount:     "Invalid transaction amount",
	TransactionInsufficientFunds: "Insufficient balance for this withdrawal",
	TransactionInvalidType:       "Transaction type must be deposit or withdraw",

	// Expense errors
	ExpenseInvalidCategory: "Expense category is required",
	ExpenseInvalidAmount:   "Expense amount must be positive",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemStorageError:       "Document storage error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
