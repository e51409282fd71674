package models

// HistoryEntry is one transaction annotated with its owning account, for
// the cross-account history view.
type HistoryEntry struct {
	AccountID   int    `json:"account_id"`
	AccountName string `json:"account_name"`
	Transaction
}
