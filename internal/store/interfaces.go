package store

import (
	"context"

	"fintrack/internal/models"
)

// DocumentStore is the durable mapping from username to that user's
// ledger document. Load and Save are each atomic on their own, but
// nothing serializes a load-mutate-save cycle across callers: concurrent
// writers for the same username race and the last save wins.
type DocumentStore interface {
	// Load returns the user's document, or a fresh empty document when the
	// username has never been saved. Absence is never an error.
	Load(ctx context.Context, username string) (*models.UserDocument, error)

	// Save overwrites the user's document.
	Save(ctx context.Context, username string, doc *models.UserDocument) error
}
