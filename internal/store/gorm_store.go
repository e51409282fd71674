package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserDocumentRecord is the persistence row for one user's ledger
// document. The document itself is stored as a single JSON value; the
// schema in internal/models is the contract for its contents.
type UserDocumentRecord struct {
	Username  string    `gorm:"type:varchar(255);primaryKey"`
	Document  []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for UserDocumentRecord
func (UserDocumentRecord) TableName() string {
	return "user_documents"
}

// gormStore persists documents through gorm, one row per username.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a document store backed by a gorm database.
func NewGormStore(db *gorm.DB) DocumentStore {
	return &gormStore{db: db}
}

func (s *gormStore) Load(ctx context.Context, username string) (*models.UserDocument, error) {
	var record UserDocumentRecord
	err := s.db.WithContext(ctx).First(&record, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewUserDocument(), nil
		}
		return nil, fmt.Errorf("failed to load document for %q: %w", username, err)
	}

	doc := models.NewUserDocument()
	if err := json.Unmarshal(record.Document, doc); err != nil {
		return nil, fmt.Errorf("failed to decode document for %q: %w", username, err)
	}
	return doc, nil
}

func (s *gormStore) Save(ctx context.Context, username string, doc *models.UserDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document for %q: %w", username, err)
	}

	record := UserDocumentRecord{
		Username:  username,
		Document:  raw,
		UpdatedAt: time.Now().UTC(),
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to save document for %q: %w", username, err)
	}
	return nil
}
