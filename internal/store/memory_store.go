package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"fintrack/internal/models"
)

// memoryStore keeps documents in process memory. Documents are serialized
// on Save and deserialized on Load so every caller owns its copy; mutating
// a loaded document never leaks into the store without a Save.
type memoryStore struct {
	mu        sync.RWMutex
	documents map[string][]byte
}

// NewMemoryStore creates an empty in-memory document store.
func NewMemoryStore() DocumentStore {
	return &memoryStore{
		documents: make(map[string][]byte),
	}
}

func (s *memoryStore) Load(ctx context.Context, username string) (*models.UserDocument, error) {
	s.mu.RLock()
	raw, ok := s.documents[username]
	s.mu.RUnlock()

	if !ok {
		return models.NewUserDocument(), nil
	}

	doc := models.NewUserDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("failed to decode document for %q: %w", username, err)
	}
	return doc, nil
}

func (s *memoryStore) Save(ctx context.Context, username string, doc *models.UserDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document for %q: %w", username, err)
	}

	s.mu.Lock()
	s.documents[username] = raw
	s.mu.Unlock()
	return nil
}
