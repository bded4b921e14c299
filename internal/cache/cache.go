// Package cache persists the single last-search snapshot.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/amaumene/gomoviesearch/internal/constants"
	"github.com/amaumene/gomoviesearch/internal/database"
	"github.com/amaumene/gomoviesearch/internal/models"
)

// Store is a single-slot snapshot store. Read returns nil, nil when
// nothing is stored.
type Store interface {
	Read() (*models.SearchSnapshot, error)
	Write(snapshot *models.SearchSnapshot) error
	Clear() error
}

// BoltStore keeps the snapshot as JSON under one fixed key.
type BoltStore struct {
	db     database.Database
	bucket string
	key    string
}

func NewBoltStore(db database.Database) *BoltStore {
	return &BoltStore{
		db:     db,
		bucket: constants.SearchBucket,
		key:    constants.SearchSnapshotKey,
	}
}

func (s *BoltStore) Read() (*models.SearchSnapshot, error) {
	data, err := s.db.Get(s.bucket, s.key)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap models.SearchSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

func (s *BoltStore) Write(snapshot *models.SearchSnapshot) error {
	if snapshot == nil {
		return s.Clear()
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return s.db.Put(s.bucket, s.key, data)
}

func (s *BoltStore) Clear() error {
	return s.db.Delete(s.bucket, s.key)
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu   sync.RWMutex
	snap *models.SearchSnapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Read() (*models.SearchSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snap.Clone(), nil
}

func (m *MemoryStore) Write(snapshot *models.SearchSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snapshot.Clone()
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = nil
	return nil
}
