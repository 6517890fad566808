package store

import (
	"sync"
	"time"

	"github.com/Cayt99/CheckUp/model"
)

// Store owns the in-progress sign-up records, keyed by participant ID.
// Absence of a key means the participant has no active conversation.
type Store interface {
	// Get returns the participant's record, or false if none is active.
	Get(participantID string) (*model.Record, bool)
	// Reset creates a fresh empty record for the participant, discarding
	// any unfinished one.
	Reset(participantID string) *model.Record
	// Remove drops the participant's record.
	Remove(participantID string)
}

// MemoryStore is the in-process Store. Records do not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*model.Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*model.Record),
	}
}

func (s *MemoryStore) Get(participantID string) (*model.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, found := s.records[participantID]
	return rec, found
}

func (s *MemoryStore) Reset(participantID string) *model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &model.Record{
		UserID:    participantID,
		CreatedAt: time.Now(),
	}
	s.records[participantID] = rec
	return rec
}

func (s *MemoryStore) Remove(participantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, participantID)
}
