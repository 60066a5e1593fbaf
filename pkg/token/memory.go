package token

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-wide in-memory token table. Single-instance only;
// nothing bounds its size between sweeps besides record expiry.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]Record

	now func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
		now:     time.Now,
	}
}

// Issue stores or overwrites the record for a session identifier.
func (s *MemoryStore) Issue(ctx context.Context, sessionID string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[sessionID] = rec
	return nil
}

// Get returns the record for a session identifier. Expired records are
// reported as missing, matching the Redis implementation's native TTL.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[sessionID]
	if !ok || rec.Expired(s.now()) {
		return nil, ErrNotFound
	}
	return &rec, nil
}

// Delete removes the record for a session identifier.
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, sessionID)
	return nil
}

// Sweep removes all expired records.
func (s *MemoryStore) Sweep(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for sessionID, rec := range s.records {
		if rec.Expired(now) {
			delete(s.records, sessionID)
		}
	}
	return nil
}

// Len returns the number of stored records, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}
