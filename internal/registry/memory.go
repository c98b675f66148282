package registry

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local used-token set
type MemoryStore struct {
	mu   sync.Mutex
	used map[string]time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		used: make(map[string]time.Time),
	}
}

// Add records the id if absent, under a single lock
func (s *MemoryStore) Add(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.used[tokenID]; ok {
		return false, nil
	}
	s.used[tokenID] = time.Now()
	return true, nil
}

// Contains reports whether the id has been recorded
func (s *MemoryStore) Contains(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.used[tokenID]
	return ok, nil
}

// Remove forgets the id
func (s *MemoryStore) Remove(_ context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.used, tokenID)
	return nil
}

// Sweep drops entries older than maxAge and returns how many were removed.
// Safe once maxAge is at least the token validity: an evicted id can only
// belong to a token that already expired on its own.
func (s *MemoryStore) Sweep(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, usedAt := range s.used {
		if usedAt.Before(cutoff) {
			delete(s.used, id)
			removed++
		}
	}
	return removed
}

// RunSweeper sweeps periodically until ctx is cancelled
func (s *MemoryStore) RunSweeper(ctx context.Context, every, maxAge time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(maxAge)
		}
	}
}
