package gamedata

import (
	"context"
	"sync"
	"time"
)

// TableStore caches raw gamedata tables between fetches
type TableStore interface {
	// Get returns the cached table and whether it was present
	Get(ctx context.Context, table string) ([]byte, bool, error)
	Set(ctx context.Context, table string, data []byte, ttl time.Duration) error
}

type cachedTable struct {
	data      []byte
	expiresAt time.Time
}

// InMemoryTableStore keeps tables in process memory
type InMemoryTableStore struct {
	mu     sync.RWMutex
	tables map[string]cachedTable
	now    func() time.Time
}

// NewInMemoryTableStore creates an empty in-memory store
func NewInMemoryTableStore() *InMemoryTableStore {
	return &InMemoryTableStore{
		tables: make(map[string]cachedTable),
		now:    time.Now,
	}
}

func (s *InMemoryTableStore) Get(_ context.Context, table string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cached, ok := s.tables[table]
	if !ok {
		return nil, false, nil
	}
	if !cached.expiresAt.IsZero() && s.now().After(cached.expiresAt) {
		return nil, false, nil
	}

	return cached.data, true, nil
}

// Set stores the table; a zero ttl never expires
func (s *InMemoryTableStore) Set(_ context.Context, table string, data []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cached := cachedTable{data: data}
	if ttl > 0 {
		cached.expiresAt = s.now().Add(ttl)
	}
	s.tables[table] = cached

	return nil
}
