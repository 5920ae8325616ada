// Package storage provides key-value persistence implementations and the
// versioned JSON envelope every persisted blob is wrapped in.
package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/logger"
)

// Compile-time interface check.
var _ domain.Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory key-value store. Safe for concurrent access.
// Values are copied in and out so callers cannot alias stored bytes.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	log    *logger.Logger
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
		log:    log,
	}
}

// Load returns the value stored at key.
func (s *MemoryStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		s.log.Debug("key not found: %s", key)
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Save stores a value. Overwrites if the key already exists.
func (s *MemoryStore) Save(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving %s (%d bytes)", key, len(value))
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// SaveBatch stores every entry under a single lock.
func (s *MemoryStore) SaveBatch(ctx context.Context, entries []domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		s.values[e.Key] = append([]byte(nil), e.Value...)
	}
	s.log.Debug("saved batch of %d entries", len(entries))
	return nil
}

// Delete removes a key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.values, key)
	s.log.Debug("deleted %s", key)
	return nil
}

// Keys returns the sorted keys starting with prefix.
func (s *MemoryStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for k := range s.values {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out, nil
}
