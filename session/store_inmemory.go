package session

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// InMemoryStore is an in-memory implementation of Store, used in tests and
// in processes that do not need the session to survive a restart.
type InMemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	notifier
}

// NewInMemoryStore creates an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		values: make(map[string]string),
	}
}

func (s *InMemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *InMemoryStore) Set(key, value string) error {
	if key == "" {
		return errors.New("[InMemoryStore.Set] key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *InMemoryStore) Delete(key string) error {
	if key == "" {
		return errors.New("[InMemoryStore.Delete] key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *InMemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *InMemoryStore) NotifyProfileUpdated() {
	s.notify()
}
