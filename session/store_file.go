package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// FileStore is a Store persisted as a JSON object in a single file, the
// equivalent of browser localStorage for a native process. Every Set and
// Delete is written through; a missing or corrupt file starts empty.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
	notifier
}

// NewFileStore opens (or creates) a file-backed session store at path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("[NewFileStore] path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "[NewFileStore] create data folder")
	}

	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrap(err, "[NewFileStore] read session file")
	}

	// A corrupt session file is treated as no session rather than an error.
	var values map[string]string
	if err := json.Unmarshal(raw, &values); err == nil && values != nil {
		s.values = values
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	if key == "" {
		return errors.New("[FileStore.Set] key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flushLocked()
}

func (s *FileStore) Delete(key string) error {
	if key == "" {
		return errors.New("[FileStore.Delete] key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.flushLocked()
}

func (s *FileStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *FileStore) NotifyProfileUpdated() {
	s.notify()
}

func (s *FileStore) flushLocked() error {
	raw, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[FileStore] encode session")
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore] write session file")
	}
	return nil
}
