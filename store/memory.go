package store

import "encoding/json"

// MemoryStore keeps collections in process memory. Used as the injected
// fake in tests and as a throwaway backend for local experiments.
type MemoryStore struct {
	collections map[string][]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]json.RawMessage)}
}

func (s *MemoryStore) LoadAll(collection string) ([]json.RawMessage, error) {
	records := s.collections[collection]
	out := make([]json.RawMessage, len(records))
	copy(out, records)
	return out, nil
}

func (s *MemoryStore) SaveAll(collection string, records []json.RawMessage) error {
	stored := make([]json.RawMessage, len(records))
	copy(stored, records)
	s.collections[collection] = stored
	return nil
}
