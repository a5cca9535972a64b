package store

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps documents in process memory. It backs local development
// (STORE_DRIVER=memory) and the service tests. Documents are deep-copied on
// the way in and out so callers never share state with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]map[string]interface{})}
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return &Document{ID: id, Data: copyMap(data)}, nil
}

func (s *MemoryStore) Set(ctx context.Context, collection, id string, data interface{}) error {
	fields, ok := data.(map[string]interface{})
	if !ok {
		return fmt.Errorf("memory store: unsupported document type %T", data)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]interface{})
	}
	s.collections[collection][id] = copyMap(fields)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id, field string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked(collection, id, field, value)
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

func (s *MemoryStore) All(ctx context.Context, collection string) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []*Document
	for id, data := range s.collections[collection] {
		docs = append(docs, &Document{ID: id, Data: copyMap(data)})
	}
	return docs, nil
}

func (s *MemoryStore) Query(ctx context.Context, collection, field string, value interface{}) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []*Document
	for id, data := range s.collections[collection] {
		if data[field] == value {
			docs = append(docs, &Document{ID: id, Data: copyMap(data)})
		}
	}
	return docs, nil
}

// UpdateFieldTx holds the write lock across the whole read-modify-write, so
// the memory driver satisfies Txer the same way Firestore transactions do.
func (s *MemoryStore) UpdateFieldTx(ctx context.Context, collection, id, field string, fn func(doc *Document) (interface{}, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc *Document
	if data, ok := s.collections[collection][id]; ok {
		doc = &Document{ID: id, Data: copyMap(data)}
	}

	value, err := fn(doc)
	if err != nil {
		return err
	}
	return s.updateLocked(collection, id, field, value)
}

func (s *MemoryStore) updateLocked(collection, id, field string, value interface{}) error {
	data, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	data[field] = copyValue(value)
	return nil
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		return copyMap(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = copyValue(e)
		}
		return out
	case []map[string]interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = copyMap(e)
		}
		return out
	case []string:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out
	default:
		return v
	}
}
