package collection

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps collections in process memory, preserving insertion
// order per collection. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	docs  map[string]map[string]Document
	order map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:  make(map[string]map[string]Document),
		order: make(map[string][]string),
	}
}

func (s *MemoryStore) List(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Document, 0, len(s.order[collection]))
	for _, id := range s.order[collection] {
		out = append(out, cloneDocument(s.docs[collection][id]))
	}

	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, ErrNotFound
	}

	return cloneDocument(doc), nil
}

func (s *MemoryStore) Query(_ context.Context, collection, field, value string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Document, 0)
	for _, id := range s.order[collection] {
		doc := s.docs[collection][id]
		if fieldEquals(doc, field, value) {
			out = append(out, cloneDocument(doc))
		}
	}

	return out, nil
}

func (s *MemoryStore) Insert(_ context.Context, collection string, doc Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneDocument(doc)
	id, _ := stored["id"].(string)
	if id == "" {
		id = uuid.NewString()
		stored["id"] = id
	}

	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string]Document)
	}
	if _, exists := s.docs[collection][id]; exists {
		return nil, ErrDuplicateID
	}

	s.docs[collection][id] = stored
	s.order[collection] = append(s.order[collection], id)

	return cloneDocument(stored), nil
}

func (s *MemoryStore) Patch(_ context.Context, collection, id string, partial Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[collection][id]
	if !ok {
		return nil, ErrNotFound
	}

	for k, v := range partial {
		if k == "id" {
			continue
		}
		doc[k] = v
	}

	return cloneDocument(doc), nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[collection][id]; !ok {
		return ErrNotFound
	}

	delete(s.docs[collection], id)
	for i, existing := range s.order[collection] {
		if existing == id {
			s.order[collection] = append(s.order[collection][:i], s.order[collection][i+1:]...)
			break
		}
	}

	return nil
}

// fieldEquals compares the stringified field value, so numeric query
// parameters match numeric document fields.
func fieldEquals(doc Document, field, value string) bool {
	v, ok := doc[field]
	if !ok {
		return false
	}

	return fmt.Sprint(v) == value
}

func cloneDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	return out
}
