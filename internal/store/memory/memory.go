// Package memory provides an in-memory store driver, used for tests
// and for running the server without a database file.
package memory

import (
	"context"
	"sync"

	"imobdesk/internal/store"
)

// Store keeps all collections in process memory. Safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]entry
}

type entry struct {
	id   string
	body []byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{collections: make(map[string][]entry)}
}

// List returns all documents in a collection in insertion order.
func (s *Store) List(_ context.Context, collection string) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.collections[collection]
	docs := make([]store.Document, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, store.Document{ID: e.id, Body: cloneBytes(e.body)})
	}
	return docs, nil
}

// Get returns a single document by id.
func (s *Store) Get(_ context.Context, collection, id string) (store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.collections[collection] {
		if e.id == id {
			return store.Document{ID: e.id, Body: cloneBytes(e.body)}, nil
		}
	}
	return store.Document{}, store.ErrNotFound
}

// Put upserts a document. An existing document keeps its position in the
// collection; a new one is appended.
func (s *Store) Put(_ context.Context, collection, id string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.collections[collection]
	for i, e := range entries {
		if e.id == id {
			entries[i].body = cloneBytes(body)
			return nil
		}
	}
	s.collections[collection] = append(entries, entry{id: id, body: cloneBytes(body)})
	return nil
}

// Delete removes a document by id.
func (s *Store) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.collections[collection]
	for i, e := range entries {
		if e.id == id {
			s.collections[collection] = append(entries[:i:i], entries[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// Close is a no-op for the in-memory driver.
func (s *Store) Close() error {
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
