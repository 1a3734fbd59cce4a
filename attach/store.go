// Package attach provides a ready-made in-memory attachment store for
// wrapper chain nodes. The store satisfies wrapscope.Attachable and is safe
// for concurrent use.
package attach

import "sync"

// Store is a concurrency-safe key/value attachment store. Keys must be
// comparable, with the same rules as map keys. The zero value is not usable;
// create stores with NewStore.
type Store struct {
	mu sync.RWMutex
	m  map[any]any
}

// NewStore creates an empty attachment store.
func NewStore() *Store {
	return &Store{m: make(map[any]any)}
}

// Attachment returns the value stored under key. A missing key yields
// (nil, false).
func (s *Store) Attachment(key any) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

// SetAttachment stores value under key, replacing any previous value.
func (s *Store) SetAttachment(key, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

// Delete removes key from the store. Deleting an absent key is a no-op.
func (s *Store) Delete(key any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

// Len returns the number of attachments held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
