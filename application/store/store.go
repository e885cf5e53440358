// Package store holds the in-memory keyed record stores backing the client
// session. A store is a plain mapping from id to record, mutated only
// through the reducer actions in this package; the remote API remains the
// authoritative copy and SetAll resynchronizes from it.
//
// Stores are scoped to one session and mutated by a single logical actor,
// so there is no locking.
package store

import "chainfly-client/domain/records"

// Store is a keyed mapping from record id to record
type Store[R records.Record] struct {
	items map[string]R
}

// New creates an empty store
func New[R records.Record]() *Store[R] {
	return &Store[R]{
		items: make(map[string]R),
	}
}

// SetAll replaces the entire mapping with the given records. This is the
// resynchronization path: server state is authoritative and local-only
// entries not present in it are discarded.
func (s *Store[R]) SetAll(items []R) {
	replaced := make(map[string]R, len(items))
	for _, item := range items {
		replaced[item.RecordID()] = item
	}
	s.items = replaced
}

// Add inserts the record, overwriting any record with the same id
func (s *Store[R]) Add(item R) {
	s.items[item.RecordID()] = item
}

// Update overwrites the record by id. It is deliberately identical to Add:
// the observed behavior is update-or-insert with no existence check.
func (s *Store[R]) Update(item R) {
	s.items[item.RecordID()] = item
}

// Delete removes the record by id, a no-op if absent
func (s *Store[R]) Delete(id string) {
	delete(s.items, id)
}

// Get returns the record for id and whether it was present
func (s *Store[R]) Get(id string) (R, bool) {
	item, ok := s.items[id]
	return item, ok
}

// All returns every record as a fresh slice. Order is unspecified but the
// slice is safe to retain.
func (s *Store[R]) All() []R {
	items := make([]R, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	return items
}

// Len returns the number of records held
func (s *Store[R]) Len() int {
	return len(s.items)
}
