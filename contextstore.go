package tinylog

import "go.uber.org/atomic"

// ContextStorage holds scoped key/value state that is stamped onto log
// entries when some writer declared ValueContext.
//
// The store is copy-on-write: every mutation installs a fresh map and
// Mapping returns the current map without copying or locking. A snapshot is
// therefore always internally consistent and taking one never blocks, but
// callers must treat the returned map as read-only.
type ContextStorage struct {
	mapping atomic.Pointer[map[string]string]
}

// NewContextStorage creates an empty context store.
func NewContextStorage() *ContextStorage {
	s := &ContextStorage{}
	empty := map[string]string{}
	s.mapping.Store(&empty)
	return s
}

// Mapping returns the current immutable snapshot of the stored state.
func (s *ContextStorage) Mapping() map[string]string {
	return *s.mapping.Load()
}

// Put stores a value under the passed key, replacing any previous value.
func (s *ContextStorage) Put(key, value string) {
	for {
		current := s.mapping.Load()
		next := make(map[string]string, len(*current)+1)
		for k, v := range *current {
			next[k] = v
		}
		next[key] = value
		if s.mapping.CompareAndSwap(current, &next) {
			return
		}
	}
}

// Remove deletes the value stored under the passed key, if any.
func (s *ContextStorage) Remove(key string) {
	for {
		current := s.mapping.Load()
		if _, ok := (*current)[key]; !ok {
			return
		}
		next := make(map[string]string, len(*current))
		for k, v := range *current {
			if k != key {
				next[k] = v
			}
		}
		if s.mapping.CompareAndSwap(current, &next) {
			return
		}
	}
}

// Clear removes all stored values.
func (s *ContextStorage) Clear() {
	empty := map[string]string{}
	s.mapping.Store(&empty)
}
