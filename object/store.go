package object

import "sync"

// Store is the minimal keyspace this package needs to exercise
// introspection end to end: a key -> *Value map. It deliberately holds no
// reference of its own on each value (spec.md §5's design note that
// "databases point at values without holding a reference of their own"),
// which is why Set takes ownership of the *Value it is given rather than
// incrementing it, and Del decrements rather than merely unlinking.
//
// Expiration, replication, persistence and sharding live above this
// layer; Store exists only so command/dispatch.go and
// object/memaccount have a concrete place to look a key up.
type Store struct {
	mu   sync.RWMutex
	data map[string]*Value
}

// NewStore creates an empty keyspace.
func NewStore() *Store {
	return &Store{data: make(map[string]*Value)}
}

// Get returns the value stored at key, or nil if absent.
func (s *Store) Get(key string) *Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[key]
}

// Set installs v at key, taking ownership of the reference the caller
// holds (the caller must not Decr v after calling Set). Any previous
// value at key is released.
func (s *Store) Set(key string, v *Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.data[key]; ok {
		Decr(old)
	}
	s.data[key] = v
}

// Del removes key, releasing its value's reference. Reports whether key
// was present.
func (s *Store) Del(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return false
	}
	Decr(v)
	delete(s.data, key)
	return true
}

// Keys returns every key currently present, in no particular order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of keys in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
