package testutil

import (
	"sync"
)

// MockStore is a scope.Store backed by a map. It counts successful writes
// and returns SetErr from every Set when SetErr is non-nil. It does not
// implement scope.Locker.
type MockStore struct {
	// GetFunc replaces the map lookup when set
	GetFunc func(name string) (string, bool)
	// SetErr makes every Set fail
	SetErr error

	mu     sync.Mutex
	vars   map[string]string
	writes int
}

// NewMockStore creates a store holding a copy of vars
func NewMockStore(vars map[string]string) *MockStore {
	m := &MockStore{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		m.vars[k] = v
	}
	return m
}

// Get returns the value of name
func (m *MockStore) Get(name string) (string, bool) {
	if m.GetFunc != nil {
		return m.GetFunc(name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vars[name]
	return v, ok
}

// Set stores value under name unless SetErr is set
func (m *MockStore) Set(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.writes++
	m.vars[name] = value
	return nil
}

// Writes returns the number of successful Set calls
func (m *MockStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
