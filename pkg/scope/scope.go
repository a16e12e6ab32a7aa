package scope

import (
	"strings"
	"sync"
)

// Store is a named, mutable, session-lifetime key-value store
type Store interface {
	// Get returns the value of name and whether it is set
	Get(name string) (string, bool)
	// Set replaces the value of name
	Set(name, value string) error
}

// Locker is implemented by stores that serialize read-modify-write cycles
// on a single variable. Lock blocks until name is free and returns the
// function releasing it.
type Locker interface {
	Lock(name string) (unlock func())
}

// Memory is an in-process Store safe for concurrent use
type Memory struct {
	mu   sync.RWMutex
	vars map[string]string

	locks KeyedMutex
}

// NewMemory creates an empty Memory store
func NewMemory() *Memory {
	return &Memory{vars: make(map[string]string)}
}

// FromEnviron creates a Memory store from "KEY=value" pairs as returned by
// os.Environ. Malformed pairs are skipped; later pairs win.
func FromEnviron(environ []string) *Memory {
	m := NewMemory()
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		m.vars[name] = value
	}
	return m
}

// Get implements Store
func (m *Memory) Get(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vars[name]
	return v, ok
}

// Set implements Store
func (m *Memory) Set(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vars[name] = value
	return nil
}

// Lock implements Locker
func (m *Memory) Lock(name string) func() {
	return m.locks.Lock(name)
}
